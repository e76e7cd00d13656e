package sources

import (
	"github.com/gabriel-vasile/mimetype"
)

// binaryKind returns the detected MIME type of content that does not sniff as text,
// or "" for text. Non-command bytes are comments, so this is only ever advisory.
func binaryKind(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	mtype := mimetype.Detect(content)
	for t := mtype; t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return ""
		}
	}
	return mtype.String()
}
