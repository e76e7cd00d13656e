package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/nets"
)

const maxRemoteSize = 16 << 20

// Stdin is read when ref is "-".
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// Load resolves ref to program source.
// ref is a file path, "-" for stdin, or an http(s) URL.
type Load func(ctx context.Context, ref string) (*bfcode.Source, error)

func (Module) Load(
	client nets.HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, ref string) (*bfcode.Source, error) {
		name, content, err := read(ctx, client, stdin, logger, ref)
		if err != nil {
			return nil, err
		}
		if kind := binaryKind(content); kind != "" {
			logger.WarnContext(ctx, "source does not look like text",
				"source", name,
				"mime", kind,
			)
		}
		return bfcode.NewSource(name, string(content)), nil
	}
}

func read(ctx context.Context, client nets.HTTPClient, stdin Stdin, logger logs.Logger, ref string) (string, []byte, error) {
	switch {

	case ref == "-":
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", content, nil

	case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
		logger.DebugContext(ctx, "fetch source", "url", ref)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
		if err != nil {
			return "", nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return "", nil, fmt.Errorf("fetch %s: %w", ref, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", nil, fmt.Errorf("fetch %s: %s", ref, resp.Status)
		}
		content, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize+1))
		if err != nil {
			return "", nil, fmt.Errorf("fetch %s: %w", ref, err)
		}
		if len(content) > maxRemoteSize {
			return "", nil, fmt.Errorf("fetch %s: source larger than %d bytes", ref, maxRemoteSize)
		}
		return ref, content, nil

	}

	content, err := os.ReadFile(ref)
	if err != nil {
		return "", nil, err
	}
	return ref, content, nil
}
