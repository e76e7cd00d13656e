package vars

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBool accepts strconv.ParseBool forms plus yes/no and on/off.
func ParseBool(str string) (bool, error) {
	switch strings.ToLower(str) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(str)
	if err != nil {
		return false, fmt.Errorf("not a boolean: %q", str)
	}
	return b, nil
}
