package suites

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/configs"
	"gopkg.in/yaml.v3"
)

// Case is one program run with its expected outcome.
// Output is compared only when set; Error names the expected failure kind.
type Case struct {
	Name     string  `json:"name" yaml:"name"`
	Program  string  `json:"program" yaml:"program"`
	Input    string  `json:"input,omitempty" yaml:"input,omitempty"`
	Output   *string `json:"output,omitempty" yaml:"output,omitempty"`
	Error    string  `json:"error,omitempty" yaml:"error,omitempty"`
	MaxSteps int     `json:"max_steps,omitempty" yaml:"max_steps,omitempty"`
	EOF      string  `json:"eof,omitempty" yaml:"eof,omitempty"`
	Timeout  string  `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// deadline is the parsed Timeout; zero leaves the run-wide timeout in charge.
func (c Case) deadline() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("case %s: bad timeout: %w", c.Name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("case %s: bad timeout %q", c.Name, c.Timeout)
	}
	return d, nil
}

const Schema = `
cases: [...{
	name:       string
	program:    string
	input?:     string
	output?:    string
	error?:     "malformed" | "underflow" | "eof" | "io" | "step_limit" | "timeout"
	max_steps?: int & >=0
	eof?:       "fail" | "zero" | "keep"
	timeout?:   string
}]
`

var errorKinds = map[string]error{
	"malformed":  bfcode.ErrMalformedProgram,
	"underflow":  bfvm.ErrPointerUnderflow,
	"eof":        bfvm.ErrEndOfStream,
	"io":         bfvm.ErrIO,
	"step_limit": bfvm.ErrStepLimit,
}

var (
	// ErrUnknownErrorKind is returned by Load for cases naming an unknown error kind.
	ErrUnknownErrorKind = errors.New("unknown error kind")
	// ErrNoDeadline is returned for timeout cases without a timeout of their own.
	ErrNoDeadline = errors.New("timeout case without timeout")
)

// Load reads cases from a CUE file, or a YAML file when the extension says so.
func Load(path string) ([]Case, error) {
	var cases []Case
	switch filepath.Ext(path) {

	case ".yaml", ".yml":
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var file struct {
			Cases []Case `yaml:"cases"`
		}
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		cases = file.Cases

	default:
		loader := configs.NewLoader([]string{path}, Schema)
		if err := loader.Decode("cases", &cases); err != nil {
			return nil, err
		}

	}

	for _, c := range cases {
		d, err := c.deadline()
		if err != nil {
			return nil, err
		}
		switch c.Error {
		case "":
		case "timeout":
			if d == 0 {
				return nil, fmt.Errorf("%w: case %s", ErrNoDeadline, c.Name)
			}
		default:
			if _, ok := errorKinds[c.Error]; !ok {
				return nil, fmt.Errorf("%w: case %s: %q", ErrUnknownErrorKind, c.Name, c.Error)
			}
		}
	}
	return cases, nil
}
