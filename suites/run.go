package suites

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/syncs"
)

type Result struct {
	Case     Case
	Passed   bool
	Reason   string
	Output   []byte
	Err      error
	Duration time.Duration
}

type Report struct {
	Results []Result
}

func (r Report) Failed() int {
	n := 0
	for _, result := range r.Results {
		if !result.Passed {
			n++
		}
	}
	return n
}

func (r Report) String() string {
	var b strings.Builder
	for _, result := range r.Results {
		if result.Passed {
			fmt.Fprintf(&b, "PASS %s (%v)\n", result.Case.Name, result.Duration)
		} else {
			fmt.Fprintf(&b, "FAIL %s: %s\n", result.Case.Name, result.Reason)
		}
	}
	fmt.Fprintf(&b, "%d passed, %d failed\n", len(r.Results)-r.Failed(), r.Failed())
	return b.String()
}

type Run func(ctx context.Context, cases []Case) Report

func (Module) Run(
	options bfvm.Options,
	parallel bfconfigs.Parallel,
	timeout bfconfigs.Timeout,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, cases []Case) Report {
		results := make([]Result, len(cases))
		sem := syncs.NewSemaphore(int(parallel))
		var wg sync.WaitGroup
		for i, c := range cases {
			if err := sem.AcquireContext(ctx); err != nil {
				results[i] = Result{
					Case:   c,
					Reason: err.Error(),
					Err:    err,
				}
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release()
				results[i] = runCase(ctx, c, options, time.Duration(timeout))
				logger.DebugContext(ctx, "case done",
					"name", c.Name,
					"passed", results[i].Passed,
				)
			}()
		}
		wg.Wait()
		return Report{
			Results: results,
		}
	}
}

func runCase(ctx context.Context, c Case, options bfvm.Options, timeout time.Duration) (ret Result) {
	ret.Case = c
	start := time.Now()
	defer func() {
		ret.Duration = time.Since(start)
	}()

	d, err := c.deadline()
	if err != nil {
		ret.Err = err
		ret.Reason = err.Error()
		return
	}
	timeout = cmp.Or(d, timeout)
	if c.Error == "timeout" && timeout == 0 {
		// would never end
		ret.Err = fmt.Errorf("%w: case %s", ErrNoDeadline, c.Name)
		ret.Reason = ret.Err.Error()
		return
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	program, err := bfcode.ParseString(c.Name, c.Program)
	if err == nil {
		if c.MaxSteps > 0 {
			options.MaxSteps = c.MaxSteps
		}
		if c.EOF != "" {
			options.EOF, err = bfvm.ParseEOFPolicy(c.EOF)
			if err != nil {
				ret.Err = err
				ret.Reason = err.Error()
				return
			}
		}
		out := new(bytes.Buffer)
		options.In = bfvm.Reader(strings.NewReader(c.Input))
		options.Out = out
		options.Logger = nil
		err = bfvm.New(options).Execute(ctx, program)
		ret.Output = out.Bytes()
	}
	ret.Err = err

	if reason := check(c, ret.Output, err); reason != "" {
		ret.Reason = reason
		return
	}
	ret.Passed = true
	return
}

func check(c Case, output []byte, err error) string {
	switch c.Error {
	case "":
		if err != nil {
			return fmt.Sprintf("unexpected error: %v", err)
		}
	case "timeout":
		if !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Sprintf("expected timeout, got %v", err)
		}
	default:
		if !errors.Is(err, errorKinds[c.Error]) {
			return fmt.Sprintf("expected %s error, got %v", c.Error, err)
		}
	}
	if c.Output != nil && string(output) != *c.Output {
		return fmt.Sprintf("output %q, want %q", output, *c.Output)
	}
	return ""
}
