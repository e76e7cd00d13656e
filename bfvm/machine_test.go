package bfvm

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reusee/bf/bfcode"
)

func run(t *testing.T, src string, input string, options Options) (*Machine, string, error) {
	t.Helper()
	program, err := bfcode.ParseString("test", src)
	if err != nil {
		t.Fatal(err)
	}
	out := new(bytes.Buffer)
	options.In = Reader(strings.NewReader(input))
	options.Out = Writer(out)
	m := New(options)
	err = m.Execute(context.Background(), program)
	return m, out.String(), err
}

type noReadSource struct {
	t *testing.T
}

func (n noReadSource) ReadByte() (byte, error) {
	n.t.Fatal("unexpected read")
	return 0, nil
}

type recordSink struct {
	bytes   []byte
	flushes int
}

func (r *recordSink) WriteByte(b byte) error {
	r.bytes = append(r.bytes, b)
	return nil
}

func (r *recordSink) Flush() error {
	r.flushes++
	return nil
}

func TestEmptyProgram(t *testing.T) {
	sink := new(recordSink)
	m := New(Options{
		In:  noReadSource{t: t},
		Out: sink,
	})
	if err := m.Execute(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	tape := m.Tape()
	if tape.Cursor != 0 {
		t.Fatalf("got cursor %d", tape.Cursor)
	}
	if tape.Len() != DefaultTapeSize {
		t.Fatalf("got len %d", tape.Len())
	}
	for i, c := range tape.Cells {
		if c != 0 {
			t.Fatalf("cell %d is %d", i, c)
		}
	}
	if len(sink.bytes) != 0 || sink.flushes != 0 {
		t.Fatal("unexpected output")
	}
	if m.Steps() != 0 {
		t.Fatalf("got %d steps", m.Steps())
	}
}

func TestWrapAround(t *testing.T) {
	m, _, err := run(t, "+-", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if c := m.Tape().Current(); c != 0 {
		t.Fatalf("got %d", c)
	}

	m, _, err = run(t, "-", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if c := m.Tape().Current(); c != 255 {
		t.Fatalf("got %d", c)
	}

	// 255 -> + -> 0 -> - -> 255
	m, _, err = run(t, "-+", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if c := m.Tape().Current(); c != 0 {
		t.Fatalf("got %d", c)
	}
	m, _, err = run(t, "-+-", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if c := m.Tape().Current(); c != 255 {
		t.Fatalf("got %d", c)
	}

	m, _, err = run(t, strings.Repeat("+", 256), "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if c := m.Tape().Current(); c != 0 {
		t.Fatalf("got %d", c)
	}
}

func TestMultiply(t *testing.T) {
	_, out, err := run(t, "++++++[>++++++++++<-]>.", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if out != string([]byte{60}) {
		t.Fatalf("got %v", []byte(out))
	}
}

func TestEcho(t *testing.T) {
	_, out, err := run(t, ",.", "A", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if out != "A" {
		t.Fatalf("got %q", out)
	}
}

func TestHelloWorld(t *testing.T) {
	_, out, err := run(t,
		"++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.",
		"", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if out != "Hello World!\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRawByteOutput(t *testing.T) {
	_, out, err := run(t, strings.Repeat("+", 200)+".", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal([]byte(out), []byte{0xc8}) {
		t.Fatalf("got %v", []byte(out))
	}
}

func TestFlushEveryByte(t *testing.T) {
	program := bfcode.MustParse("+.+.+.")
	sink := new(recordSink)
	m := New(Options{
		Out: sink,
	})
	if err := m.Execute(context.Background(), program); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(sink.bytes, []byte{1, 2, 3}) {
		t.Fatalf("got %v", sink.bytes)
	}
	if sink.flushes != 3 {
		t.Fatalf("got %d flushes", sink.flushes)
	}
}

func TestPointerUnderflow(t *testing.T) {
	_, _, err := run(t, "<", "", Options{})
	if !errors.Is(err, ErrPointerUnderflow) {
		t.Fatalf("got %v", err)
	}
	var underflow *PointerUnderflowError
	if !errors.As(err, &underflow) {
		t.Fatalf("got %T", err)
	}
	if underflow.Pos.Offset != 0 {
		t.Fatalf("got %v", underflow.Pos)
	}

	_, _, err = run(t, "+>+<<+", "", Options{})
	if !errors.As(err, &underflow) {
		t.Fatalf("got %v", err)
	}
	if underflow.Pos.Offset != 4 {
		t.Fatalf("got %v", underflow.Pos)
	}
}

func TestGrowOnOverflow(t *testing.T) {
	src := "+>++>+++" + strings.Repeat(">", DefaultTapeSize) + "+"
	m, _, err := run(t, src, "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	tape := m.Tape()
	if tape.Len() < DefaultTapeSize+1 {
		t.Fatalf("got len %d", tape.Len())
	}
	if tape.Len() != DefaultTapeSize*2 {
		t.Fatalf("expected doubling, got %d", tape.Len())
	}
	if tape.Cursor != DefaultTapeSize+2 {
		t.Fatalf("got cursor %d", tape.Cursor)
	}
	if tape.Cells[0] != 1 || tape.Cells[1] != 2 || tape.Cells[2] != 3 {
		t.Fatalf("got %v", tape.Cells[:3])
	}
	if tape.Cells[tape.Cursor] != 1 {
		t.Fatal()
	}
}

func TestGrowSmallTape(t *testing.T) {
	m, _, err := run(t, "+>+>+>+>+", "", Options{
		TapeSize: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	tape := m.Tape()
	if tape.Len() != 8 {
		t.Fatalf("got %d", tape.Len())
	}
	for i := range 5 {
		if tape.Cells[i] != 1 {
			t.Fatalf("cell %d is %d", i, tape.Cells[i])
		}
	}

	empty := &Tape{}
	empty.grow()
	if empty.Len() != 1 {
		t.Fatalf("got %d", empty.Len())
	}
}

func TestEOFPolicies(t *testing.T) {
	_, _, err := run(t, ",", "", Options{})
	if !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, ErrIO) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, io.EOF) {
		t.Fatalf("got %v", err)
	}

	m, _, err := run(t, "+++,", "", Options{
		EOF: EOFZero,
	})
	if err != nil {
		t.Fatal(err)
	}
	if c := m.Tape().Current(); c != 0 {
		t.Fatalf("got %d", c)
	}

	m, _, err = run(t, "+++,", "", Options{
		EOF: EOFKeep,
	})
	if err != nil {
		t.Fatal(err)
	}
	if c := m.Tape().Current(); c != 3 {
		t.Fatalf("got %d", c)
	}

	// cat until end of input
	_, out, err := run(t, ",[.,]", "hello", Options{
		EOF: EOFZero,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out != "hello" {
		t.Fatalf("got %q", out)
	}
}

func TestParseEOFPolicy(t *testing.T) {
	for str, expected := range map[string]EOFPolicy{
		"":          EOFFail,
		"fail":      EOFFail,
		"zero":      EOFZero,
		"keep":      EOFKeep,
		"unchanged": EOFKeep,
	} {
		policy, err := ParseEOFPolicy(str)
		if err != nil {
			t.Fatal(err)
		}
		if policy != expected {
			t.Fatalf("%q: got %v", str, policy)
		}
	}
	if _, err := ParseEOFPolicy("minus-one"); err == nil {
		t.Fatal("should error")
	}
}

type failingSink struct{}

var errSinkClosed = errors.New("sink closed")

func (failingSink) WriteByte(byte) error {
	return errSinkClosed
}

func TestOutputFailure(t *testing.T) {
	m := New(Options{
		Out: failingSink{},
	})
	err := m.Execute(context.Background(), bfcode.MustParse("+."))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, errSinkClosed) {
		t.Fatalf("got %v", err)
	}
	if errors.Is(err, ErrEndOfStream) {
		t.Fatal()
	}
}

func TestInfiniteLoopStepLimit(t *testing.T) {
	m, _, err := run(t, "+[]", "", Options{
		MaxSteps: 10000,
	})
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("got %v", err)
	}
	if m.Steps() != 10001 {
		t.Fatalf("got %d", m.Steps())
	}

	// a terminating program within the budget is unaffected
	_, out, err := run(t, "++++++[>++++++++++<-]>.", "", Options{
		MaxSteps: 1000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out != "<" {
		t.Fatalf("got %q", out)
	}
}

func TestStepCounting(t *testing.T) {
	// three primitives, loop checked twice, body of one primitive run once
	m, _, err := run(t, "+[-]+", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if m.Steps() != 5 {
		t.Fatalf("got %d", m.Steps())
	}
	_, _, err = run(t, "+[-]+", "", Options{MaxSteps: 5})
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = run(t, "+[-]+", "", Options{MaxSteps: 4})
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("got %v", err)
	}
}

func TestContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := New(Options{})
	err := m.Execute(ctx, bfcode.MustParse("+[]"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}

func TestRunYield(t *testing.T) {
	m := New(Options{
		YieldEvery: 100,
	})
	interrupts := 0
	for interrupt, err := range m.Run(context.Background(), bfcode.MustParse("+[]")) {
		if err != nil {
			t.Fatal(err)
		}
		if interrupt != InterruptYield {
			t.Fatalf("got %v", interrupt)
		}
		interrupts++
		if interrupts == 5 {
			break
		}
	}
	if m.Steps() != 500 {
		t.Fatalf("got %d", m.Steps())
	}
}

func TestRunReportsOneError(t *testing.T) {
	m := New(Options{})
	var errs []error
	for _, err := range m.Run(context.Background(), bfcode.MustParse("<<")) {
		errs = append(errs, err)
	}
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
}

func TestNoStateAcrossRuns(t *testing.T) {
	m := New(Options{})
	program := bfcode.MustParse("+++>")
	for range 2 {
		if err := m.Execute(context.Background(), program); err != nil {
			t.Fatal(err)
		}
		if m.Tape().Cells[0] != 3 || m.Tape().Cursor != 1 {
			t.Fatalf("got %v %d", m.Tape().Cells[:2], m.Tape().Cursor)
		}
	}
}

func TestPackageExecute(t *testing.T) {
	out := new(bytes.Buffer)
	err := Execute(context.Background(), bfcode.MustParse(",+."), strings.NewReader("a"), out)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "b" {
		t.Fatalf("got %q", out.String())
	}
}
