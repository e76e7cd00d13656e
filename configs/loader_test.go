package configs

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
`

func TestDecode(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)
	if err := loader.Check(); err != nil {
		t.Fatal(err)
	}

	var str string
	if err := loader.Decode("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	if err := loader.Decode("list", &list); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(list, []int{1, 2, 3}) {
		t.Fatalf("got %v", list)
	}

	err := loader.Decode("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestEarlierFileWins(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test2.cue",
		"testdata/test.cue",
	}, testSchema)
	if str := First[string](loader, "str"); str != "foo" {
		t.Fatalf("got %q", str)
	}
	// only defined in the second file
	if list := First[[]int](loader, "list"); len(list) != 3 {
		t.Fatalf("got %v", list)
	}
}

func TestSchemaRejectsUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	err := loader.Check()
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "validate config testdata/bad.cue") {
		t.Fatalf("got %v", err)
	}
	var str string
	if err := loader.Decode("str", &str); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/missing.cue",
	}, testSchema)
	err := loader.Check()
	if err == nil || !strings.Contains(err.Error(), "testdata/missing.cue") {
		t.Fatalf("got %v", err)
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)
	var n int
	err := loader.Decode("str", &n)
	if err == nil || !strings.Contains(err.Error(), "decode str in testdata/test.cue") {
		t.Fatalf("got %v", err)
	}
}
