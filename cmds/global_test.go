package cmds

import (
	"slices"
	"testing"
)

func TestVar(t *testing.T) {
	n := Var[int]("TestVar.n", "")
	s := Var[string]("TestVar.s", "")
	if err := Execute([]string{
		"TestVar.n", "42",
		"TestVar.s=bar",
	}); err != nil {
		t.Fatal(err)
	}
	if *n != 42 || *s != "bar" {
		t.Fatalf("got %d %q", *n, *s)
	}
}

func TestTypedVar(t *testing.T) {
	type Policy string
	v := Var[Policy]("TestTypedVar", "")
	if err := Execute([]string{"TestTypedVar", "zero"}); err != nil {
		t.Fatal(err)
	}
	if *v != "zero" {
		t.Fatalf("got %q", *v)
	}
}

func TestSwitch(t *testing.T) {
	on := Switch("TestSwitch", "")
	if err := Execute([]string{"TestSwitch"}); err != nil {
		t.Fatal(err)
	}
	if !*on {
		t.Fatal("should be on")
	}
	if err := Execute([]string{"!TestSwitch"}); err != nil {
		t.Fatal(err)
	}
	if *on {
		t.Fatal("should be off")
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect", "")
	if err := Execute([]string{
		"TestCollect", "a.cue",
		"TestCollect", "b.cue",
	}); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(*list, []string{"a.cue", "b.cue"}) {
		t.Fatalf("got %v", *list)
	}
}
