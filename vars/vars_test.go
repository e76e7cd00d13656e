package vars

import "testing"

func TestParseBool(t *testing.T) {
	for str, want := range map[string]bool{
		"true": true,
		"T":    true,
		"1":    true,
		"Yes":  true,
		"on":   true,
		"no":   false,
		"off":  false,
		"0":    false,
		"F":    false,
	} {
		got, err := ParseBool(str)
		if err != nil {
			t.Fatalf("%s: %v", str, err)
		}
		if got != want {
			t.Fatalf("%s: got %v", str, got)
		}
	}
	if _, err := ParseBool("maybe"); err == nil {
		t.Fatal("should error")
	}
}
