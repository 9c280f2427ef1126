package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero(0, 3, 4); got != 3 {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero("", ""); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestDerefOrZero(t *testing.T) {
	if got := DerefOrZero[string](nil); got != "" {
		t.Fatalf("got %q", got)
	}
	s := "x"
	if got := DerefOrZero(&s); got != "x" {
		t.Fatalf("got %q", got)
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Y":     true,
		"no":    false,
		" On ":  true,
		"1":     true,
		"0":     false,
		"other": false,
	} {
		if got := StrToBool(str); got != expected {
			t.Fatalf("%s: got %v", str, got)
		}
	}
}
