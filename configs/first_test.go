package configs

import (
	"fmt"
	"strings"
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue", "test2.cue"}, testSchema)

	if str := First[string](loader, "str"); str != "bar" {
		t.Fatalf("got %v", str)
	}
	if list := First[[]int](loader, "not"); list != nil {
		t.Fatalf("got %v", list)
	}
}

func TestLookup(t *testing.T) {
	loader := NewLoader([]string{"test2.cue"}, testSchema)

	str, ok, err := Lookup[string](loader, "str")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || str != "foo" {
		t.Fatalf("got %v %q", ok, str)
	}

	_, ok, err = Lookup[[]int](loader, "list")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("should not be set")
	}

	_, _, err = Lookup[int](loader, "str")
	if err == nil || !strings.HasPrefix(err.Error(), "config str: ") {
		t.Fatalf("got %v", err)
	}
}

func TestAll(t *testing.T) {
	loader := NewLoader([]string{"test.cue", "test2.cue"}, testSchema)
	var strs []string
	for str := range All[string](loader, "str") {
		strs = append(strs, str)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %s", str)
	}
}
