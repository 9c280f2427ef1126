package cmds

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("TestVarInt")
	b := Var[string]("TestVarString")
	GlobalExecutor.MustExecute([]string{
		"TestVarInt", "42",
		"TestVarString", "bar",
	})
	if *a != 42 {
		t.Fatalf("got %v", *a)
	}
	if *b != "bar" {
		t.Fatalf("got %v", *b)
	}
	GlobalExecutor.MustExecute([]string{
		"TestVarInt.",
	})
	if *a != 0 {
		t.Fatalf("got %v", *a)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*foo {
		t.Fatal("should be on")
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo {
		t.Fatal("should be off")
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a",
		"TestCollect", "b",
	})
	if str := fmt.Sprintf("%v", *list); str != "[a b]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Foo string
	v := Var[Foo]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "bar",
	})
	if *v != "bar" {
		t.Fatalf("got %v", *v)
	}
}

func TestHelperUsage(t *testing.T) {
	Var[int]("TestHelperUsage")
	buf := new(bytes.Buffer)
	GlobalExecutor.Usage(buf)
	for _, want := range []string{
		"TestHelperUsage <value>\tset TestHelperUsage",
		"TestHelperUsage.\treset TestHelperUsage",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("missing %q", want)
		}
	}
}
