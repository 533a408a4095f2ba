package dispatch

import (
	"errors"
	"slices"
	"testing"
)

func TestParseInvocation(t *testing.T) {
	inv, err := ParseInvocation([]string{"/usr/local/bin/git", "status", "--short", "a b"})
	if err != nil {
		t.Fatalf("ParseInvocation returned error: %v", err)
	}
	if inv.Path != "/usr/local/bin/git" {
		t.Fatalf("Path = %q", inv.Path)
	}
	if inv.Name != "git" {
		t.Fatalf("Name = %q, want git", inv.Name)
	}
	if want := []string{"status", "--short", "a b"}; !slices.Equal(inv.Args, want) {
		t.Fatalf("Args = %#v, want %#v", inv.Args, want)
	}
}

func TestParseInvocationWithoutArgs(t *testing.T) {
	inv, err := ParseInvocation([]string{"git"})
	if err != nil {
		t.Fatalf("ParseInvocation returned error: %v", err)
	}
	if inv.Name != "git" || len(inv.Args) != 0 {
		t.Fatalf("unexpected invocation: %#v", inv)
	}
}

func TestParseInvocationRequiresPath(t *testing.T) {
	if _, err := ParseInvocation(nil); !errors.Is(err, ErrMissingCommand) {
		t.Fatalf("got %v, want ErrMissingCommand", err)
	}
}

func TestEnvWith(t *testing.T) {
	env := Env{"HOME=/root", "PATH=/a:/b", "TERM=xterm", "PATH=/dup"}

	got := env.With("PATH", "/b")
	want := Env{"HOME=/root", "PATH=/b", "TERM=xterm"}
	if !slices.Equal(got, want) {
		t.Fatalf("With = %#v, want %#v", got, want)
	}
	if env[1] != "PATH=/a:/b" {
		t.Fatalf("With modified receiver: %#v", env)
	}

	added := Env{"HOME=/root"}.With("PATH", "/x")
	if !slices.Equal(added, Env{"HOME=/root", "PATH=/x"}) {
		t.Fatalf("With appended %#v", added)
	}
}

func TestEnvLookup(t *testing.T) {
	env := Env{"EMPTY=", "PATH=/a", "PATH=/b", "MALFORMED"}
	if v, ok := env.Lookup("EMPTY"); !ok || v != "" {
		t.Fatalf("Lookup(EMPTY) = %q, %v", v, ok)
	}
	if v := env.Get("PATH"); v != "/a" {
		t.Fatalf("Get(PATH) = %q, want first value", v)
	}
	if _, ok := env.Lookup("MALFORMED"); ok {
		t.Fatalf("Lookup(MALFORMED) reported present")
	}
}
