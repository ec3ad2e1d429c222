package marshal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArgList_OrderAndTermination(t *testing.T) {
	args := []string{"-std=c99", "-I/usr/include", "", "-DFOO=bar baz"}

	l := NewArgList(args)
	defer l.Release()

	ptrs := l.Pointers()
	if len(ptrs) != len(args) {
		t.Fatalf("Pointers() length = %d, want %d", len(ptrs), len(args))
	}
	if l.Len() != len(args) {
		t.Fatalf("Len() = %d, want %d", l.Len(), len(args))
	}

	got := make([]string, len(ptrs))
	for i, p := range ptrs {
		if p == nil {
			t.Fatalf("argument %d marshaled to nil pointer", i)
		}
		got[i] = GoString(p)
	}
	if diff := cmp.Diff(args, got); diff != "" {
		t.Errorf("marshaled arguments mismatch (-want +got):\n%s", diff)
	}
}

func TestArgList_CopiesCallerData(t *testing.T) {
	args := []string{"-c"}
	l := NewArgList(args)
	defer l.Release()

	// Mutating the caller's slice must not affect the marshaled array.
	args[0] = "-S"
	if s := GoString(l.Pointers()[0]); s != "-c" {
		t.Errorf("marshaled argument = %q, want %q", s, "-c")
	}
}

func TestArgList_Empty(t *testing.T) {
	l := NewArgList(nil)
	defer l.Release()

	if l.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", l.Len())
	}
	if len(l.Pointers()) != 0 {
		t.Fatal("expected empty pointer array")
	}
}

func TestArgList_ReleaseTwice(t *testing.T) {
	l := NewArgList([]string{"-v"})
	l.Release()
	l.Release()

	if l.Pointers() != nil {
		t.Error("Pointers() should be nil after Release")
	}
}

func TestCString(t *testing.T) {
	c := NewCString("/tmp/a.c")
	if got := GoString(c.Ptr()); got != "/tmp/a.c" {
		t.Errorf("GoString = %q, want %q", got, "/tmp/a.c")
	}
	c.Release()
	c.Release()
	if c.Ptr() != nil {
		t.Error("Ptr() should be nil after Release")
	}
}

func TestGoString_Nil(t *testing.T) {
	if GoString(nil) != "" {
		t.Error("GoString(nil) should be empty")
	}
}
