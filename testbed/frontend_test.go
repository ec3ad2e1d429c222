package testbed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cxindex/cxindex"
	"github.com/cxindex/cxindex/marshal"
)

func TestArtifact_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unit.ast")
	source := []byte("int x;\n")

	if err := WriteArtifact(path, "x.c", source); err != nil {
		t.Fatalf("WriteArtifact: %v", err)
	}

	a, err := readArtifact(path)
	if err != nil {
		t.Fatalf("readArtifact: %v", err)
	}
	if a.Path != "x.c" {
		t.Errorf("Path = %q, want %q", a.Path, "x.c")
	}
	if string(a.Source) != string(source) {
		t.Errorf("Source = %q, want %q", a.Source, source)
	}
}

func TestArtifact_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ast")
	if err := os.WriteFile(path, []byte("not msgpack"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readArtifact(path); err == nil {
		t.Fatal("expected decode error for corrupt artifact")
	}
}

func TestFrontend_CreateTranslationUnit_Missing(t *testing.T) {
	fe := New()
	idx := fe.CreateIndex(0, 0)

	name := marshal.NewCString(filepath.Join(t.TempDir(), "missing.ast"))
	defer name.Release()

	if h := fe.CreateTranslationUnit(idx, name.Ptr()); h != 0 {
		t.Fatalf("expected zero handle, got %d", h)
	}
}

func TestFrontend_ParseResolvesOverlayFirst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.c")
	if err := os.WriteFile(path, []byte("disk"), 0o644); err != nil {
		t.Fatal(err)
	}

	fe := New()
	idx := fe.CreateIndex(0, 0)

	name := marshal.NewCString(path)
	defer name.Release()
	unsaved := marshal.NewUnsavedList([]marshal.Overlay{{Path: path, Contents: []byte("overlay")}})
	defer unsaved.Release()

	var out cxindex.UnitHandle
	code := fe.ParseTranslationUnit(idx, name.Ptr(), nil, unsaved.Files(), 0, &out)
	if code != cxindex.Success {
		t.Fatalf("code = %d, want Success", code)
	}
	if got := string(fe.Unit(out).Source); got != "overlay" {
		t.Errorf("Source = %q, want %q", got, "overlay")
	}
}

func TestFrontend_ParseStatusCodes(t *testing.T) {
	fe := New()
	idx := fe.CreateIndex(0, 0)

	flag := marshal.NewCString("-c")
	defer flag.Release()

	var out cxindex.UnitHandle
	if code := fe.ParseTranslationUnit(idx, nil, []*byte{flag.Ptr()}, nil, 0, &out); code != cxindex.InvalidArguments {
		t.Errorf("no path anywhere: code = %d, want InvalidArguments", code)
	}

	name := marshal.NewCString(filepath.Join(t.TempDir(), "nope.c"))
	defer name.Release()
	if code := fe.ParseTranslationUnit(idx, name.Ptr(), nil, nil, 0, &out); code != cxindex.Failure {
		t.Errorf("unreadable source: code = %d, want Failure", code)
	}
}

func TestFrontend_RecordsCalls(t *testing.T) {
	fe := New()
	idx := fe.CreateIndex(1, 1)

	st := fe.Index(idx)
	if st == nil || !st.ExcludePCH || !st.DisplayDiagnostics {
		t.Fatalf("index state = %+v, want both options set", st)
	}

	var out cxindex.UnitHandle
	fe.ParseTranslationUnit(idx, nil, nil, nil, cxindex.FlagKeepGoing, &out)

	calls := fe.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 recorded call, got %d", len(calls))
	}
	if calls[0].Flags != cxindex.FlagKeepGoing {
		t.Errorf("Flags = %#x, want %#x", calls[0].Flags, cxindex.FlagKeepGoing)
	}
	if calls[0].Code != cxindex.InvalidArguments {
		t.Errorf("Code = %d, want InvalidArguments", calls[0].Code)
	}
}
