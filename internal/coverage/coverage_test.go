package coverage

import (
	"path/filepath"
	"testing"
)

func TestRecordAccumulatesPerStatement(t *testing.T) {
	c := NewCounter("prog.bas")
	c.Record(10, 0)
	c.Record(10, 0)
	c.Record(10, 1)
	c.Record(20, 0)

	counts, ok := c.HitsFor(10)
	if !ok || counts[0] != 2 || counts[1] != 1 {
		t.Fatalf("HitsFor(10) = %v, %v", counts, ok)
	}
	counts, ok = c.HitsFor(20)
	if !ok || counts[0] != 1 {
		t.Fatalf("HitsFor(20) = %v, %v", counts, ok)
	}
}

func TestLinesAreSortedAscending(t *testing.T) {
	c := NewCounter("prog.bas")
	c.Record(100, 0)
	c.Record(2, 0)
	c.Record(30, 0)

	got := c.Lines()
	want := []int{2, 30, 100}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Lines() = %v, want %v", got, want)
		}
	}
}

func TestSaveLoadRoundTripMerges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coverage.json")

	first := NewCounter("prog.bas")
	first.Record(10, 0)
	first.Record(10, 0)
	if err := first.Save(path, "prog.bas", "2026-01-01T00:00:00Z"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	counts, ok := loaded.HitsFor(10)
	if !ok || counts[0] != 2 {
		t.Fatalf("loaded HitsFor(10) = %v, %v", counts, ok)
	}

	second := NewCounter("prog.bas")
	second.Record(10, 0)
	loaded.Merge(second)
	counts, _ = loaded.HitsFor(10)
	if counts[0] != 3 {
		t.Fatalf("after merge HitsFor(10)[0] = %d, want 3", counts[0])
	}
}

func TestLoadMissingFileReturnsEmptyCounter(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load of a missing file should not error: %v", err)
	}
	if len(c.Lines()) != 0 {
		t.Fatalf("expected an empty counter, got %v", c.Lines())
	}
}
