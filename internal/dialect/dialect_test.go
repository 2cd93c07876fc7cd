package dialect

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFoldIsCaseInsensitive(t *testing.T) {
	d := Default()
	if d.Fold("print") != d.Fold("PRINT") {
		t.Fatalf("Fold(print) = %q, Fold(PRINT) = %q, want equal", d.Fold("print"), d.Fold("PRINT"))
	}
}

func TestFoldIsIdempotent(t *testing.T) {
	d := Default()
	once := d.Fold("Hello")
	twice := d.Fold(once)
	if once != twice {
		t.Fatalf("Fold is not idempotent: Fold(x) = %q, Fold(Fold(x)) = %q", once, twice)
	}
}

func TestEqual(t *testing.T) {
	d := Default()
	if !d.Equal("abc", "ABC") {
		t.Fatal("Equal(abc, ABC) should be true under the default case-insensitive dialect")
	}
}

func TestCaseSensitiveDialectDoesNotFold(t *testing.T) {
	d := &Dialect{CaseSensitive: true}
	if d.Fold("Abc") != "Abc" {
		t.Fatalf("Fold(Abc) = %q under a case-sensitive dialect, want unchanged", d.Fold("Abc"))
	}
}

func TestLoadProfileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dialect.yaml")
	yaml := "case_sensitive: true\nprint_column_width: 10\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	d, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.CaseSensitive {
		t.Fatal("CaseSensitive should be true after loading the profile")
	}
	if d.PrintColumnWidth != 10 {
		t.Fatalf("PrintColumnWidth = %d, want 10", d.PrintColumnWidth)
	}
	if !d.NumberLeadSpace {
		t.Fatal("NumberLeadSpace should still carry Default()'s value, since the profile didn't override it")
	}
}

func TestLoadProfileMissingFileIsError(t *testing.T) {
	if _, err := LoadProfile("/nonexistent/dialect.yaml"); err == nil {
		t.Fatal("expected an error loading a nonexistent dialect profile")
	}
}
