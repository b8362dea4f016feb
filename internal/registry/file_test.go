package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"forbidden-domains/internal/domain"
)

func TestFileSource_FetchRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocklist.txt")
	data := `# blocked domains
gdz.ru
  papiroska.rf

# duplicates and children collapse
free.gdz.ru
GDZ.RU.
not a domain
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	reg, err := NewFileSource(path).FetchRegistry(context.Background())
	if err != nil {
		t.Fatalf("FetchRegistry error: %v", err)
	}

	entries := reg.Blocklist.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %v, want 2", entries)
	}
	if entries[0].String() != "papiroska.rf" || entries[1].String() != "gdz.ru" {
		t.Errorf("entries = %v, want [papiroska.rf gdz.ru]", entries)
	}
	if reg.Source != path {
		t.Errorf("Source = %q, want %q", reg.Source, path)
	}
	if !reg.IsForbidden(domain.NewKey("hqd.papiroska.rf")) {
		t.Errorf("expected hqd.papiroska.rf to be forbidden")
	}
	if reg.IsForbidden(domain.NewKey("hqdpapiroska.rf")) {
		t.Errorf("expected hqdpapiroska.rf to be allowed")
	}
}

func TestFileSource_Missing(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.txt"))
	if _, err := src.FetchRegistry(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
