package registry

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"forbidden-domains/internal/domain"
)

// FileSource loads the blocklist from a text file with one domain per line.
// Blank lines and lines starting with '#' are ignored.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchRegistry implements the Fetcher interface.
func (f *FileSource) FetchRegistry(ctx context.Context) (*domain.Registry, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open blocklist: %w", err)
	}
	defer file.Close()

	col := newCollector(1024)
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		col.add(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read blocklist: %w", err)
	}

	return col.registry("blocklist file", f.path), nil
}
