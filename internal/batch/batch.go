// Package batch implements the line-oriented check protocol: a count and that
// many blocked domains, then a count and that many queries. Every query gets
// a "Bad" or "Good" verdict line, in input order.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"forbidden-domains/internal/domain"
)

const (
	VerdictBad  = "Bad"
	VerdictGood = "Good"
)

// ErrMissingCount is returned when the input ends where a count is expected.
var ErrMissingCount = errors.New("missing count line")

// Reader reads counts and domain lines while tracking line numbers for errors.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 64*1024)
	return &Reader{sc: sc}
}

func (r *Reader) next() (string, bool, error) {
	if !r.sc.Scan() {
		return "", false, r.sc.Err()
	}
	r.line++
	return r.sc.Text(), true, nil
}

// ReadCount reads one line holding a non-negative decimal number.
func (r *Reader) ReadCount() (int, error) {
	text, ok, err := r.next()
	if err != nil {
		return 0, fmt.Errorf("read count: %w", err)
	}
	if !ok {
		return 0, ErrMissingCount
	}

	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("line %d: invalid count %q", r.line, text)
	}
	return n, nil
}

// ReadDomains reads up to n domain lines. Reaching the end of input early is
// not an error: the keys read so far are returned.
func (r *Reader) ReadDomains(n int) ([]domain.Key, error) {
	keys := make([]domain.Key, 0, n)
	for i := 0; i < n; i++ {
		text, ok, err := r.next()
		if err != nil {
			return nil, fmt.Errorf("read domain: %w", err)
		}
		if !ok {
			break
		}

		k, err := domain.ParseKey(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// ReadSection reads a count line followed by that many domains.
func (r *Reader) ReadSection() ([]domain.Key, error) {
	n, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	return r.ReadDomains(n)
}

// Verdict maps a check result to its output word.
func Verdict(forbidden bool) string {
	if forbidden {
		return VerdictBad
	}
	return VerdictGood
}

// Run reads the blocklist and the queries from in and writes one verdict per
// query to out.
func Run(in io.Reader, out io.Writer) error {
	r := NewReader(in)

	blocked, err := r.ReadSection()
	if err != nil {
		return fmt.Errorf("blocklist: %w", err)
	}
	bl := domain.NewBlocklist(blocked)

	queries, err := r.ReadSection()
	if err != nil {
		return fmt.Errorf("queries: %w", err)
	}

	w := bufio.NewWriter(out)
	for _, q := range queries {
		if _, err := w.WriteString(Verdict(bl.IsForbidden(q)) + "\n"); err != nil {
			return fmt.Errorf("write verdict: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write verdict: %w", err)
	}
	return nil
}
