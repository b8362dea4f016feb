package domain

import "sort"

// Blocklist is an immutable, reduced set of blocked domains.
//
// Entries are sorted by Key order and no entry is an ancestor-or-self of
// another one. A nil *Blocklist is valid and blocks nothing.
type Blocklist struct {
	entries []Key
}

// NewBlocklist copies keys, sorts them and drops every key already covered
// by a retained ancestor (duplicates included). Empty input gives an empty
// Blocklist.
func NewBlocklist(keys []Key) *Blocklist {
	entries := make([]Key, len(keys))
	copy(entries, keys)

	sort.Slice(entries, func(i, j int) bool { return entries[i].Compare(entries[j]) < 0 })

	return &Blocklist{entries: compactKeys(entries)}
}

// compactKeys removes keys covered by an earlier key from a sorted slice.
// Descendants sort right after their ancestor, so comparing against the
// last retained key is enough.
func compactKeys(src []Key) []Key {
	if len(src) == 0 {
		return src
	}

	dst := src[:1]
	last := src[0]
	for _, k := range src[1:] {
		if last.IsAncestorOrSelfOf(k) || k.IsAncestorOrSelfOf(last) {
			continue
		}
		dst = append(dst, k)
		last = k
	}

	// Drop references held by the tail of the backing array.
	clear(src[len(dst):])
	return dst
}

// IsForbidden reports whether query equals or is a subdomain of a blocked entry.
func (b *Blocklist) IsForbidden(query Key) bool {
	_, ok := b.Match(query)
	return ok
}

// Match returns the entry that blocks query, if any.
//
// Only the last entry ordered at-or-before query can cover it: any entry
// between a covering ancestor and query would itself be a descendant of that
// ancestor, which the reduction rules out. The same argument means query can
// only be an ancestor of that candidate when both are equal, so a single
// prefix test decides.
func (b *Blocklist) Match(query Key) (Key, bool) {
	if b == nil {
		return Key{}, false
	}

	es := b.entries
	i := sort.Search(len(es), func(i int) bool { return es[i].Compare(query) > 0 })
	if i == 0 {
		return Key{}, false
	}

	candidate := es[i-1]
	if candidate.IsAncestorOrSelfOf(query) {
		return candidate, true
	}
	return Key{}, false
}

// Entries returns a copy of the reduced, sorted entries.
func (b *Blocklist) Entries() []Key {
	if b == nil {
		return nil
	}
	out := make([]Key, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of entries left after reduction.
func (b *Blocklist) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}
