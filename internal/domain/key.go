package domain

import "strings"

// labelSep separates labels in both the dotted and the reversed form.
const labelSep = "."

// Key is the order-comparable form of a domain name.
//
// Labels are stored from the top-level label down to the most specific one,
// each followed by a separator: "hqd.papiroska.rf" becomes "rf.papiroska.hqd.".
// With that encoding "A is B or a subdomain of B" is exactly "B's form is a
// prefix of A's form", and sorting forms lexicographically places every
// domain right after its ancestors with all of its descendants contiguous.
// The trailing separator keeps "rf.papiroska." from matching "rf.papiroskax.".
type Key struct {
	form string
}

// NewKey builds a Key from a non-empty dot-separated domain name. The input
// is not validated; use ParseKey for untrusted data.
func NewKey(raw string) Key {
	labels := strings.Split(raw, labelSep)

	var b strings.Builder
	b.Grow(len(raw) + 1)
	for i := len(labels) - 1; i >= 0; i-- {
		b.WriteString(labels[i])
		b.WriteString(labelSep)
	}
	return Key{form: b.String()}
}

// Form returns the normalized (reversed, separator-terminated) representation.
func (k Key) Form() string {
	return k.form
}

// String returns the domain name in the usual dotted notation.
func (k Key) String() string {
	if k.form == "" {
		return ""
	}
	labels := strings.Split(strings.TrimSuffix(k.form, labelSep), labelSep)
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return strings.Join(labels, labelSep)
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k.form == ""
}

func (k Key) Equal(other Key) bool {
	return k.form == other.form
}

// Compare orders keys by their normalized form. It returns -1, 0 or +1.
func (k Key) Compare(other Key) int {
	return strings.Compare(k.form, other.form)
}

// IsAncestorOrSelfOf reports whether other is k itself or one of its subdomains.
func (k Key) IsAncestorOrSelfOf(other Key) bool {
	return strings.HasPrefix(other.form, k.form)
}

// IsSubdomainOf reports whether k is other itself or one of its subdomains.
func (k Key) IsSubdomainOf(other Key) bool {
	return other.IsAncestorOrSelfOf(k)
}
