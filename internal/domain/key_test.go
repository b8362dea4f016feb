package domain

import "testing"

func TestNewKey_Form(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "papiroska.rf", want: "rf.papiroska."},
		{raw: "hqd.papiroska.rf", want: "rf.papiroska.hqd."},
		{raw: "com", want: "com."},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := NewKey(tt.raw)
			if got.Form() != tt.want {
				t.Errorf("NewKey(%q).Form() = %q, want %q", tt.raw, got.Form(), tt.want)
			}
			if got.String() != tt.raw {
				t.Errorf("NewKey(%q).String() = %q, want %q", tt.raw, got.String(), tt.raw)
			}
		})
	}
}

func TestKey_Equal(t *testing.T) {
	if !NewKey("papiroska.rf").Equal(NewKey("papiroska.rf")) {
		t.Errorf("expected equal keys for the same domain")
	}
	if NewKey("papiroska.rf").Equal(NewKey("hqd.papiroska.rf")) {
		t.Errorf("expected parent and child keys to differ")
	}
	a, b := NewKey("papiroska.rf"), NewKey("PAPIROSKA.rf")
	if a == b || a.Equal(b) {
		t.Errorf("NewKey does not fold case; expected %q and %q to differ", a.Form(), b.Form())
	}
}

func TestKey_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "equal", a: "gdz.ru", b: "gdz.ru", want: 0},
		{name: "ancestor first", a: "gdz.ru", b: "m.gdz.ru", want: -1},
		{name: "descendant after", a: "alg.m.gdz.ru", b: "gdz.ru", want: 1},
		{name: "ordered by top level label", a: "zzz.me", b: "aaa.ru", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewKey(tt.a).Compare(NewKey(tt.b))
			if got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestKey_IsAncestorOrSelfOf(t *testing.T) {
	tests := []struct {
		name     string
		ancestor string
		other    string
		want     bool
	}{
		{name: "self", ancestor: "papiroska.rf", other: "papiroska.rf", want: true},
		{name: "child", ancestor: "papiroska.rf", other: "hqd.papiroska.rf", want: true},
		{name: "deep child", ancestor: "rf", other: "a.b.papiroska.rf", want: true},
		{name: "no label boundary", ancestor: "papiroska.rf", other: "hqdpapiroska.rf", want: false},
		{name: "longer label", ancestor: "papiroska.rf", other: "papiroskax.rf", want: false},
		{name: "tld is not a label prefix", ancestor: "com", other: "comfoo", want: false},
		{name: "child is not ancestor", ancestor: "hqd.papiroska.rf", other: "papiroska.rf", want: false},
		{name: "sibling", ancestor: "gdz.ru", other: "gdz.ua", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, o := NewKey(tt.ancestor), NewKey(tt.other)
			if got := a.IsAncestorOrSelfOf(o); got != tt.want {
				t.Errorf("%q.IsAncestorOrSelfOf(%q) = %v, want %v", tt.ancestor, tt.other, got, tt.want)
			}
			if got := o.IsSubdomainOf(a); got != tt.want {
				t.Errorf("%q.IsSubdomainOf(%q) = %v, want %v", tt.other, tt.ancestor, got, tt.want)
			}
		})
	}
}

func TestKey_Zero(t *testing.T) {
	var k Key
	if !k.IsZero() {
		t.Errorf("zero Key should report IsZero")
	}
	if k.String() != "" {
		t.Errorf("zero Key String() = %q, want empty", k.String())
	}
	if NewKey("gdz.ru").IsZero() {
		t.Errorf("non-zero Key reported IsZero")
	}
}
