package domain

import "testing"

func TestRegistry_IsForbidden(t *testing.T) {
	var nilReg *Registry
	if nilReg.IsForbidden(NewKey("gdz.ru")) {
		t.Errorf("nil registry forbids gdz.ru")
	}

	reg := &Registry{Blocklist: NewBlocklist(keys("gdz.ru"))}
	if !reg.IsForbidden(NewKey("m.gdz.ru")) {
		t.Errorf("registry should forbid m.gdz.ru")
	}

	empty := &Registry{}
	if empty.IsForbidden(NewKey("gdz.ru")) {
		t.Errorf("registry without blocklist forbids gdz.ru")
	}
}
