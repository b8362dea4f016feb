package domain

import "time"

// Registry is one loaded snapshot of the blocklist together with its origin.
// A Registry is never modified after it has been published.
type Registry struct {
	Blocklist *Blocklist
	Source    string    // where the entries came from (URL or file path)
	UpdatedAt time.Time // zero until the first successful load
}

// IsForbidden checks query against the snapshot. A nil Registry blocks nothing.
func (r *Registry) IsForbidden(query Key) bool {
	if r == nil {
		return false
	}
	return r.Blocklist.IsForbidden(query)
}
