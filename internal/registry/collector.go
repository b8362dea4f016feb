package registry

import (
	"log"
	"time"

	"forbidden-domains/internal/domain"
)

const maxSamples = 5

// collector turns raw registry lines into keys and keeps track of what had
// to be skipped, so every source reports the same counters.
type collector struct {
	keys           []domain.Key
	skippedEmpty   int
	skippedInvalid int
	samples        []string
}

func newCollector(sizeHint int) *collector {
	return &collector{keys: make([]domain.Key, 0, sizeHint)}
}

func (c *collector) add(raw string) {
	if isBlank(raw) {
		c.skippedEmpty++
		return
	}

	k, err := domain.ParseKey(raw)
	if err != nil {
		c.skippedInvalid++
		return
	}

	if len(c.samples) < maxSamples {
		c.samples = append(c.samples, k.String())
	}
	c.keys = append(c.keys, k)
}

// registry builds the immutable snapshot and logs load statistics.
func (c *collector) registry(logPrefix, source string) *domain.Registry {
	bl := domain.NewBlocklist(c.keys)

	log.Printf("%s: skipped %d invalid domains", logPrefix, c.skippedInvalid)
	log.Printf("%s: skipped %d empty domains", logPrefix, c.skippedEmpty)
	log.Printf("%s: blocklist built: %d raw domains, %d after reduction", logPrefix, len(c.keys), bl.Len())
	for i, s := range c.samples {
		log.Printf("%s: sample domain[%d]=%s", logPrefix, i, s)
	}

	return &domain.Registry{
		Blocklist: bl,
		Source:    source,
		UpdatedAt: time.Now(),
	}
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}
