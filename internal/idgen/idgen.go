// Package idgen produces the human-readable display ids used for
// cross-document references (PROP…, OWN…, TRC…, INT…).
package idgen

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Generator is the display-id strategy. The random implementation below
// matches the historical format; swapping in a UUID- or sequence-backed
// implementation does not touch any call site.
type Generator interface {
	// DisplayID returns prefix + UTC date (yyyyMMdd) + a 4-digit suffix.
	DisplayID(prefix string) string
	// InternalCode returns prefix + UTC date (yyyyMMdd) + a 3-digit suffix.
	InternalCode(prefix string) string
}

type randomGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// NewRandom returns a Generator with random fixed-width suffixes. Collisions
// are only probabilistically avoided; nothing checks uniqueness downstream.
func NewRandom() Generator {
	return &randomGenerator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// NewRandomAt is like NewRandom with an injectable clock, for tests.
func NewRandomAt(now func() time.Time) Generator {
	return &randomGenerator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: now,
	}
}

func (g *randomGenerator) DisplayID(prefix string) string {
	return g.generate(prefix, 1000, 9000)
}

func (g *randomGenerator) InternalCode(prefix string) string {
	return g.generate(prefix, 100, 900)
}

func (g *randomGenerator) generate(prefix string, min, span int) string {
	g.mu.Lock()
	n := min + g.rnd.Intn(span)
	g.mu.Unlock()
	return fmt.Sprintf("%s%s%d", prefix, g.now().UTC().Format("20060102"), n)
}
