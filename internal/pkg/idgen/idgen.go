package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Generator produces booking identifiers. Ids only need to be unique within
// one booking collection, not globally.
type Generator interface {
	NewID(now time.Time) string
}

// TimeRand generates ids of the form booking-<unix-ms>-<random hex>, so ids
// sort roughly by creation time and stay unique across rapid submissions.
type TimeRand struct{}

func NewTimeRand() *TimeRand {
	return &TimeRand{}
}

func (g *TimeRand) NewID(now time.Time) string {
	suffix := make([]byte, 5)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("booking-%d-%d", now.UnixMilli(), now.UnixNano()%1_000_000_000)
	}
	return fmt.Sprintf("booking-%d-%s", now.UnixMilli(), hex.EncodeToString(suffix))
}

// Fixed returns a predetermined sequence of ids, for tests.
type Fixed struct {
	ids  []string
	next int
}

func NewFixed(ids ...string) *Fixed {
	return &Fixed{ids: ids}
}

func (g *Fixed) NewID(_ time.Time) string {
	if g.next >= len(g.ids) {
		return fmt.Sprintf("booking-fixed-%d", g.next)
	}
	id := g.ids[g.next]
	g.next++
	return id
}
