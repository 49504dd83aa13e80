// Package draw picks the cards offered on the region map and decides how much
// of each one the player's intel reveals.
package draw

import (
	"log/slog"
	"math/rand/v2"

	"github.com/jwebster45206/expedition/pkg/disclosure"
	"github.com/jwebster45206/expedition/pkg/location"
	"github.com/jwebster45206/expedition/pkg/region"
	"github.com/zyedidia/generic/mapset"
)

// MaxCards is the number of cards offered per draw.
const MaxCards = 3

// IntelRule prices the disclosure tiers. Raising a card to Partial costs
// PartialCost; raising it further to Full costs FullCost on top.
type IntelRule struct {
	PartialCost int
	FullCost    int
}

// DefaultIntelRule reveals one card fully for every 40 intel.
var DefaultIntelRule = IntelRule{PartialCost: 20, FullCost: 20}

// Allocate assigns tiers to n cards in draw order, spending the pool greedily:
// each card is raised as far as the remaining budget allows before the next
// card gets anything. The pool itself is not modified.
func (r IntelRule) Allocate(n int, pool region.IntelPool) []disclosure.Tier {
	tiers := make([]disclosure.Tier, n)
	budget := pool.TotalIntel
	for i := range tiers {
		if budget < r.PartialCost {
			break
		}
		budget -= r.PartialCost
		tiers[i] = disclosure.Partial
		if budget < r.FullCost {
			break
		}
		budget -= r.FullCost
		tiers[i] = disclosure.Full
	}
	return tiers
}

// Drawer draws location cards from a region.
type Drawer struct {
	rng    *rand.Rand
	rule   IntelRule
	logger *slog.Logger
}

// NewDrawer creates a drawer with a deterministic seed.
func NewDrawer(seed uint64, rule IntelRule, logger *slog.Logger) *Drawer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Drawer{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		rule:   rule,
		logger: logger,
	}
}

// Draw offers up to MaxCards accessible locations. Locations the player has
// not completed come first; completed ones fill the remaining slots as revisits.
func (d *Drawer) Draw(r *region.Region, pool region.IntelPool, completed mapset.Set[string]) []disclosure.Card {
	var fresh, revisits []location.Location
	for _, loc := range r.Locations {
		if !loc.Access.IsAccessible() {
			continue
		}
		if loc.Access.IsCompleted() || completed.Has(loc.ID) {
			revisits = append(revisits, loc)
		} else {
			fresh = append(fresh, loc)
		}
	}
	d.shuffle(fresh)
	d.shuffle(revisits)

	picked := make([]location.Location, 0, MaxCards)
	revisitFrom := len(fresh)
	for _, loc := range append(fresh, revisits...) {
		if len(picked) == MaxCards {
			break
		}
		picked = append(picked, loc)
	}

	tiers := d.rule.Allocate(len(picked), pool)
	cards := make([]disclosure.Card, len(picked))
	for i, loc := range picked {
		cards[i] = disclosure.NewCard(loc, tiers[i], i >= revisitFrom)
	}

	d.logger.Debug("Cards drawn",
		"region", r.ID,
		"fresh_candidates", len(fresh),
		"revisit_candidates", len(revisits),
		"drawn", len(cards),
		"intel", pool.Progress())
	return cards
}

func (d *Drawer) shuffle(locs []location.Location) {
	d.rng.Shuffle(len(locs), func(i, j int) {
		locs[i], locs[j] = locs[j], locs[i]
	})
}
