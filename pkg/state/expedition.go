package state

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/expedition/pkg/disclosure"
	"github.com/jwebster45206/expedition/pkg/location"
	"github.com/jwebster45206/expedition/pkg/region"
	"github.com/zyedidia/generic/mapset"
)

// DefaultMaxIntel is the pool size for a new expedition.
const DefaultMaxIntel = 100

// Expedition is the player's progress through one region.
type Expedition struct {
	ID           uuid.UUID        `json:"id"`
	RegionID     string           `json:"region_id"`
	Intel        region.IntelPool `json:"intel"`
	Completed    []string         `json:"completed,omitempty"` // Location IDs in completion order
	Unlocked     []string         `json:"unlocked,omitempty"`  // Location IDs opened by progress
	Visits       int              `json:"visits"`
	LastLocation string           `json:"last_location,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Visit reports the outcome of entering a location.
type Visit struct {
	LocationID  string
	FirstTime   bool
	IntelGained int
	Unlocked    string // Location opened by this visit, if any
}

// NewExpedition starts an expedition in the given region.
func NewExpedition(r *region.Region, maxIntel int) *Expedition {
	if maxIntel <= 0 {
		maxIntel = DefaultMaxIntel
	}
	now := time.Now()
	return &Expedition{
		ID:        uuid.New(),
		RegionID:  r.ID,
		Intel:     region.IntelPool{MaxIntel: maxIntel},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GainIntel adds intel, clamped to the pool maximum, and returns the amount added.
func (e *Expedition) GainIntel(n int) int {
	if n <= 0 {
		return 0
	}
	before := e.Intel.TotalIntel
	e.Intel.TotalIntel = min(e.Intel.TotalIntel+n, e.Intel.MaxIntel)
	return e.Intel.TotalIntel - before
}

// CompletedSet returns the completed location IDs as a set.
func (e *Expedition) CompletedSet() mapset.Set[string] {
	set := mapset.New[string]()
	for _, id := range e.Completed {
		set.Put(id)
	}
	return set
}

// ApplyTo replays recorded progress onto a freshly loaded region.
func (e *Expedition) ApplyTo(r *region.Region) {
	for _, id := range e.Unlocked {
		if loc := r.Location(id); loc != nil && !loc.Access.IsAccessible() {
			loc.Access = location.Accessible
		}
	}
	for _, id := range e.Completed {
		if loc := r.Location(id); loc != nil {
			loc.Access = location.Completed
		}
	}
	r.Recount()
}

// Enter records the player entering the card's location. The first visit
// completes the location, awards intel and opens the next closed location.
func (e *Expedition) Enter(r *region.Region, card disclosure.Card) (Visit, error) {
	if r.ID != e.RegionID {
		return Visit{}, fmt.Errorf("expedition is in region %q, not %q", e.RegionID, r.ID)
	}
	loc := r.Location(card.LocationID)
	if loc == nil {
		return Visit{}, fmt.Errorf("location %q not found in region %q", card.LocationID, r.ID)
	}
	if !loc.Access.IsAccessible() {
		return Visit{}, fmt.Errorf("location %q is %s", loc.ID, loc.Access)
	}

	visit := Visit{LocationID: loc.ID}
	e.Visits++
	e.LastLocation = loc.ID
	e.UpdatedAt = time.Now()

	// Catalogs may ship locations already completed; those are revisits too.
	if loc.Access.IsCompleted() || slices.Contains(e.Completed, loc.ID) {
		loc.Access = location.Completed
		r.Recount()
		return visit, nil
	}

	visit.FirstTime = true
	loc.Access = location.Completed
	e.Completed = append(e.Completed, loc.ID)
	visit.IntelGained = e.GainIntel(IntelReward(loc))

	for i := range r.Locations {
		next := &r.Locations[i]
		if !next.Access.IsAccessible() {
			next.Access = location.Accessible
			e.Unlocked = append(e.Unlocked, next.ID)
			visit.Unlocked = next.ID
			break
		}
	}
	r.Recount()
	return visit, nil
}

var typeIntel = map[location.Type]int{
	location.TypeSettlement: 10,
	location.TypeWilderness: 5,
	location.TypeStronghold: 15,
	location.TypeLandmark:   20,
	location.TypeSecret:     25,
	location.TypeBoss:       0,
}

// IntelReward is the intel earned by completing a location for the first time.
func IntelReward(loc *location.Location) int {
	reward := typeIntel[loc.Type]
	if loc.Activities.Has(location.ActivityInfoGathering) {
		reward += 10
	}
	return reward
}
