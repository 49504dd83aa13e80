// Package disclosure decides what a player may see about a drawn location card.
//
// Information is revealed in tiers. Each tier shows everything the previous
// one did: Partial adds identity, danger, wealth and activities; Full adds
// the special feature and guardian stats.
package disclosure

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/expedition/pkg/location"
)

// Tier is the disclosure level applied to a drawn card.
type Tier int

const (
	Unknown Tier = iota
	Partial
	Full
)

func (t Tier) String() string {
	switch t {
	case Partial:
		return "partial"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// ParseTier converts a tag into a Tier.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unknown":
		return Unknown, nil
	case "partial":
		return Partial, nil
	case "full":
		return Full, nil
	}
	return Unknown, fmt.Errorf("unknown intel tier %q", s)
}

// normalize folds out-of-range values into Unknown.
func (t Tier) normalize() Tier {
	if t < Unknown || t > Full {
		return Unknown
	}
	return t
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Card is one drawn instance of a location. Cards live for a single draw.
type Card struct {
	DrawID     uuid.UUID         `json:"draw_id"`
	LocationID string            `json:"location_id"`
	Location   location.Location `json:"location"`
	IsRevisit  bool              `json:"is_revisit,omitempty"` // Player completed this location before
	Tier       Tier              `json:"tier"`
}

// NewCard wraps a location for a draw.
func NewCard(loc location.Location, tier Tier, revisit bool) Card {
	return Card{
		DrawID:     uuid.New(),
		LocationID: loc.ID,
		Location:   loc,
		IsRevisit:  revisit,
		Tier:       tier,
	}
}
