package location

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type classifies a location on the region map.
type Type string

const (
	TypeSettlement Type = "settlement"
	TypeWilderness Type = "wilderness"
	TypeStronghold Type = "stronghold"
	TypeLandmark   Type = "landmark"
	TypeSecret     Type = "secret"
	TypeBoss       Type = "boss"
)

// Types lists every location type in display order.
var Types = []Type{TypeSettlement, TypeWilderness, TypeStronghold, TypeLandmark, TypeSecret, TypeBoss}

// ParseType converts a catalog tag into a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Types {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown location type %q", s)
}

// Label returns the human-readable type name, e.g. "Stronghold".
func (t Type) Label() string {
	return cases.Title(language.English).String(string(t))
}

const (
	MinDangerLevel = 1
	MaxDangerLevel = 7
	MaxWealthLevel = 7
)

// Location is a discoverable place within a region.
type Location struct {
	ID             string        `json:"id" yaml:"id"`
	Name           string        `json:"name" yaml:"name"`
	Subtitle       string        `json:"subtitle,omitempty" yaml:"subtitle,omitempty"` // Short flavour line under the name
	Icon           Icon          `json:"icon,omitempty" yaml:"icon,omitempty"`
	Biome          string        `json:"biome,omitempty" yaml:"biome,omitempty"` // e.g. "frozen_wastes"
	Type           Type          `json:"type" yaml:"type"`
	DangerLevel    int           `json:"danger_level" yaml:"danger_level"`                     // 1-7
	WealthLevel    int           `json:"wealth_level" yaml:"wealth_level"`                     // 0-7
	MinRooms       *int          `json:"min_rooms,omitempty" yaml:"min_rooms,omitempty"`       // Minimum rooms when entered, if fixed
	HasMerchant    bool          `json:"has_merchant,omitempty" yaml:"has_merchant,omitempty"` // Discrete flags mirror the activities map for quick checks
	HasRest        bool          `json:"has_rest,omitempty" yaml:"has_rest,omitempty"`
	HasTraining    bool          `json:"has_training,omitempty" yaml:"has_training,omitempty"`
	IsBoss         bool          `json:"is_boss,omitempty" yaml:"is_boss,omitempty"`
	IsSecret       bool          `json:"is_secret,omitempty" yaml:"is_secret,omitempty"`
	Access         Access        `json:"access" yaml:"access"`
	Activities     Activities    `json:"activities,omitempty" yaml:"activities,omitempty"`
	SpecialFeature string        `json:"special_feature,omitempty" yaml:"special_feature,omitempty"` // Empty when the location has none
	Guardian       *GuardianSpec `json:"guardian,omitempty" yaml:"guardian,omitempty"`
}

// DisplaySubtitle returns the subtitle, falling back to the type label.
func (l *Location) DisplaySubtitle() string {
	if l.Subtitle != "" {
		return l.Subtitle
	}
	return l.Type.Label()
}

// BiomeLabel turns a biome tag like "frozen_wastes" into "Frozen Wastes".
func (l *Location) BiomeLabel() string {
	if l.Biome == "" {
		return ""
	}
	words := strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(l.Biome))
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// Validate checks the location against catalog rules and reports every violation.
func (l *Location) Validate() error {
	var errs []error
	if strings.TrimSpace(l.ID) == "" {
		errs = append(errs, errors.New("location id is required"))
	}
	if strings.TrimSpace(l.Name) == "" {
		errs = append(errs, fmt.Errorf("location %q: name is required", l.ID))
	}
	if _, err := ParseType(string(l.Type)); err != nil {
		errs = append(errs, fmt.Errorf("location %q: %w", l.ID, err))
	}
	if l.DangerLevel < MinDangerLevel || l.DangerLevel > MaxDangerLevel {
		errs = append(errs, fmt.Errorf("location %q: danger level %d out of range %d-%d", l.ID, l.DangerLevel, MinDangerLevel, MaxDangerLevel))
	}
	if l.WealthLevel < 0 || l.WealthLevel > MaxWealthLevel {
		errs = append(errs, fmt.Errorf("location %q: wealth level %d out of range 0-%d", l.ID, l.WealthLevel, MaxWealthLevel))
	}
	if l.MinRooms != nil && *l.MinRooms < 1 {
		errs = append(errs, fmt.Errorf("location %q: min rooms must be at least 1", l.ID))
	}
	if l.IsBoss != (l.Type == TypeBoss) {
		errs = append(errs, fmt.Errorf("location %q: boss flag must match boss type", l.ID))
	}
	if l.Access < Locked || l.Access > Completed {
		errs = append(errs, fmt.Errorf("location %q: invalid access state %d", l.ID, l.Access))
	}
	if l.Guardian != nil {
		if _, err := NewGuardian(l.Guardian); err != nil {
			errs = append(errs, fmt.Errorf("location %q: %w", l.ID, err))
		}
	}
	return errors.Join(errs...)
}
