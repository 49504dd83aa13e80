package location

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/d20"
)

// GuardianSpec describes the creature defending a boss location.
type GuardianSpec struct {
	Name            string         `json:"name" yaml:"name"`
	HP              int            `json:"hp" yaml:"hp"`
	AC              int            `json:"ac" yaml:"ac"`
	Attributes      map[string]int `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	CombatModifiers map[string]int `json:"combat_modifiers,omitempty" yaml:"combat_modifiers,omitempty"`
}

// NewGuardian builds the d20 actor for a guardian spec.
func NewGuardian(spec *GuardianSpec) (*d20.Actor, error) {
	if spec == nil {
		return nil, errors.New("guardian spec cannot be nil")
	}
	if spec.Name == "" {
		return nil, errors.New("guardian name is required")
	}
	actor, err := d20.NewActor(spec.Name).
		WithHP(spec.HP).
		WithAC(spec.AC).
		WithAttributes(spec.Attributes).
		WithCombatModifiers(spec.CombatModifiers).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build guardian %q: %w", spec.Name, err)
	}
	return actor, nil
}
