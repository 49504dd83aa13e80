package location

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Access is the ordered accessibility state of a location.
// Each state implies every earlier one, so a completed location is always
// accessible and discovered.
type Access int

const (
	Locked Access = iota
	Discovered
	Accessible
	Completed
)

// ErrContradictoryAccess is returned when legacy flags describe an impossible state,
// such as a completed location that is not accessible.
var ErrContradictoryAccess = errors.New("contradictory access flags")

var accessNames = map[Access]string{
	Locked:     "locked",
	Discovered: "discovered",
	Accessible: "accessible",
	Completed:  "completed",
}

func (a Access) String() string {
	if name, ok := accessNames[a]; ok {
		return name
	}
	return fmt.Sprintf("access(%d)", int(a))
}

func (a Access) IsDiscovered() bool { return a >= Discovered }
func (a Access) IsAccessible() bool { return a >= Accessible }
func (a Access) IsCompleted() bool  { return a >= Completed }

// ParseAccess converts a catalog tag into an Access state.
func ParseAccess(s string) (Access, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for a, name := range accessNames {
		if name == needle {
			return a, nil
		}
	}
	return Locked, fmt.Errorf("unknown access state %q", s)
}

// AccessFromFlags converts the legacy discovered/accessible/completed booleans.
// Combinations that break the chain are rejected rather than guessed at.
func AccessFromFlags(discovered, accessible, completed bool) (Access, error) {
	switch {
	case completed && (!accessible || !discovered):
		return Locked, fmt.Errorf("%w: completed=%t accessible=%t discovered=%t", ErrContradictoryAccess, completed, accessible, discovered)
	case accessible && !discovered:
		return Locked, fmt.Errorf("%w: accessible location is not discovered", ErrContradictoryAccess)
	case completed:
		return Completed, nil
	case accessible:
		return Accessible, nil
	case discovered:
		return Discovered, nil
	default:
		return Locked, nil
	}
}

func (a Access) MarshalText() ([]byte, error) {
	if _, ok := accessNames[a]; !ok {
		return nil, fmt.Errorf("invalid access state %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *Access) UnmarshalText(text []byte) error {
	parsed, err := ParseAccess(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// legacyAccess carries the old independent flags some catalogs still use.
type legacyAccess struct {
	IsDiscovered *bool `json:"is_discovered,omitempty" yaml:"is_discovered,omitempty"`
	IsAccessible *bool `json:"is_accessible,omitempty" yaml:"is_accessible,omitempty"`
	IsCompleted  *bool `json:"is_completed,omitempty" yaml:"is_completed,omitempty"`
}

func (f legacyAccess) present() bool {
	return f.IsDiscovered != nil || f.IsAccessible != nil || f.IsCompleted != nil
}

func (f legacyAccess) resolve() (Access, error) {
	deref := func(b *bool) bool { return b != nil && *b }
	return AccessFromFlags(deref(f.IsDiscovered), deref(f.IsAccessible), deref(f.IsCompleted))
}

// UnmarshalJSON accepts either the "access" tag or the legacy flag triple.
// Unknown fields are rejected.
func (l *Location) UnmarshalJSON(data []byte) error {
	type plain Location
	var aux struct {
		plain
		legacyAccess
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&aux); err != nil {
		return err
	}
	*l = Location(aux.plain)

	var tag struct {
		Access *string `json:"access"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	return l.applyLegacy(tag.Access != nil, aux.legacyAccess)
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML catalogs.
func (l *Location) UnmarshalYAML(value *yaml.Node) error {
	type plain Location
	var aux struct {
		plain        `yaml:",inline"`
		legacyAccess `yaml:",inline"`
	}
	// Node.Decode drops KnownFields, so re-decode the node strictly.
	raw, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&aux); err != nil {
		return fmt.Errorf("location at line %d: %w", value.Line, err)
	}
	*l = Location(aux.plain)

	hasAccess := false
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			if value.Content[i].Value == "access" {
				hasAccess = true
				break
			}
		}
	}
	return l.applyLegacy(hasAccess, aux.legacyAccess)
}

func (l *Location) applyLegacy(hasAccess bool, legacy legacyAccess) error {
	if !legacy.present() {
		return nil
	}
	access, err := legacy.resolve()
	if err != nil {
		return fmt.Errorf("location %q: %w", l.ID, err)
	}
	if hasAccess && access != l.Access {
		return fmt.Errorf("location %q: %w: access %q disagrees with legacy flags (%s)", l.ID, ErrContradictoryAccess, l.Access, access)
	}
	l.Access = access
	return nil
}
