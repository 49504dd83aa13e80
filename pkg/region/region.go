package region

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jwebster45206/expedition/pkg/location"
)

// Arc is a cosmetic theme tag for a region.
type Arc string

const (
	ArcFrontier  Arc = "frontier"
	ArcDescent   Arc = "descent"
	ArcSiege     Arc = "siege"
	ArcAscension Arc = "ascension"
)

var arcs = []Arc{ArcFrontier, ArcDescent, ArcSiege, ArcAscension}

// IsValid reports whether the arc is one of the known tags.
func (a Arc) IsValid() bool {
	for _, known := range arcs {
		if a == known {
			return true
		}
	}
	return false
}

// Region is a map of locations explored during one leg of an expedition.
type Region struct {
	ID                 string              `json:"id" yaml:"id"`
	Name               string              `json:"name" yaml:"name"`
	Theme              string              `json:"theme,omitempty" yaml:"theme,omitempty"` // Narrative theme line
	Arc                Arc                 `json:"arc" yaml:"arc"`
	LocationsCompleted int                 `json:"locations_completed" yaml:"locations_completed"`
	TotalLocations     int                 `json:"total_locations" yaml:"total_locations"`
	Locations          []location.Location `json:"locations" yaml:"locations"`
}

// Progress formats completion as "completed/total".
func (r *Region) Progress() string {
	return fmt.Sprintf("%d/%d", r.LocationsCompleted, r.TotalLocations)
}

// Location returns a pointer into r.Locations for the given id, or nil.
func (r *Region) Location(id string) *location.Location {
	for i := range r.Locations {
		if r.Locations[i].ID == id {
			return &r.Locations[i]
		}
	}
	return nil
}

// Recount derives the completion counters from the locations.
// Catalogs that list no locations keep their declared totals.
func (r *Region) Recount() {
	if len(r.Locations) == 0 {
		return
	}
	completed := 0
	for i := range r.Locations {
		if r.Locations[i].Access.IsCompleted() {
			completed++
		}
	}
	r.LocationsCompleted = completed
	r.TotalLocations = len(r.Locations)
}

// Validate checks region invariants and every location in it.
func (r *Region) Validate() error {
	var errs []error
	if strings.TrimSpace(r.ID) == "" {
		errs = append(errs, errors.New("region id is required"))
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, fmt.Errorf("region %q: name is required", r.ID))
	}
	if !r.Arc.IsValid() {
		errs = append(errs, fmt.Errorf("region %q: unknown arc %q", r.ID, r.Arc))
	}
	if r.LocationsCompleted < 0 || r.TotalLocations < 0 {
		errs = append(errs, fmt.Errorf("region %q: location counts must not be negative", r.ID))
	}
	if r.LocationsCompleted > r.TotalLocations {
		errs = append(errs, fmt.Errorf("region %q: completed %d exceeds total %d", r.ID, r.LocationsCompleted, r.TotalLocations))
	}
	seen := make(map[string]bool, len(r.Locations))
	for i := range r.Locations {
		loc := &r.Locations[i]
		if seen[loc.ID] {
			errs = append(errs, fmt.Errorf("region %q: duplicate location id %q", r.ID, loc.ID))
		}
		seen[loc.ID] = true
		if err := loc.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
