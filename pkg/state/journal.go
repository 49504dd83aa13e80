package state

import (
	"fmt"
	"time"

	"github.com/jwebster45206/expedition/pkg/location"
)

// JournalEntry records one visit in the expedition log.
type JournalEntry struct {
	At           time.Time `json:"at"`
	LocationID   string    `json:"location_id"`
	LocationName string    `json:"location_name"`
	FirstTime    bool      `json:"first_time"`
	IntelGained  int       `json:"intel_gained,omitempty"`
	Unlocked     string    `json:"unlocked,omitempty"`
}

// NewJournalEntry describes a visit to loc.
func NewJournalEntry(v Visit, loc *location.Location, at time.Time) JournalEntry {
	return JournalEntry{
		At:           at,
		LocationID:   v.LocationID,
		LocationName: loc.Name,
		FirstTime:    v.FirstTime,
		IntelGained:  v.IntelGained,
		Unlocked:     v.Unlocked,
	}
}

func (j JournalEntry) String() string {
	if !j.FirstTime {
		return fmt.Sprintf("%s  Revisited %s", j.At.Format("Jan 2 15:04"), j.LocationName)
	}
	s := fmt.Sprintf("%s  Explored %s (+%d intel)", j.At.Format("Jan 2 15:04"), j.LocationName, j.IntelGained)
	if j.Unlocked != "" {
		s += ", opened a new path"
	}
	return s
}
