package location

import (
	"encoding/json"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// Activity is something a player can do at a location.
type Activity string

const (
	ActivityCombat          Activity = "combat"
	ActivityMerchant        Activity = "merchant"
	ActivityRest            Activity = "rest"
	ActivityTraining        Activity = "training"
	ActivityEvent           Activity = "event"
	ActivityScrollDiscovery Activity = "scrollDiscovery"
	ActivityTreasure        Activity = "treasure"
	ActivityEliteChallenge  Activity = "eliteChallenge"
	ActivityInfoGathering   Activity = "infoGathering"
)

// AllActivities is the canonical display order.
var AllActivities = []Activity{
	ActivityCombat,
	ActivityMerchant,
	ActivityRest,
	ActivityTraining,
	ActivityEvent,
	ActivityScrollDiscovery,
	ActivityTreasure,
	ActivityEliteChallenge,
	ActivityInfoGathering,
}

var activityLabels = map[Activity]string{
	ActivityCombat:          "Combat",
	ActivityMerchant:        "Merchant",
	ActivityRest:            "Rest",
	ActivityTraining:        "Training",
	ActivityEvent:           "Event",
	ActivityScrollDiscovery: "Scroll Discovery",
	ActivityTreasure:        "Treasure",
	ActivityEliteChallenge:  "Elite Challenge",
	ActivityInfoGathering:   "Info Gathering",
}

var activityDescriptions = map[Activity]string{
	ActivityCombat:          "Hostiles guard this place.",
	ActivityMerchant:        "A trader will buy and sell supplies.",
	ActivityRest:            "Safe ground to recover health.",
	ActivityTraining:        "Someone here can sharpen your skills.",
	ActivityEvent:           "Something unusual is happening.",
	ActivityScrollDiscovery: "Old writings may be recovered.",
	ActivityTreasure:        "Valuables are hidden here.",
	ActivityEliteChallenge:  "A powerful foe awaits a challenger.",
	ActivityInfoGathering:   "Locals trade rumours for intel.",
}

// Label returns the display name of the activity.
func (a Activity) Label() string {
	if label, ok := activityLabels[a]; ok {
		return label
	}
	return string(a)
}

// Description is the tooltip text for the activity.
func (a Activity) Description() string {
	return activityDescriptions[a]
}

// ActivityStatus is the state of one activity at a location.
type ActivityStatus int

const (
	Absent ActivityStatus = iota
	Present
	Special
)

func (s ActivityStatus) String() string {
	switch s {
	case Present:
		return "present"
	case Special:
		return "special"
	default:
		return "absent"
	}
}

func parseActivityStatus(s string) (ActivityStatus, error) {
	switch s {
	case "absent", "false", "":
		return Absent, nil
	case "present", "true":
		return Present, nil
	case "special":
		return Special, nil
	}
	return Absent, fmt.Errorf("unknown activity status %q", s)
}

// MarshalJSON writes absent/present as booleans and special as a string.
func (s ActivityStatus) MarshalJSON() ([]byte, error) {
	switch s {
	case Present:
		return []byte("true"), nil
	case Special:
		return []byte(`"special"`), nil
	default:
		return []byte("false"), nil
	}
}

func (s *ActivityStatus) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*s = Absent
		if b {
			*s = Present
		}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("activity status must be a bool or string: %w", err)
	}
	parsed, err := parseActivityStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s ActivityStatus) MarshalYAML() (interface{}, error) {
	switch s {
	case Present:
		return true, nil
	case Special:
		return "special", nil
	default:
		return false, nil
	}
}

func (s *ActivityStatus) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := parseActivityStatus(value.Value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Activities maps activity keys to their status. A missing key means Absent.
type Activities map[Activity]ActivityStatus

// Status returns the status of a key, treating missing keys as Absent.
func (a Activities) Status(key Activity) ActivityStatus {
	return a[key]
}

// Has reports whether the activity is present or special.
func (a Activities) Has(key Activity) bool {
	return a[key] != Absent
}

// Clone returns a non-nil copy, so an empty result still means "known, nothing here".
func (a Activities) Clone() Activities {
	out := make(Activities, len(a))
	maps.Copy(out, a)
	return out
}

// Keys returns the non-absent activities in canonical order.
func (a Activities) Keys() []Activity {
	var keys []Activity
	for _, key := range AllActivities {
		if a.Has(key) {
			keys = append(keys, key)
		}
	}
	return keys
}
