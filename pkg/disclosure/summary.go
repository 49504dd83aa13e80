package disclosure

import (
	"fmt"
	"strings"
)

// Summary renders the visible information as plain text, one fact per line.
// Hidden fields are left out rather than shown as blanks.
func (d DisplayInfo) Summary() string {
	var b strings.Builder
	b.WriteString(d.Name)
	if d.RevisitBadge {
		b.WriteString(" (revisit)")
	}
	b.WriteString("\n" + d.Subtitle + "\n")
	if d.ShowMystery {
		return b.String()
	}

	if d.LocationType != nil {
		fmt.Fprintf(&b, "Type: %s\n", d.LocationType.Label())
	}
	if d.DangerLevel != nil {
		fmt.Fprintf(&b, "Danger: %d\n", *d.DangerLevel)
	}
	if d.WealthLevel != nil {
		fmt.Fprintf(&b, "Wealth: %d\n", *d.WealthLevel)
	}
	if d.MinRooms != nil {
		fmt.Fprintf(&b, "Rooms: %d+\n", *d.MinRooms)
	}
	if keys := d.Activities.Keys(); len(keys) > 0 {
		labels := make([]string, len(keys))
		for i, k := range keys {
			labels[i] = k.Label()
		}
		fmt.Fprintf(&b, "Activities: %s\n", strings.Join(labels, ", "))
	} else {
		b.WriteString("Activities: none\n")
	}
	if d.SpecialFeature != nil {
		fmt.Fprintf(&b, "Special: %s\n", *d.SpecialFeature)
	}
	if d.Guardian != nil {
		fmt.Fprintf(&b, "Guardian: %s (HP %d, AC %d)\n", d.Guardian.Name, d.Guardian.HP, d.Guardian.AC)
	}
	return b.String()
}
