package draw

import (
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/jwebster45206/expedition/pkg/disclosure"
	"github.com/jwebster45206/expedition/pkg/location"
	"github.com/jwebster45206/expedition/pkg/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testRegion(accessible, completed, locked int) *region.Region {
	r := &region.Region{ID: "test", Name: "Test", Arc: region.ArcFrontier}
	add := func(prefix string, n int, access location.Access) {
		for i := 0; i < n; i++ {
			r.Locations = append(r.Locations, location.Location{
				ID:          fmt.Sprintf("%s-%d", prefix, i),
				Name:        fmt.Sprintf("%s %d", prefix, i),
				Type:        location.TypeWilderness,
				DangerLevel: 1,
				Access:      access,
			})
		}
	}
	add("open", accessible, location.Accessible)
	add("done", completed, location.Completed)
	add("locked", locked, location.Locked)
	r.Recount()
	return r
}

func TestIntelRule_Allocate(t *testing.T) {
	rule := DefaultIntelRule
	tests := []struct {
		name  string
		n     int
		intel int
		want  []disclosure.Tier
	}{
		{name: "no intel", n: 3, intel: 0, want: []disclosure.Tier{disclosure.Unknown, disclosure.Unknown, disclosure.Unknown}},
		{name: "one partial", n: 3, intel: 25, want: []disclosure.Tier{disclosure.Partial, disclosure.Unknown, disclosure.Unknown}},
		{name: "first full", n: 3, intel: 40, want: []disclosure.Tier{disclosure.Full, disclosure.Unknown, disclosure.Unknown}},
		{name: "full then partial", n: 3, intel: 60, want: []disclosure.Tier{disclosure.Full, disclosure.Partial, disclosure.Unknown}},
		{name: "everything", n: 3, intel: 500, want: []disclosure.Tier{disclosure.Full, disclosure.Full, disclosure.Full}},
		{name: "no cards", n: 0, intel: 100, want: []disclosure.Tier{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := region.IntelPool{TotalIntel: tt.intel, MaxIntel: 1000}
			got := rule.Allocate(tt.n, pool)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.intel, pool.TotalIntel)
		})
	}
}

func TestIntelRule_FreeTiers(t *testing.T) {
	got := IntelRule{}.Allocate(2, region.IntelPool{MaxIntel: 10})
	assert.Equal(t, []disclosure.Tier{disclosure.Full, disclosure.Full}, got)
}

func TestDraw_OnlyAccessibleLocations(t *testing.T) {
	d := NewDrawer(1, DefaultIntelRule, testLogger())
	r := testRegion(2, 0, 5)

	cards := d.Draw(r, region.IntelPool{MaxIntel: 100}, mapset.New[string]())
	require.Len(t, cards, 2)
	for _, c := range cards {
		assert.True(t, c.Location.Access.IsAccessible(), "drew %s", c.LocationID)
		assert.False(t, c.IsRevisit)
	}
}

func TestDraw_FreshBeforeRevisits(t *testing.T) {
	d := NewDrawer(7, DefaultIntelRule, testLogger())
	r := testRegion(2, 3, 0)

	cards := d.Draw(r, region.IntelPool{MaxIntel: 100}, mapset.New[string]())
	require.Len(t, cards, MaxCards)
	assert.False(t, cards[0].IsRevisit)
	assert.False(t, cards[1].IsRevisit)
	assert.True(t, cards[2].IsRevisit)
	assert.Equal(t, location.Completed, cards[2].Location.Access)
}

func TestDraw_CompletedSetMarksRevisit(t *testing.T) {
	d := NewDrawer(3, DefaultIntelRule, testLogger())
	r := testRegion(1, 0, 0)
	completed := mapset.New[string]()
	completed.Put("open-0")

	cards := d.Draw(r, region.IntelPool{MaxIntel: 100}, completed)
	require.Len(t, cards, 1)
	assert.True(t, cards[0].IsRevisit)
}

func TestDraw_TiersFollowPool(t *testing.T) {
	d := NewDrawer(11, DefaultIntelRule, testLogger())
	r := testRegion(5, 0, 0)

	cards := d.Draw(r, region.IntelPool{TotalIntel: 40, MaxIntel: 100}, mapset.New[string]())
	require.Len(t, cards, 3)
	assert.Equal(t, disclosure.Full, cards[0].Tier)
	assert.Equal(t, disclosure.Unknown, cards[1].Tier)
	assert.Equal(t, disclosure.Unknown, cards[2].Tier)
}

func TestDraw_DeterministicForSeed(t *testing.T) {
	r := testRegion(8, 0, 0)
	ids := func(seed uint64) []string {
		d := NewDrawer(seed, DefaultIntelRule, testLogger())
		var out []string
		for _, c := range d.Draw(r, region.IntelPool{MaxIntel: 100}, mapset.New[string]()) {
			out = append(out, c.LocationID)
		}
		return out
	}
	assert.Equal(t, ids(42), ids(42))
}

func TestDraw_UniqueDrawIDs(t *testing.T) {
	d := NewDrawer(5, DefaultIntelRule, testLogger())
	cards := d.Draw(testRegion(3, 0, 0), region.IntelPool{MaxIntel: 100}, mapset.New[string]())
	seen := map[string]bool{}
	for _, c := range cards {
		id := c.DrawID.String()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestDraw_EmptyRegion(t *testing.T) {
	d := NewDrawer(1, DefaultIntelRule, nil)
	cards := d.Draw(&region.Region{ID: "empty"}, region.IntelPool{MaxIntel: 100}, mapset.New[string]())
	assert.Empty(t, cards)
}
