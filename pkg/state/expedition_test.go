package state

import (
	"testing"
	"time"

	"github.com/jwebster45206/expedition/pkg/disclosure"
	"github.com/jwebster45206/expedition/pkg/location"
	"github.com/jwebster45206/expedition/pkg/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegion() *region.Region {
	r := &region.Region{
		ID:   "northreach",
		Name: "The Northreach",
		Arc:  region.ArcFrontier,
		Locations: []location.Location{
			{ID: "camp", Name: "Alder Camp", Type: location.TypeSettlement, DangerLevel: 1, Access: location.Accessible,
				Activities: location.Activities{location.ActivityInfoGathering: location.Present}},
			{ID: "pines", Name: "Black Pines", Type: location.TypeWilderness, DangerLevel: 2, Access: location.Accessible},
			{ID: "cairn", Name: "Old Cairn", Type: location.TypeLandmark, DangerLevel: 2, Access: location.Discovered},
			{ID: "lair", Name: "Wyrm Lair", Type: location.TypeBoss, IsBoss: true, DangerLevel: 7, Access: location.Locked},
		},
	}
	r.Recount()
	return r
}

func cardFor(r *region.Region, id string) disclosure.Card {
	return disclosure.NewCard(*r.Location(id), disclosure.Partial, false)
}

func TestNewExpedition(t *testing.T) {
	r := testRegion()
	e := NewExpedition(r, 0)
	assert.Equal(t, "northreach", e.RegionID)
	assert.Equal(t, region.IntelPool{TotalIntel: 0, MaxIntel: DefaultMaxIntel}, e.Intel)
	assert.NotEqual(t, e.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestGainIntel_Clamps(t *testing.T) {
	e := NewExpedition(testRegion(), 50)
	assert.Equal(t, 30, e.GainIntel(30))
	assert.Equal(t, 20, e.GainIntel(30))
	assert.Equal(t, 50, e.Intel.TotalIntel)
	assert.Equal(t, 0, e.GainIntel(-5))
	assert.NoError(t, e.Intel.Validate())
}

func TestEnter_FirstVisitCompletesAndRewards(t *testing.T) {
	r := testRegion()
	e := NewExpedition(r, 100)

	visit, err := e.Enter(r, cardFor(r, "camp"))
	require.NoError(t, err)
	assert.True(t, visit.FirstTime)
	assert.Equal(t, 20, visit.IntelGained, "settlement plus info gathering")
	assert.Equal(t, "cairn", visit.Unlocked)

	assert.Equal(t, location.Completed, r.Location("camp").Access)
	assert.Equal(t, location.Accessible, r.Location("cairn").Access)
	assert.Equal(t, "1/4", r.Progress())
	assert.Equal(t, []string{"camp"}, e.Completed)
	assert.Equal(t, 20, e.Intel.TotalIntel)
	assert.True(t, e.CompletedSet().Has("camp"))
}

func TestEnter_RevisitGivesNothing(t *testing.T) {
	r := testRegion()
	e := NewExpedition(r, 100)
	_, err := e.Enter(r, cardFor(r, "pines"))
	require.NoError(t, err)

	visit, err := e.Enter(r, cardFor(r, "pines"))
	require.NoError(t, err)
	assert.False(t, visit.FirstTime)
	assert.Zero(t, visit.IntelGained)
	assert.Equal(t, 2, e.Visits)
	assert.Len(t, e.Completed, 1)
}

func TestEnter_CatalogCompletedIsRevisit(t *testing.T) {
	r := testRegion()
	r.Location("pines").Access = location.Completed
	r.Recount()
	e := NewExpedition(r, 100)

	card := disclosure.NewCard(*r.Location("pines"), disclosure.Partial, true)
	visit, err := e.Enter(r, card)
	require.NoError(t, err)
	assert.False(t, visit.FirstTime)
	assert.Zero(t, visit.IntelGained)
	assert.Empty(t, visit.Unlocked)
	assert.Equal(t, location.Discovered, r.Location("cairn").Access)
	assert.Zero(t, e.Intel.TotalIntel)
	assert.Empty(t, e.Completed)
	assert.Equal(t, 1, e.Visits)

	entry := NewJournalEntry(visit, r.Location("pines"), time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC))
	assert.Contains(t, entry.String(), "Revisited Black Pines")
}

func TestEnter_Errors(t *testing.T) {
	r := testRegion()
	e := NewExpedition(r, 100)

	_, err := e.Enter(r, cardFor(r, "lair"))
	assert.ErrorContains(t, err, "locked")

	_, err = e.Enter(r, disclosure.Card{LocationID: "nowhere"})
	assert.ErrorContains(t, err, "not found")

	other := &region.Region{ID: "elsewhere"}
	_, err = e.Enter(other, cardFor(r, "camp"))
	assert.ErrorContains(t, err, "not \"elsewhere\"")
}

func TestApplyTo_ReplaysProgress(t *testing.T) {
	played := testRegion()
	e := NewExpedition(played, 100)
	_, err := e.Enter(played, cardFor(played, "camp"))
	require.NoError(t, err)
	_, err = e.Enter(played, cardFor(played, "cairn"))
	require.NoError(t, err)

	fresh := testRegion()
	e.ApplyTo(fresh)
	for i := range played.Locations {
		assert.Equal(t, played.Locations[i].Access, fresh.Locations[i].Access, played.Locations[i].ID)
	}
	assert.Equal(t, played.Progress(), fresh.Progress())
}

func TestJournalEntry(t *testing.T) {
	r := testRegion()
	e := NewExpedition(r, 0)
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	visit, err := e.Enter(r, cardFor(r, "camp"))
	require.NoError(t, err)
	entry := NewJournalEntry(visit, r.Location("camp"), at)
	assert.Equal(t, "camp", entry.LocationID)
	assert.Equal(t, "Alder Camp", entry.LocationName)
	assert.Equal(t, "Mar 14 09:30  Explored Alder Camp (+20 intel), opened a new path", entry.String())

	visit, err = e.Enter(r, cardFor(r, "camp"))
	require.NoError(t, err)
	entry = NewJournalEntry(visit, r.Location("camp"), at)
	assert.Equal(t, "Mar 14 09:30  Revisited Alder Camp", entry.String())
}
