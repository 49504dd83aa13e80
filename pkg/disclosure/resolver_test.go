package disclosure

import (
	"testing"

	"github.com/jwebster45206/expedition/pkg/location"
	"github.com/jwebster45206/expedition/pkg/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pool = region.IntelPool{TotalIntel: 40, MaxIntel: 100}

func keep() location.Location {
	rooms := 5
	return location.Location{
		ID:          "frosthold",
		Name:        "Frosthold Keep",
		Subtitle:    "Seat of the Ice Jarl",
		Icon:        location.Emoji("🏰"),
		Type:        location.TypeStronghold,
		DangerLevel: 6,
		WealthLevel: 4,
		MinRooms:    &rooms,
		Access:      location.Accessible,
		Activities: location.Activities{
			location.ActivityCombat:   location.Present,
			location.ActivityTreasure: location.Special,
			location.ActivityRest:     location.Absent,
		},
		SpecialFeature: "A frozen armory",
	}
}

func lair() location.Location {
	return location.Location{
		ID:          "wyrm-lair",
		Name:        "Wyrm Lair",
		Type:        location.TypeBoss,
		IsBoss:      true,
		DangerLevel: 7,
		WealthLevel: 7,
		Access:      location.Accessible,
		Guardian:    &location.GuardianSpec{Name: "Ice Wyrm", HP: 80, AC: 17},
	}
}

func bareCamp() location.Location {
	return location.Location{
		ID:          "camp",
		Name:        "Abandoned Camp",
		Type:        location.TypeWilderness,
		IsSecret:    true,
		DangerLevel: 1,
		Access:      location.Completed,
	}
}

var allTiers = []Tier{Unknown, Partial, Full}

func TestResolve_ShowMysteryOnlyAtUnknown(t *testing.T) {
	for _, loc := range []location.Location{keep(), lair(), bareCamp()} {
		for _, tier := range allTiers {
			for _, revisit := range []bool{false, true} {
				info := Resolve(NewCard(loc, tier, revisit), pool)
				assert.Equal(t, tier == Unknown, info.ShowMystery, "%s at %s", loc.ID, tier)
				if info.ShowMystery {
					assert.Nil(t, info.LocationType, "mystery card must not expose a type")
				}
			}
		}
	}
}

func TestResolve_SpecialFeatureOnlyAtFull(t *testing.T) {
	for _, tier := range allTiers {
		info := Resolve(NewCard(keep(), tier, false), pool)
		if tier == Full {
			require.NotNil(t, info.SpecialFeature)
			assert.Equal(t, "A frozen armory", *info.SpecialFeature)
		} else {
			assert.Nil(t, info.SpecialFeature, "tier %s", tier)
		}
	}
}

func TestResolve_NoSpecialFeatureStaysNilAtFull(t *testing.T) {
	info := Resolve(NewCard(bareCamp(), Full, false), pool)
	assert.False(t, info.ShowMystery)
	assert.Nil(t, info.SpecialFeature)
}

func TestResolve_RevisitBadge(t *testing.T) {
	for _, tier := range allTiers {
		for _, revisit := range []bool{false, true} {
			info := Resolve(NewCard(bareCamp(), tier, revisit), pool)
			want := revisit && tier != Unknown
			assert.Equal(t, want, info.RevisitBadge, "tier %s revisit %t", tier, revisit)
		}
	}
}

func TestResolve_ActivitiesNullness(t *testing.T) {
	unknown := Resolve(NewCard(keep(), Unknown, false), pool)
	assert.Nil(t, unknown.Activities)

	for _, tier := range []Tier{Partial, Full} {
		info := Resolve(NewCard(keep(), tier, false), pool)
		require.NotNil(t, info.Activities)
		assert.Equal(t, keep().Activities, info.Activities, "no keys added or dropped")

		empty := Resolve(NewCard(bareCamp(), tier, false), pool)
		assert.NotNil(t, empty.Activities, "known-empty must differ from unknown")
		assert.Empty(t, empty.Activities)
	}
}

func TestResolve_ActivitiesAreCopied(t *testing.T) {
	loc := keep()
	card := NewCard(loc, Partial, false)
	info := Resolve(card, pool)
	info.Activities[location.ActivityMerchant] = location.Present
	assert.Equal(t, location.Absent, card.Location.Activities.Status(location.ActivityMerchant))
}

func TestResolve_TierTable(t *testing.T) {
	loc := keep()

	unknown := Resolve(NewCard(loc, Unknown, true), pool)
	assert.Equal(t, DisplayInfo{
		Name:        MysteryName,
		Subtitle:    MysterySubtitle,
		Icon:        MysteryIcon,
		ShowMystery: true,
	}, unknown)

	partial := Resolve(NewCard(loc, Partial, true), pool)
	assert.Equal(t, "Frosthold Keep", partial.Name)
	assert.Equal(t, "Seat of the Ice Jarl", partial.Subtitle)
	require.NotNil(t, partial.LocationType)
	assert.Equal(t, location.TypeStronghold, *partial.LocationType)
	require.NotNil(t, partial.DangerLevel)
	assert.Equal(t, 6, *partial.DangerLevel)
	require.NotNil(t, partial.WealthLevel)
	assert.Equal(t, 4, *partial.WealthLevel)
	require.NotNil(t, partial.MinRooms)
	assert.Equal(t, 5, *partial.MinRooms)
	assert.True(t, partial.RevisitBadge)
	assert.Nil(t, partial.SpecialFeature)
	assert.Nil(t, partial.Guardian)

	full := Resolve(NewCard(loc, Full, true), pool)
	partial.SpecialFeature = full.SpecialFeature
	assert.Equal(t, partial, full, "full differs from partial only by the special feature")
}

func TestResolve_MinRoomsUndefined(t *testing.T) {
	info := Resolve(NewCard(lair(), Full, false), pool)
	assert.Nil(t, info.MinRooms)
}

func TestResolve_BossAndSecretFlags(t *testing.T) {
	assert.False(t, Resolve(NewCard(lair(), Unknown, false), pool).IsBoss)
	assert.True(t, Resolve(NewCard(lair(), Partial, false), pool).IsBoss)
	assert.False(t, Resolve(NewCard(bareCamp(), Unknown, false), pool).IsSecret)
	assert.True(t, Resolve(NewCard(bareCamp(), Full, false), pool).IsSecret)
}

func TestResolve_GuardianOnlyAtFull(t *testing.T) {
	assert.Nil(t, Resolve(NewCard(lair(), Partial, false), pool).Guardian)
	full := Resolve(NewCard(lair(), Full, false), pool)
	require.NotNil(t, full.Guardian)
	assert.Equal(t, GuardianInfo{Name: "Ice Wyrm", HP: 80, AC: 17}, *full.Guardian)
}

func TestResolve_UnbuildableGuardianHidden(t *testing.T) {
	loc := lair()
	loc.Guardian = &location.GuardianSpec{Name: "Ice Wyrm", HP: 0, AC: 17}
	assert.Nil(t, Resolve(NewCard(loc, Full, false), pool).Guardian)
}

func TestResolve_IgnoresPool(t *testing.T) {
	card := NewCard(keep(), Partial, false)
	a := Resolve(card, region.IntelPool{TotalIntel: 0, MaxIntel: 100})
	b := Resolve(card, region.IntelPool{TotalIntel: 100, MaxIntel: 100})
	assert.Equal(t, a, b)
}

func TestResolve_OutOfRangeTierIsUnknown(t *testing.T) {
	info := Resolve(NewCard(keep(), Tier(7), false), pool)
	assert.True(t, info.ShowMystery)
	assert.Equal(t, MysteryName, info.Name)
}

func TestResolveAll(t *testing.T) {
	cards := []Card{NewCard(keep(), Full, false), NewCard(lair(), Unknown, false)}
	infos := ResolveAll(cards, pool)
	require.Len(t, infos, 2)
	assert.Equal(t, "Frosthold Keep", infos[0].Name)
	assert.True(t, infos[1].ShowMystery)
}

func TestParseTier(t *testing.T) {
	for _, tier := range allTiers {
		got, err := ParseTier(tier.String())
		require.NoError(t, err)
		assert.Equal(t, tier, got)
	}
	_, err := ParseTier("half")
	assert.Error(t, err)
}
