package disclosure

import (
	"github.com/jwebster45206/expedition/pkg/location"
	"github.com/jwebster45206/expedition/pkg/region"
)

const (
	MysteryName     = "???"
	MysterySubtitle = "Unknown Territory"
)

// MysteryIcon is shown in place of the location icon while nothing is known.
var MysteryIcon = location.Emoji("❓")

// GuardianInfo is the scouted view of a boss guardian.
type GuardianInfo struct {
	Name string
	HP   int
	AC   int
}

// DisplayInfo is what a renderer may show for one card. Nil pointers and a nil
// Activities map mean "not revealed"; a non-nil empty map means "nothing here".
type DisplayInfo struct {
	Name           string
	Subtitle       string
	Icon           location.Icon
	LocationType   *location.Type
	ShowMystery    bool
	DangerLevel    *int
	WealthLevel    *int
	MinRooms       *int
	Activities     location.Activities
	SpecialFeature *string
	Guardian       *GuardianInfo
	RevisitBadge   bool
	IsBoss         bool
	IsSecret       bool
}

// Resolve computes the visible information for a card. The card's tier was
// fixed when it was drawn, so the pool does not change the result.
func Resolve(card Card, _ region.IntelPool) DisplayInfo {
	tier := card.Tier.normalize()
	if tier == Unknown {
		return DisplayInfo{
			Name:        MysteryName,
			Subtitle:    MysterySubtitle,
			Icon:        MysteryIcon,
			ShowMystery: true,
		}
	}

	loc := card.Location
	locType := loc.Type
	danger := loc.DangerLevel
	wealth := loc.WealthLevel

	info := DisplayInfo{
		Name:         loc.Name,
		Subtitle:     loc.DisplaySubtitle(),
		Icon:         loc.Icon,
		LocationType: &locType,
		DangerLevel:  &danger,
		WealthLevel:  &wealth,
		Activities:   loc.Activities.Clone(),
		RevisitBadge: card.IsRevisit,
		IsBoss:       loc.IsBoss,
		IsSecret:     loc.IsSecret,
	}
	if loc.MinRooms != nil {
		rooms := *loc.MinRooms
		info.MinRooms = &rooms
	}

	if tier == Full {
		if loc.SpecialFeature != "" {
			feature := loc.SpecialFeature
			info.SpecialFeature = &feature
		}
		if g := loc.Guardian; g != nil {
			// Unbuildable guardians stay hidden; catalog validation reports them.
			if actor, err := location.NewGuardian(g); err == nil {
				info.Guardian = &GuardianInfo{Name: g.Name, HP: actor.MaxHP(), AC: actor.AC()}
			}
		}
	}
	return info
}

// ResolveAll resolves every card in draw order.
func ResolveAll(cards []Card, intel region.IntelPool) []DisplayInfo {
	infos := make([]DisplayInfo, len(cards))
	for i, card := range cards {
		infos[i] = Resolve(card, intel)
	}
	return infos
}
