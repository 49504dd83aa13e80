package selection

import (
	"fmt"

	"github.com/jwebster45206/expedition/pkg/disclosure"
	"github.com/jwebster45206/expedition/pkg/region"
)

// ConfirmMessage is the prompt shown under the cards once one is selected.
// It uses only what the player is allowed to see. Empty without a selection.
func (c *Controller) ConfirmMessage(intel region.IntelPool) string {
	card, ok := c.SelectedCard()
	if !ok {
		return ""
	}
	info := disclosure.Resolve(card, intel)
	if info.RevisitBadge {
		return fmt.Sprintf("Revisit %s? (Enter to confirm)", info.Name)
	}
	if info.ShowMystery {
		return fmt.Sprintf("Venture into %s? (Enter to confirm)", info.Subtitle)
	}
	return fmt.Sprintf("Enter %s? (Enter to confirm)", info.Name)
}
