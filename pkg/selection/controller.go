// Package selection holds the card-pick state machine for the region map.
//
// A Controller owns the cards of the current draw and at most one selected
// index. Out-of-range or premature calls are silent no-ops: the view only
// offers valid choices, and stray keyboard input is simply ignored.
package selection

import (
	"log/slog"

	"github.com/jwebster45206/expedition/pkg/disclosure"
)

// MaxCards is the largest draw the controller accepts.
const MaxCards = 3

// Controller tracks the drawn cards and the current selection.
type Controller struct {
	cards    []disclosure.Card
	selected int // -1 when nothing is selected

	onSelect func(index int)
	onEnter  func(card disclosure.Card)
	logger   *slog.Logger

	release func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnSelect registers the callback fired after every valid selection.
func WithOnSelect(fn func(index int)) Option {
	return func(c *Controller) { c.onSelect = fn }
}

// WithOnEnter registers the enter-location callback fired by Commit.
func WithOnEnter(fn func(card disclosure.Card)) Option {
	return func(c *Controller) { c.onEnter = fn }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// New creates a controller for a draw. Cards past MaxCards are dropped.
func New(cards []disclosure.Card, opts ...Option) *Controller {
	c := &Controller{selected: -1, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset(cards)
	return c
}

// Reset replaces the draw and clears the selection.
func (c *Controller) Reset(cards []disclosure.Card) {
	if len(cards) > MaxCards {
		c.logger.Warn("Draw exceeds card limit, extra cards dropped", "drawn", len(cards), "limit", MaxCards)
		cards = cards[:MaxCards]
	}
	c.cards = append([]disclosure.Card(nil), cards...)
	c.selected = -1
}

// Cards returns a copy of the drawn cards.
func (c *Controller) Cards() []disclosure.Card {
	return append([]disclosure.Card(nil), c.cards...)
}

// Len returns the number of drawn cards.
func (c *Controller) Len() int {
	return len(c.cards)
}

// Selected returns the selected index, or false when nothing is selected.
func (c *Controller) Selected() (int, bool) {
	if c.selected < 0 {
		return 0, false
	}
	return c.selected, true
}

// SelectedCard returns the selected card, or false when nothing is selected.
func (c *Controller) SelectedCard() (disclosure.Card, bool) {
	i, ok := c.Selected()
	if !ok {
		return disclosure.Card{}, false
	}
	return c.cards[i], true
}

// SelectCard selects the card at index i. Invalid indices are ignored.
func (c *Controller) SelectCard(i int) {
	if i < 0 || i >= len(c.cards) {
		c.logger.Debug("Ignoring out-of-range selection", "index", i, "drawn", len(c.cards))
		return
	}
	c.selected = i
	c.logger.Debug("Card selected", "index", i, "location_id", c.cards[i].LocationID)
	if c.onSelect != nil {
		c.onSelect(i)
	}
}

// Commit fires the enter-location callback for the selected card and reports
// whether it did. It leaves the draw and the selection untouched.
func (c *Controller) Commit() bool {
	card, ok := c.SelectedCard()
	if !ok {
		c.logger.Debug("Ignoring commit without a selection")
		return false
	}
	c.logger.Debug("Entering location", "location_id", card.LocationID)
	if c.onEnter != nil {
		c.onEnter(card)
	}
	return true
}
