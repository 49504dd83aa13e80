package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/expedition/internal/config"
	"github.com/jwebster45206/expedition/pkg/disclosure"
	"github.com/jwebster45206/expedition/pkg/draw"
	"github.com/jwebster45206/expedition/pkg/region"
	"github.com/jwebster45206/expedition/pkg/selection"
	"github.com/jwebster45206/expedition/pkg/state"
	"github.com/jwebster45206/expedition/pkg/storage"
)

const PlaceHolderText = "Type a command, e.g. /help"

type focusArea int

const (
	focusCards focusArea = iota
	focusInput
)

// controllerSignals collects the controller callbacks fired during one key
// dispatch. It is shared by pointer because bubbletea copies the model.
type controllerSignals struct {
	selected int
	entered  *disclosure.Card
}

func (s *controllerSignals) drain() (disclosure.Card, bool) {
	if s.entered == nil {
		return disclosure.Card{}, false
	}
	card := *s.entered
	s.entered = nil
	return card, true
}

// renderFault holds a recovered View panic until the player retries.
type renderFault struct {
	message string
}

func (f *renderFault) active() bool { return f.message != "" }

// ExpeditionUI is the BubbleTea model that runs the region map.
// https://github.com/charmbracelet/bubbletea
type ExpeditionUI struct {
	store      storage.Storage
	logger     *slog.Logger
	region     *region.Region
	expedition *state.Expedition
	drawer     *draw.Drawer
	rule       draw.IntelRule

	controller *selection.Controller
	bus        *selection.Bus
	release    func()
	signals    *controllerSignals
	fault      *renderFault

	input    textinput.Model
	detail   viewport.Model
	focus    focusArea
	tooltips bool

	ready  bool
	width  int
	height int
	status string
	err    error

	// Quit confirmation state
	showQuitModal bool
}

type clipboardMsg struct {
	err error
}

func NewExpeditionUI(cfg *config.Config, store storage.Storage, logger *slog.Logger, reg *region.Region, exp *state.Expedition, drawer *draw.Drawer) ExpeditionUI {
	ti := textinput.New()
	ti.Placeholder = PlaceHolderText
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 120
	ti.Width = 50

	vp := viewport.New(60, 10)

	signals := &controllerSignals{selected: -1}
	controller := selection.New(nil,
		selection.WithLogger(logger),
		selection.WithOnSelect(func(i int) { signals.selected = i }),
		selection.WithOnEnter(func(card disclosure.Card) { signals.entered = &card }),
	)
	bus := &selection.Bus{}

	m := ExpeditionUI{
		store:      store,
		logger:     logger,
		region:     reg,
		expedition: exp,
		drawer:     drawer,
		rule:       intelRule(cfg),
		controller: controller,
		bus:        bus,
		release:    controller.Listen(bus),
		signals:    signals,
		fault:      &renderFault{},
		input:      ti,
		detail:     vp,
		focus:      focusCards,
		tooltips:   cfg.TooltipsEnabled,
	}
	m.redraw()
	return m
}

func (m ExpeditionUI) Init() tea.Cmd {
	return nil
}

func (m ExpeditionUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		m.refreshDetail()
		return m, nil

	case expeditionSavedMsg:
		if msg.err != nil {
			m.logger.Error("Failed to save expedition", "error", msg.err)
			m.err = msg.err
		}
		return m, nil

	case journalLoadedMsg:
		if msg.err != nil {
			m.logger.Error("Failed to load journal", "error", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.detail.SetContent(renderJournal(msg.entries))
		m.detail.GotoTop()
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.logger.Warn("Clipboard copy failed", "error", msg.err)
			m.err = fmt.Errorf("copy failed: %w", msg.err)
		} else {
			m.status = "Card details copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyTab:
			return m.toggleFocus()
		}

		if m.fault.active() {
			if msg.String() == "r" {
				m.logger.Info("Retrying render after fault")
				m.fault.message = ""
			}
			return m, nil
		}

		if m.bus.Dispatch(keyEvent(msg, m.focus == focusInput)) {
			return m.afterControllerKey()
		}

		if m.focus == focusInput {
			if msg.Type == tea.KeyEnter {
				input := strings.TrimSpace(m.input.Value())
				if input == "" {
					return m, nil
				}
				return m.handleCommand(input)
			}
		} else {
			switch msg.String() {
			case "y":
				return m, m.copySelected()
			case "/":
				m.focus = focusInput
				m.input.SetValue("/")
				m.input.CursorEnd()
				return m, m.input.Focus()
			}
		}
	}

	if m.focus == focusInput {
		m.input, tiCmd = m.input.Update(msg)
	}
	m.detail, vpCmd = m.detail.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

func (m ExpeditionUI) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusCards {
		m.focus = focusInput
		return m, m.input.Focus()
	}
	m.focus = focusCards
	m.input.Blur()
	return m, nil
}

// afterControllerKey applies whatever the controller signalled during dispatch.
func (m ExpeditionUI) afterControllerKey() (tea.Model, tea.Cmd) {
	m.err = nil
	if m.signals.selected >= 0 {
		m.logger.Debug("Card selected", "index", m.signals.selected)
		m.signals.selected = -1
	}
	if card, ok := m.signals.drain(); ok {
		return m.enterLocation(card)
	}
	m.refreshDetail()
	return m, nil
}

func (m ExpeditionUI) enterLocation(card disclosure.Card) (tea.Model, tea.Cmd) {
	visit, err := m.expedition.Enter(m.region, card)
	if err != nil {
		m.logger.Error("Failed to enter location", "location", card.LocationID, "error", err)
		m.err = err
		return m, nil
	}

	loc := m.region.Location(visit.LocationID)
	m.logger.Info("Location entered",
		"location", visit.LocationID,
		"first_time", visit.FirstTime,
		"intel_gained", visit.IntelGained,
		"unlocked", visit.Unlocked)

	var status strings.Builder
	if visit.FirstTime {
		fmt.Fprintf(&status, "Explored %s (+%d intel)", loc.Name, visit.IntelGained)
	} else {
		fmt.Fprintf(&status, "Revisited %s", loc.Name)
	}
	if visit.Unlocked != "" {
		if next := m.region.Location(visit.Unlocked); next != nil && next.IsSecret {
			status.WriteString(". Something hidden stirs nearby")
		} else {
			status.WriteString(". A new path opens")
		}
	}
	m.status = status.String()

	entry := state.NewJournalEntry(visit, loc, time.Now())
	m.redraw()
	return m, saveExpedition(m.store, m.expedition, entry)
}

// redraw deals a fresh hand for the current region and intel.
func (m *ExpeditionUI) redraw() {
	cards := m.drawer.Draw(m.region, m.expedition.Intel, m.expedition.CompletedSet())
	m.controller.Reset(cards)
	if len(cards) == 0 {
		m.status = "No paths remain open in " + m.region.Name
	}
	m.refreshDetail()
}

func (m *ExpeditionUI) resize() {
	contentWidth := max(m.width-4, 20)
	m.detail.Width = contentWidth
	m.detail.Height = max(m.height-cardAreaHeight-headerHeight-footerHeight, 3)
	m.input.Width = contentWidth - 4
}

func (m *ExpeditionUI) refreshDetail() {
	m.detail.SetContent(m.renderDetail())
	m.detail.GotoTop()
}

func (m ExpeditionUI) copySelected() tea.Cmd {
	card, ok := m.controller.SelectedCard()
	if !ok {
		return nil
	}
	summary := disclosure.Resolve(card, m.expedition.Intel).Summary()
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(summary)}
	}
}

func (m ExpeditionUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	cmd := strings.ToLower(strings.TrimSpace(input))
	m.err = nil

	switch cmd {
	case "/help":
		m.detail.SetContent(helpText())
		m.detail.GotoTop()

	case "/intel":
		m.detail.SetContent(m.renderIntelReport())
		m.detail.GotoTop()

	case "/journal":
		m.input.Reset()
		return m, loadJournal(m.store, m.expedition.ID)

	case "/redraw":
		m.redraw()
		m.status = "The scouts bring back new reports"
		m.logger.Info("Cards redrawn on request")

	case "/tooltips":
		m.tooltips = !m.tooltips
		if m.tooltips {
			m.status = "Activity tooltips on"
		} else {
			m.status = "Activity tooltips off"
		}
		m.refreshDetail()

	case "/quit":
		m.showQuitModal = true

	default:
		m.err = fmt.Errorf("unknown command %q, try /help", cmd)
	}

	m.input.Reset()
	return m, nil
}

func helpText() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Help") + "\n\n")
	b.WriteString("Cards:\n")
	b.WriteString("• 1, 2, 3 - Select a card\n")
	b.WriteString("• Enter or Space - Travel to the selected location\n")
	b.WriteString("• y - Copy the selected card\n")
	b.WriteString("• Tab - Switch between cards and commands\n")
	b.WriteString("• Esc or Ctrl+C - Quit\n\n")
	b.WriteString("Commands:\n")
	b.WriteString("• /help - Show this help\n")
	b.WriteString("• /intel - Show how intel reveals cards\n")
	b.WriteString("• /journal - Show recent visits\n")
	b.WriteString("• /redraw - Draw new cards\n")
	b.WriteString("• /tooltips - Toggle activity descriptions\n")
	b.WriteString("• /quit - Quit\n")
	return b.String()
}

func (m ExpeditionUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			m.release()
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				m.release()
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if m.focus == focusInput {
					return m, m.input.Focus()
				}
				return m, nil
			}
		}
	}

	return m, nil
}
