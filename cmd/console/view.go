package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/expedition/pkg/disclosure"
	"github.com/jwebster45206/expedition/pkg/location"
	"github.com/jwebster45206/expedition/pkg/region"
	"github.com/jwebster45206/expedition/pkg/state"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	headerHeight   = 4
	cardAreaHeight = 13
	footerHeight   = 6

	minCardWidth = 18
	maxCardWidth = 34
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	themeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	confirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // yellow
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("205")).
				Border(lipgloss.ThickBorder())

	mysteryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 1)

	bossBadgeStyle = badgeStyle.
			Background(lipgloss.Color("196"))

	secretBadgeStyle = badgeStyle.
				Background(lipgloss.Color("62"))

	specialStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")) // purple

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	faultStyle = modalStyle.
			BorderForeground(lipgloss.Color("196"))
)

var titleCaser = cases.Title(language.English)

// noAssets makes every icon fall back to its glyph in the terminal.
func noAssets(string) bool { return false }

func (m ExpeditionUI) View() (out string) {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if m.fault.active() {
		return m.renderFaultPanel()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Render fault", "panic", r, "stack", string(debug.Stack()))
			m.fault.message = fmt.Sprint(r)
			out = m.renderFaultPanel()
		}
	}()

	return m.renderMap()
}

func (m ExpeditionUI) renderMap() string {
	width := max(m.width-4, 20)

	sections := []string{
		m.renderHeader(width),
		m.renderCards(width),
		m.detail.View(),
		confirmStyle.Render(m.controller.ConfirmMessage(m.expedition.Intel)),
		m.renderStatus(),
		separatorStyle.Render(strings.Repeat("─", width)),
		m.renderInput(),
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m ExpeditionUI) renderHeader(width int) string {
	r := m.region
	title := titleStyle.Render(strings.ToUpper(r.Name)) + promptStyle.Render("  "+titleCaser.String(string(r.Arc)))

	var theme string
	if r.Theme != "" {
		theme = themeStyle.Render(wordwrap.String(r.Theme, width))
	}

	progress := fmt.Sprintf("Explored %s   Intel %s %s",
		r.Progress(),
		renderIntelBar(m.expedition.Intel, 20),
		m.expedition.Intel.Progress())

	return lipgloss.JoinVertical(lipgloss.Left, title, theme, progress, "")
}

// renderIntelBar draws the pool as a fixed-width bar.
func renderIntelBar(pool region.IntelPool, width int) string {
	filled := int(pool.Fraction() * float64(width))
	filled = min(max(filled, 0), width)
	return statusStyle.Render(strings.Repeat("█", filled)) + separatorStyle.Render(strings.Repeat("░", width-filled))
}

func (m ExpeditionUI) renderCards(width int) string {
	cards := m.controller.Cards()
	if len(cards) == 0 {
		return mysteryStyle.Render("The map is quiet. Use /redraw or quit to rest.")
	}

	cardWidth := min(max((width-2*len(cards))/len(cards), minCardWidth), maxCardWidth)
	selected, hasSelection := m.controller.Selected()

	rendered := make([]string, len(cards))
	for i, card := range cards {
		info := disclosure.Resolve(card, m.expedition.Intel)
		style := cardStyle
		if hasSelection && i == selected {
			style = selectedCardStyle
		}
		rendered[i] = style.Width(cardWidth).Height(cardAreaHeight - 2).Render(renderCard(i, info, cardWidth-2))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderCard(index int, info disclosure.DisplayInfo, width int) string {
	var b strings.Builder
	b.WriteString(promptStyle.Render(fmt.Sprintf("[%d]", index+1)) + "\n")

	glyph := info.Icon.Resolve(noAssets).Glyph
	name := strings.TrimSpace(glyph + " " + info.Name)
	b.WriteString(titleStyle.Render(wordwrap.String(name, width)) + "\n")

	if info.ShowMystery {
		b.WriteString(mysteryStyle.Render(wordwrap.String(info.Subtitle, width)) + "\n\n")
		b.WriteString(mysteryStyle.Render(wordwrap.String("Gather intel to learn what lies here.", width)))
		return b.String()
	}

	b.WriteString(themeStyle.Render(wordwrap.String(info.Subtitle, width)) + "\n\n")
	if info.LocationType != nil {
		b.WriteString(info.LocationType.Label() + "\n")
	}
	if info.DangerLevel != nil {
		b.WriteString("Danger " + renderPips(*info.DangerLevel, location.MaxDangerLevel) + "\n")
	}
	if info.WealthLevel != nil {
		b.WriteString("Wealth " + renderPips(*info.WealthLevel, location.MaxWealthLevel) + "\n")
	}
	if info.MinRooms != nil {
		fmt.Fprintf(&b, "Rooms  %d+\n", *info.MinRooms)
	}

	var badges []string
	if info.RevisitBadge {
		badges = append(badges, badgeStyle.Render("REVISIT"))
	}
	if info.IsBoss {
		badges = append(badges, bossBadgeStyle.Render("BOSS"))
	}
	if info.IsSecret {
		badges = append(badges, secretBadgeStyle.Render("SECRET"))
	}
	if len(badges) > 0 {
		b.WriteString("\n" + strings.Join(badges, " "))
	}
	return b.String()
}

func renderPips(level, maxLevel int) string {
	level = min(max(level, 0), maxLevel)
	return strings.Repeat("●", level) + separatorStyle.Render(strings.Repeat("○", maxLevel-level))
}

// renderDetail describes the selected card in the scrollable panel.
func (m ExpeditionUI) renderDetail() string {
	width := max(m.detail.Width-2, 20)

	card, ok := m.controller.SelectedCard()
	if !ok {
		if m.controller.Len() == 0 {
			return ""
		}
		return promptStyle.Render(fmt.Sprintf("Press 1-%d to study a card. Enter or Space to travel. /help for more.", m.controller.Len()))
	}

	info := disclosure.Resolve(card, m.expedition.Intel)
	if info.ShowMystery {
		return mysteryStyle.Render(wordwrap.String("Your scouts know nothing of this place. Travelling there is a gamble.", width))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Activities") + "\n")
	keys := info.Activities.Keys()
	if len(keys) == 0 {
		b.WriteString(promptStyle.Render("Nothing of note") + "\n")
	}
	for _, key := range keys {
		line := "• " + key.Label()
		if info.Activities.Status(key) == location.Special {
			line += specialStyle.Render(" (special)")
		}
		b.WriteString(line + "\n")
		if m.tooltips {
			b.WriteString(promptStyle.Render(wordwrap.String("  "+key.Description(), width)) + "\n")
		}
	}

	if info.SpecialFeature != nil {
		b.WriteString("\n" + titleStyle.Render("Special") + "\n")
		b.WriteString(specialStyle.Render(wordwrap.String(*info.SpecialFeature, width)) + "\n")
	}
	if g := info.Guardian; g != nil {
		b.WriteString("\n" + titleStyle.Render("Guardian") + "\n")
		fmt.Fprintf(&b, "%s  HP %d  AC %d\n", g.Name, g.HP, g.AC)
	}
	return b.String()
}

func (m ExpeditionUI) renderIntelReport() string {
	pool := m.expedition.Intel
	var b strings.Builder
	b.WriteString(titleStyle.Render("Intel") + "\n\n")
	fmt.Fprintf(&b, "Pool: %s %s\n", renderIntelBar(pool, 20), pool.Progress())
	fmt.Fprintf(&b, "Each draw spends %d intel to scout a card and %d more to investigate it fully.\n\n",
		m.rule.PartialCost, m.rule.FullCost)
	for i, card := range m.controller.Cards() {
		fmt.Fprintf(&b, "Card %d: %s\n", i+1, card.Tier)
	}
	return b.String()
}

func renderJournal(entries []state.JournalEntry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Journal") + "\n\n")
	if len(entries) == 0 {
		b.WriteString(promptStyle.Render("No visits recorded yet.") + "\n")
	}
	for _, entry := range entries {
		b.WriteString(entry.String() + "\n")
	}
	return b.String()
}

func (m ExpeditionUI) renderStatus() string {
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	return statusStyle.Render(m.status)
}

func (m ExpeditionUI) renderInput() string {
	hint := "Tab: commands  y: copy  Esc: quit"
	if m.focus == focusInput {
		hint = "Tab: back to cards  Enter: run command"
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.input.View(), promptStyle.Render(hint))
}

func (m ExpeditionUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("End Expedition?"))
	content.WriteString("\n\n")
	content.WriteString("Your progress is saved. Return to camp?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ExpeditionUI) renderFaultPanel() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Display Error"))
	content.WriteString("\n\n")
	content.WriteString(errorStyle.Render(wordwrap.String(m.fault.message, 44)))
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press R to retry or Esc to quit"))

	panel := faultStyle.Width(50).Render(content.String())
	if m.width == 0 || m.height == 0 {
		return panel
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel, lipgloss.WithWhitespaceChars(" "))
}
