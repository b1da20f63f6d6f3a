package tui

import (
	"fmt"
	"strings"

	"hypercart/internal/model"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type rowState int

const (
	rowNormal rowState = iota
	rowSelected
	// rowLifted is the row under the pointer or springing back into its slot.
	rowLifted
)

type rowStyles struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	lifted   lipgloss.Style
	slot     lipgloss.Style
	meta     lipgloss.Style

	card         lipgloss.Style
	cardSelected lipgloss.Style
	cardLifted   lipgloss.Style
}

func newRowStyles() rowStyles {
	card := lipgloss.NewStyle().
		Padding(0, 1, 0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Foreground(colorSurfaceFg)
	return rowStyles{
		normal:   lipgloss.NewStyle().Foreground(colorSurfaceFg),
		selected: lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true),
		lifted:   lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Bold(true),
		slot:     styleMuted(),
		meta:     lipgloss.NewStyle().Foreground(colorChromeMutedFg),

		card:         card,
		cardSelected: card.BorderForeground(colorSelectedBorder),
		cardLifted:   card.BorderForeground(colorAccent).Bold(true),
	}
}

// renderCategory returns exactly style.rowHeight() lines, each width columns wide.
func renderCategory(st rowStyles, style listStyle, c model.Category, products, width int, state rowState) []string {
	if width < 4 {
		width = 4
	}
	if style == listStyleCards {
		return renderCategoryCard(st, c, products, width, state)
	}

	handle := "  "
	if state == rowLifted {
		handle = "⠿ "
	}
	meta := productsLabel(products)
	nameW := width - xansi.StringWidth(handle) - xansi.StringWidth(meta) - 2
	line := handle + padOrCutANSI(truncateToWidth(c.Name, nameW), nameW) + "  " + meta
	line = padOrCutANSI(line, width)

	switch state {
	case rowLifted:
		return []string{st.lifted.Render(line)}
	case rowSelected:
		return []string{st.selected.Render(line)}
	default:
		return []string{st.normal.Render(line)}
	}
}

func renderCategoryCard(st rowStyles, c model.Category, products, width int, state rowState) []string {
	card := st.card
	switch state {
	case rowLifted:
		card = st.cardLifted
	case rowSelected:
		card = st.cardSelected
	}
	innerW := width - card.GetHorizontalFrameSize()
	if innerW < 1 {
		innerW = 1
	}
	meta := productsLabel(products)
	nameW := innerW - xansi.StringWidth(meta) - 1
	body := padOrCutANSI(truncateToWidth(c.Name, nameW), nameW) + " " + st.meta.Render(meta)
	out := strings.Split(card.Width(innerW+card.GetHorizontalPadding()).Render(padOrCutANSI(body, innerW)), "\n")
	for i := range out {
		out[i] = padOrCutANSI(out[i], width)
	}
	for len(out) < listStyleCards.rowHeight() {
		out = append(out, strings.Repeat(" ", width))
	}
	return out[:listStyleCards.rowHeight()]
}

// renderSlot draws the gap a lifted row leaves behind.
func renderSlot(st rowStyles, style listStyle, width int) []string {
	h := style.rowHeight()
	out := make([]string, h)
	for i := range out {
		out[i] = strings.Repeat(" ", width)
	}
	mid := h / 2
	out[mid] = st.slot.Render(padOrCutANSI("  "+strings.Repeat("┄", max(width-4, 0)), width))
	return out
}

func productsLabel(n int) string {
	if n == 1 {
		return "1 product"
	}
	return fmt.Sprintf("%d products", n)
}

func truncateToWidth(s string, w int) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

func padOrCutANSI(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := xansi.StringWidth(s)
	switch {
	case cur < w:
		return s + strings.Repeat(" ", w-cur)
	case cur > w:
		return xansi.Cut(s, 0, w) + "\x1b[0m"
	default:
		return s
	}
}
