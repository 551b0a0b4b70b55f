package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Alexander-D-Karpov/omnis/internal/logbook"
)

var (
	Accent = lipgloss.Color("#1E88E5") // Blue 600
	Muted  = lipgloss.Color("#616161") // Grey 700
	Orange = lipgloss.Color("#FB8C00")

	DateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	IDStyle = lipgloss.NewStyle().
		Foreground(Muted)

	BodyStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Orange).
			Bold(true)
)

func renderCard(card logbook.Card) string {
	header := DateStyle.Render(card.Date) + " " + IDStyle.Render(fmt.Sprintf("#%d", card.ID))
	if card.Body == "" {
		return header
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, BodyStyle.Render(card.Body))
}

func printCards(w io.Writer, cards []logbook.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, MutedStyle.Render(logbook.EmptyText))
		return
	}
	for _, card := range cards {
		fmt.Fprintln(w, renderCard(card))
	}
}

func printSetting(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render(key+":"), value)
}
