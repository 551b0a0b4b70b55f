// Package logbook holds the pure parts of the log list pipeline: ordering
// entries, building card text and assigning ids.
package logbook

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strings"

	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

const (
	// EventSeparator joins the events of one entry on its card.
	EventSeparator = "；"

	// EmptyText stands in for the list when nothing is stored.
	EmptyText = "No records yet"
)

// Sort orders entries by id in place. The sort is stable, so entries that
// share an id keep the order they were loaded in. Anything other than
// ascending sorts descending.
func Sort(entries []types.LogEntry, order types.SortOrder) {
	if order == types.SortAsc {
		slices.SortStableFunc(entries, func(a, b types.LogEntry) int {
			return cmp.Compare(a.ID, b.ID)
		})
		return
	}
	slices.SortStableFunc(entries, func(a, b types.LogEntry) int {
		return cmp.Compare(b.ID, a.ID)
	})
}

// Sorted returns a sorted copy and leaves entries untouched.
func Sorted(entries []types.LogEntry, order types.SortOrder) []types.LogEntry {
	out := slices.Clone(entries)
	Sort(out, order)
	return out
}

func JoinEvents(events []string) string {
	return strings.Join(events, EventSeparator)
}

// Card is the text content of one rendered entry.
type Card struct {
	ID   int64
	Date string
	Body string
}

func Cards(entries []types.LogEntry) []Card {
	cards := make([]Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, Card{
			ID:   e.ID,
			Date: e.DateStr,
			Body: JoinEvents(e.Events),
		})
	}
	return cards
}

var ErrIDsExhausted = errors.New("no id left above the largest stored id")

// NextID returns one past the largest id in entries, or 1 for an empty list.
func NextID(entries []types.LogEntry) (int64, error) {
	var maxID int64
	for _, e := range entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	if maxID == math.MaxInt64 {
		return 0, ErrIDsExhausted
	}
	return maxID + 1, nil
}

// ParseEvents splits free text typed into the add form into events. Lines,
// ASCII semicolons and full-width semicolons all separate events; blanks
// are dropped.
func ParseEvents(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ';' || r == '；'
	})

	events := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			events = append(events, f)
		}
	}
	return events
}
