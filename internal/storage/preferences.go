package storage

import (
	"context"

	"fyne.io/fyne/v2"

	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

// Preferences adapts the Fyne application preference store, the mobile
// default backend. Fyne has no notion of an absent key, so an empty string
// reads as absent.
type Preferences struct {
	prefs fyne.Preferences
}

var _ types.KeyValue = (*Preferences)(nil)

func NewPreferences(prefs fyne.Preferences) *Preferences {
	return &Preferences{prefs: prefs}
}

func (p *Preferences) Get(_ context.Context, key string) (string, bool, error) {
	value := p.prefs.String(key)
	return value, value != "", nil
}

func (p *Preferences) Set(_ context.Context, key, value string) error {
	p.prefs.SetString(key, value)
	return nil
}
