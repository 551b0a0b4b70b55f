package types

import (
	"context"

	"fyne.io/fyne/v2"
)

// KeyValue is a persistent string store. Get reports ok=false when the key
// has never been written.
type KeyValue interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// LogStore defines the log and preference operations the UI depends on.
type LogStore interface {
	Ready() bool
	GetAllLogs(ctx context.Context) ([]LogEntry, error)
	SaveLogs(ctx context.Context, logs []LogEntry) error
	AppendLog(ctx context.Context, entry LogEntry) (LogEntry, error)
	LoadPreferences(ctx context.Context) (Preferences, error)
	SetIconPreference(ctx context.Context, icon string) error
	SetSortPreference(ctx context.Context, order SortOrder) error
}

// View defines the interface for UI components
type View interface {
	Container() fyne.CanvasObject
	Refresh()
}
