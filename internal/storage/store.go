package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Alexander-D-Karpov/omnis/internal/logbook"
	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

const (
	KeyLogs           = "tuntun_logs"
	KeyIconPreference = "icon_preference"
	KeySortPreference = "sort_preference"
	KeySchemaVersion  = "omnis_schema_version"

	// SchemaVersion is written next to the log list on every save.
	SchemaVersion = 1
)

var (
	ErrNotReady          = errors.New("preference store is not attached yet")
	ErrMalformedLogs     = errors.New("stored logs are malformed")
	ErrUnsupportedSchema = errors.New("stored logs use a newer schema")
	ErrInvalidSortOrder  = errors.New("sort order must be asc or desc")
)

type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Store is the typed view over the key-value backend. It refuses every
// read and write until Attach has been called with a backend.
type Store struct {
	mu    sync.RWMutex
	kv    types.KeyValue
	phase Phase
	log   zerolog.Logger
}

var _ types.LogStore = (*Store)(nil)

func NewStore(log zerolog.Logger) *Store {
	return &Store{log: log}
}

// Attach hands the store its backend and moves it to PhaseReady.
func (s *Store) Attach(kv types.KeyValue) error {
	if kv == nil {
		return fmt.Errorf("attach store: nil backend")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseReady {
		s.log.Warn().Msg("store re-attached, replacing backend")
	}
	s.kv = kv
	s.phase = PhaseReady
	s.log.Debug().Msg("store ready")
	return nil
}

func (s *Store) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *Store) Ready() bool {
	return s.Phase() == PhaseReady
}

func (s *Store) backend() (types.KeyValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.phase != PhaseReady {
		return nil, ErrNotReady
	}
	return s.kv, nil
}

// GetAllLogs returns the stored entries in load order. An absent or empty
// value yields an empty slice; anything that is not a JSON array of
// entries yields ErrMalformedLogs and leaves the stored value alone.
func (s *Store) GetAllLogs(ctx context.Context) ([]types.LogEntry, error) {
	kv, err := s.backend()
	if err != nil {
		return nil, err
	}

	if err := s.checkSchema(ctx, kv); err != nil {
		return nil, err
	}

	raw, ok, err := kv.Get(ctx, KeyLogs)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeyLogs, err)
	}
	if !ok {
		return []types.LogEntry{}, nil
	}

	logs, err := DecodeLogs(raw)
	if err != nil {
		s.log.Error().Err(err).Int("bytes", len(raw)).Msg("cannot decode stored logs")
		return nil, err
	}

	return logs, nil
}

func (s *Store) checkSchema(ctx context.Context, kv types.KeyValue) error {
	raw, ok, err := kv.Get(ctx, KeySchemaVersion)
	if err != nil {
		return fmt.Errorf("read %s: %w", KeySchemaVersion, err)
	}
	if !ok {
		return nil
	}

	version, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: schema version %q", ErrMalformedLogs, raw)
	}
	if version > SchemaVersion {
		return fmt.Errorf("%w: version %d, supported %d", ErrUnsupportedSchema, version, SchemaVersion)
	}
	return nil
}

// SaveLogs replaces the whole stored list.
func (s *Store) SaveLogs(ctx context.Context, logs []types.LogEntry) error {
	kv, err := s.backend()
	if err != nil {
		return err
	}

	raw, err := EncodeLogs(logs)
	if err != nil {
		return err
	}

	if err := kv.Set(ctx, KeyLogs, raw); err != nil {
		return fmt.Errorf("write %s: %w", KeyLogs, err)
	}
	if err := kv.Set(ctx, KeySchemaVersion, strconv.Itoa(SchemaVersion)); err != nil {
		return fmt.Errorf("write %s: %w", KeySchemaVersion, err)
	}

	s.log.Debug().Int("count", len(logs)).Msg("logs saved")
	return nil
}

// AppendLog adds one entry to the stored list. An entry without an id gets
// the next free one.
func (s *Store) AppendLog(ctx context.Context, entry types.LogEntry) (types.LogEntry, error) {
	logs, err := s.GetAllLogs(ctx)
	if err != nil {
		return types.LogEntry{}, err
	}

	if entry.ID == 0 {
		if entry.ID, err = logbook.NextID(logs); err != nil {
			return types.LogEntry{}, fmt.Errorf("assign id: %w", err)
		}
	}
	if entry.Events == nil {
		entry.Events = []string{}
	}

	logs = append(logs, entry)
	if err := s.SaveLogs(ctx, logs); err != nil {
		return types.LogEntry{}, err
	}

	return entry, nil
}

// LoadPreferences reads the scalar preferences, filling in defaults for
// anything absent. A stored sort order outside asc/desc is reported and
// replaced by the default.
func (s *Store) LoadPreferences(ctx context.Context) (types.Preferences, error) {
	prefs := types.DefaultPreferences()

	kv, err := s.backend()
	if err != nil {
		return prefs, err
	}

	icon, ok, err := kv.Get(ctx, KeyIconPreference)
	if err != nil {
		return prefs, fmt.Errorf("read %s: %w", KeyIconPreference, err)
	}
	if ok && icon != "" {
		prefs.Icon = icon
	}

	sortValue, ok, err := kv.Get(ctx, KeySortPreference)
	if err != nil {
		return prefs, fmt.Errorf("read %s: %w", KeySortPreference, err)
	}
	if ok && sortValue != "" {
		order := types.SortOrder(sortValue)
		if order.Valid() {
			prefs.Sort = order
		} else {
			// Unknown values keep the desc default; they never sort ascending.
			s.log.Warn().Str("value", sortValue).Msg("ignoring unknown sort preference")
		}
	}

	return prefs, nil
}

func (s *Store) SetIconPreference(ctx context.Context, icon string) error {
	kv, err := s.backend()
	if err != nil {
		return err
	}
	if icon == "" {
		icon = types.DefaultIconPreference
	}
	if err := kv.Set(ctx, KeyIconPreference, icon); err != nil {
		return fmt.Errorf("write %s: %w", KeyIconPreference, err)
	}
	return nil
}

func (s *Store) SetSortPreference(ctx context.Context, order types.SortOrder) error {
	if !order.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
	}

	kv, err := s.backend()
	if err != nil {
		return err
	}
	if err := kv.Set(ctx, KeySortPreference, order.String()); err != nil {
		return fmt.Errorf("write %s: %w", KeySortPreference, err)
	}
	return nil
}

// DecodeLogs parses the stored JSON array. Entries always come back with a
// non-nil Events slice.
func DecodeLogs(raw string) ([]types.LogEntry, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []types.LogEntry{}, nil
	}

	var logs []types.LogEntry
	if err := json.Unmarshal([]byte(trimmed), &logs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLogs, err)
	}

	if logs == nil {
		logs = []types.LogEntry{}
	}
	for i := range logs {
		if logs[i].Events == nil {
			logs[i].Events = []string{}
		}
	}

	return logs, nil
}

// EncodeLogs serializes the list with non-ASCII text and HTML characters
// kept as written.
func EncodeLogs(logs []types.LogEntry) (string, error) {
	out := make([]types.LogEntry, len(logs))
	copy(out, logs)
	for i := range out {
		if out[i].Events == nil {
			out[i].Events = []string{}
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return "", fmt.Errorf("encode logs: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
