package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

// maxBackupSize bounds how much an import will read.
const maxBackupSize = 16 << 20

// Export writes the stored list in its on-disk JSON form.
func (s *Store) Export(ctx context.Context, w io.Writer) (int, error) {
	logs, err := s.GetAllLogs(ctx)
	if err != nil {
		return 0, err
	}

	raw, err := EncodeLogs(logs)
	if err != nil {
		return 0, err
	}

	if _, err := io.WriteString(w, raw); err != nil {
		return 0, fmt.Errorf("write backup: %w", err)
	}
	return len(logs), nil
}

// Import validates a backup and replaces the stored list with it. A backup
// that does not decode leaves the store untouched.
func (s *Store) Import(ctx context.Context, r io.Reader) ([]types.LogEntry, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBackupSize+1))
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	if len(data) > maxBackupSize {
		return nil, fmt.Errorf("backup larger than %d bytes", maxBackupSize)
	}

	logs, err := DecodeBackup(string(data))
	if err != nil {
		return nil, err
	}

	if err := s.SaveLogs(ctx, logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// DecodeBackup is DecodeLogs without the lenient cases: a backup must hold
// a JSON array. An empty body or a top-level null is rejected, `[]` is not.
func DecodeBackup(raw string) ([]types.LogEntry, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty backup", ErrMalformedLogs)
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: backup is not a JSON array", ErrMalformedLogs)
	}
	return DecodeLogs(trimmed)
}
