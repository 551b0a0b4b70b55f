package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/Alexander-D-Karpov/omnis/internal/config"
	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

var ErrClosed = errors.New("database is closed")

// Database is the desktop key-value backend: one kv table in a local
// SQLite file.
type Database struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
	log    zerolog.Logger
}

var _ types.KeyValue = (*Database)(nil)

func NewDatabase(cfg *config.Config, log zerolog.Logger) (*Database, error) {
	dbDir := filepath.Dir(cfg.Storage.DatabasePath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := openDatabase(cfg.Storage.DatabasePath, cfg.Storage.EnableWAL, log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	storage := &Database{
		db:  db,
		log: log,
	}

	if err := storage.runMigrations(); err != nil {
		if closeErr := storage.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("close database after migration error")
		}
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return storage, nil
}

func openDatabase(dbPath string, enableWAL bool, log zerolog.Logger) (*sql.DB, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		log.Info().Str("path", dbPath).Msg("creating new database")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	pragmas := []string{
		"PRAGMA temp_store=memory",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=30000",
	}

	if enableWAL {
		pragmas = append(pragmas, "PRAGMA journal_mode=WAL")
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("close database after pragma error")
			}
			return nil, fmt.Errorf("execute pragma %s: %w", pragma, err)
		}
	}

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("close database after ping error")
		}
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func (d *Database) debugLog(operation string, err error, duration time.Duration) {
	if err == nil {
		return
	}
	d.log.Debug().Err(err).Dur("took", duration).Msgf("%s failed", operation)
}

func (d *Database) checkClosed() error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrClosed
	}
	return nil
}

func (d *Database) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()

	if err := d.checkClosed(); err != nil {
		return "", false, err
	}

	var value string
	err := d.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		d.debugLog("Get", err, time.Since(start))
		return "", false, fmt.Errorf("query key %s: %w", key, err)
	}

	return value, true, nil
}

func (d *Database) Set(ctx context.Context, key, value string) error {
	start := time.Now()

	if err := d.checkClosed(); err != nil {
		return err
	}

	_, err := d.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		d.debugLog("Set", err, time.Since(start))
		return fmt.Errorf("store key %s: %w", key, err)
	}

	return nil
}

func (d *Database) Delete(ctx context.Context, key string) error {
	if err := d.checkClosed(); err != nil {
		return err
	}

	if _, err := d.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete key %s: %w", key, err)
	}
	return nil
}

func (d *Database) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}

	d.closed = true

	if d.db != nil {
		if _, err := d.db.Exec("PRAGMA optimize"); err != nil {
			d.log.Warn().Err(err).Msg("optimize database")
		}
		return d.db.Close()
	}

	return nil
}
