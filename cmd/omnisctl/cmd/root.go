package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Alexander-D-Karpov/omnis/internal/config"
	"github.com/Alexander-D-Karpov/omnis/internal/logger"
	"github.com/Alexander-D-Karpov/omnis/internal/storage"
)

// session is what every subcommand works against once the root command has
// opened the database.
type session struct {
	configPath string
	dbPath     string
	debug      bool

	cfg   *config.Config
	log   zerolog.Logger
	db    *storage.Database
	store *storage.Store
}

func NewRootCmd() (*cobra.Command, func() error) {
	s := &session{}

	rootCmd := &cobra.Command{
		Use:   "omnisctl",
		Short: "Inspect and edit the My Omnis log list",
		Long: `omnisctl works on the same database as the desktop app.

It lists, adds, exports and imports log entries and edits the
icon and sort preferences.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return s.open()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&s.configPath, "config", "c", "", "path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&s.dbPath, "db", "", "path to the database (overrides storage.database_path)")
	rootCmd.PersistentFlags().BoolVar(&s.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newListCmd(s),
		newFindCmd(s),
		newAddCmd(s),
		newExportCmd(s),
		newImportCmd(s),
		newPrefsCmd(s),
	)

	return rootCmd, s.close
}

// Execute runs the root command
func Execute() {
	rootCmd, closeSession := NewRootCmd()

	err := rootCmd.Execute()
	if closeErr := closeSession(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (s *session) open() error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}

	cfg.Storage.Backend = config.BackendSQLite
	if s.dbPath != "" {
		cfg.Storage.DatabasePath = s.dbPath
	}
	if s.debug {
		cfg.Debug = true
	}

	s.cfg = cfg
	s.log = logger.Component(logger.New(cfg), "CLI")

	db, err := storage.NewDatabase(cfg, logger.Component(s.log, "DB"))
	if err != nil {
		return err
	}
	s.db = db

	s.store = storage.NewStore(logger.Component(s.log, "STORE"))
	return s.store.Attach(db)
}

func (s *session) close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
