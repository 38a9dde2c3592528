package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/estatebook/internal/config"
	"github.com/mesh-intelligence/estatebook/internal/model"
	"github.com/mesh-intelligence/estatebook/internal/paths"
	"github.com/mesh-intelligence/estatebook/internal/sqlite"
	"github.com/mesh-intelligence/estatebook/internal/storage"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	var backend string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and data directories",
		Long: "init writes a default config.yaml and preferences file and prepares\n" +
			"the selected storage backend. Existing files are kept; --backend\n" +
			"rewrites the backend setting in config.yaml.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, flags, backend)
		},
	}
	cmd.Flags().StringVar(&backend, "backend", "", "storage backend to record in config.yaml: json or sqlite")
	return cmd
}

func runInit(cmd *cobra.Command, flags *rootFlags, backend string) error {
	configDir, cfg, dataDir, err := resolveDirs(flags)
	if err != nil {
		return sysError(fmt.Errorf("init: %w", err))
	}
	if backend != "" {
		if err := setBackend(configDir, backend); err != nil {
			return err
		}
		cfg.Backend = backend
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return sysError(fmt.Errorf("init: create data dir: %w", err))
	}

	prefsPath := paths.ResolveFile(dataDir, cfg.PrefsFile)
	if _, err := os.Stat(prefsPath); os.IsNotExist(err) {
		prefs := storage.NewJSONPrefsStorage(prefsPath, model.DefaultUserPrefs(dataDir))
		if err := prefs.SaveUserPrefs(model.DefaultUserPrefs(dataDir)); err != nil {
			return sysError(fmt.Errorf("init: %w", err))
		}
	}

	if cfg.Backend == config.BackendSQLite {
		logger, err := newLogger(cmd.ErrOrStderr(), cfg, flags.logLevel)
		if err != nil {
			return userError(err)
		}
		s, err := sqlite.Open(dataDir, logger)
		if err != nil {
			return sysError(fmt.Errorf("init: %w", err))
		}
		if err := s.Close(); err != nil {
			return sysError(fmt.Errorf("init: %w", err))
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "estatebook initialized successfully")
	fmt.Fprintln(out, "  config: ", configDir)
	fmt.Fprintln(out, "  data:   ", dataDir)
	fmt.Fprintln(out, "  backend:", cfg.Backend)
	return nil
}

// setBackend records backend in the config.yaml under configDir.
func setBackend(configDir, backend string) error {
	if err := config.ValidateBackend(backend); err != nil {
		return userError(fmt.Errorf("init: %w", err))
	}
	path := filepath.Join(configDir, config.FileName)
	cfg, err := config.ReadFile(path)
	if err != nil {
		return sysError(fmt.Errorf("init: %w", err))
	}
	cfg.Backend = backend
	if err := config.Write(path, cfg); err != nil {
		return sysError(fmt.Errorf("init: %w", err))
	}
	return nil
}
