package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/estatebook/internal/book"
	"github.com/mesh-intelligence/estatebook/internal/config"
	"github.com/mesh-intelligence/estatebook/internal/logging"
	"github.com/mesh-intelligence/estatebook/internal/logic"
	"github.com/mesh-intelligence/estatebook/internal/model"
	"github.com/mesh-intelligence/estatebook/internal/paths"
	"github.com/mesh-intelligence/estatebook/internal/sqlite"
	"github.com/mesh-intelligence/estatebook/internal/storage"
)

// app is a started estatebook: configuration, storage, model and logic.
type app struct {
	cfg     config.Config
	dataDir string
	logger  *slog.Logger
	storage *storage.Manager
	model   *model.Manager
	logic   *logic.Manager
	closers []io.Closer
}

// resolveDirs returns the config directory, the loaded config and the data
// directory for flags.
func resolveDirs(flags *rootFlags) (string, config.Config, string, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return "", config.Config{}, "", fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		return "", config.Config{}, "", err
	}
	dataDir, err := paths.ResolveDataDir(flags.dataDir, cfg.DataDir)
	if err != nil {
		return "", config.Config{}, "", fmt.Errorf("resolve data dir: %w", err)
	}
	return configDir, cfg, dataDir, nil
}

// newLogger builds the logger for cfg; a --log-level flag wins over config.
func newLogger(w io.Writer, cfg config.Config, flagLevel string) (*slog.Logger, error) {
	name := cfg.LogLevel
	if flagLevel != "" {
		name = flagLevel
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	return logging.New(w, level), nil
}

// startApp loads configuration, opens storage and reads the books. Log
// output goes to logw.
func startApp(flags *rootFlags, logw io.Writer) (*app, error) {
	_, cfg, dataDir, err := resolveDirs(flags)
	if err != nil {
		return nil, sysError(err)
	}
	logger, err := newLogger(logw, cfg, flags.logLevel)
	if err != nil {
		return nil, userError(err)
	}
	a := &app{cfg: cfg, dataDir: dataDir, logger: logger}

	prefsPath := paths.ResolveFile(dataDir, cfg.PrefsFile)
	prefsStorage := storage.NewJSONPrefsStorage(prefsPath, model.DefaultUserPrefs(dataDir))
	prefs := a.readPrefs(prefsStorage)

	books, err := a.openBooks(prefs)
	if err != nil {
		return nil, err
	}
	a.storage = storage.NewManager(books, prefsStorage, logger)

	persons := a.readPersonBook()
	properties := a.readPropertyBook()
	a.model = model.NewManager(persons, properties, prefs)
	a.logic = logic.NewManager(a.model, a.storage, logger)
	logger.Info("started", "backend", cfg.Backend, "data_dir", dataDir)
	return a, nil
}

// openBooks returns the book storage selected by the backend setting.
func (a *app) openBooks(prefs model.UserPrefs) (storage.BookStorage, error) {
	switch a.cfg.Backend {
	case config.BackendSQLite:
		s, err := sqlite.Open(a.dataDir, a.logger)
		if err != nil {
			return nil, sysError(err)
		}
		a.closers = append(a.closers, s)
		a.logger.Debug("book storage", "backend", config.BackendSQLite, "path", s.Path())
		return s, nil
	default:
		s := storage.NewJSONBookStorage(
			paths.ResolveFile(a.dataDir, prefs.PersonBookFile),
			paths.ResolveFile(a.dataDir, prefs.PropertyBookFile),
		)
		a.logger.Debug("book storage", "backend", config.BackendJSON,
			"persons", s.PersonBookPath(), "properties", s.PropertyBookPath())
		return s, nil
	}
}

func (a *app) readPrefs(s storage.PrefsStorage) model.UserPrefs {
	prefs, ok, err := s.ReadUserPrefs()
	var dce *storage.DataConversionError
	switch {
	case errors.As(err, &dce):
		a.logger.Warn("preferences file is not in the correct format, using defaults", "error", err)
	case err != nil:
		a.logger.Warn("problem reading preferences, using defaults", "error", err)
	case !ok:
		a.logger.Info("preferences file not found, using defaults")
	}
	return prefs
}

func (a *app) readPersonBook() *book.PersonBook {
	b, ok, err := a.storage.ReadPersonBook()
	var dce *storage.DataConversionError
	switch {
	case errors.As(err, &dce):
		a.logger.Warn("person book is not in the correct format, starting with an empty book", "error", err)
		return book.NewPersonBook()
	case err != nil:
		a.logger.Warn("problem reading person book, starting with an empty book", "error", err)
		return book.NewPersonBook()
	case !ok:
		a.logger.Info("person book not found, starting with sample data")
		return model.SamplePersonBook()
	}
	return b
}

func (a *app) readPropertyBook() *book.PropertyBook {
	b, ok, err := a.storage.ReadPropertyBook()
	var dce *storage.DataConversionError
	switch {
	case errors.As(err, &dce):
		a.logger.Warn("property book is not in the correct format, starting with an empty book", "error", err)
		return book.NewPropertyBook()
	case err != nil:
		a.logger.Warn("problem reading property book, starting with an empty book", "error", err)
		return book.NewPropertyBook()
	case !ok:
		a.logger.Info("property book not found, starting with sample data")
		return model.SamplePropertyBook()
	}
	return b
}

// stop saves the preferences and releases storage.
func (a *app) stop() error {
	var errs []error
	if err := a.storage.SaveUserPrefs(a.model.UserPrefs()); err != nil {
		a.logger.Error("saving preferences", "error", err)
		errs = append(errs, err)
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.logger.Info("stopped")
	return errors.Join(errs...)
}
