// Package paths lays out estatebook's directories and files: where the
// config and data directories live and where each file sits inside them.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppDirName is the directory created under the platform config and data
// roots.
const AppDirName = "estatebook"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "ESTATEBOOK_CONFIG_DIR"
	EnvDataDir   = "ESTATEBOOK_DATA_DIR"
)

// Default file names inside the data directory.
const (
	PersonBookFile   = "personbook.json"
	PropertyBookFile = "propertybook.json"
	PrefsFile        = "preferences.json"
)

// Kind selects the config or the data directory.
type Kind int

// Directory kinds.
const (
	Config Kind = iota
	Data
)

// xdgRoot is where a Kind lives on Linux: the XDG variable, then a path
// under the home directory.
type xdgRoot struct {
	env      string
	fallback []string
}

var xdgRoots = map[Kind]xdgRoot{
	Config: {env: "XDG_CONFIG_HOME", fallback: []string{".config"}},
	Data:   {env: "XDG_DATA_HOME", fallback: []string{".local", "share"}},
}

// platform holds the lookups that tests replace.
var platform = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultDir returns the platform default for kind. Linux follows XDG;
// macOS and Windows keep config and data together under the user config
// directory.
func DefaultDir(kind Kind) (string, error) {
	if platform.goos != "linux" {
		root, err := platform.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(root, AppDirName), nil
	}

	x := xdgRoots[kind]
	if v := os.Getenv(x.env); v != "" {
		return filepath.Join(v, AppDirName), nil
	}
	home, err := platform.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, x.fallback...)
	return filepath.Join(append(parts, AppDirName)...), nil
}

// resolve returns the first non-empty candidate as an absolute path, or
// the platform default for kind.
func resolve(kind Kind, candidates ...string) (string, error) {
	for _, c := range candidates {
		if c != "" {
			return filepath.Abs(c)
		}
	}
	return DefaultDir(kind)
}

// ResolveConfigDir picks the config directory: flag, then
// ESTATEBOOK_CONFIG_DIR, then the platform default.
func ResolveConfigDir(flag string) (string, error) {
	return resolve(Config, flag, os.Getenv(EnvConfigDir))
}

// ResolveDataDir picks the data directory: flag, then data_dir from
// config.yaml, then ESTATEBOOK_DATA_DIR, then the platform default.
func ResolveDataDir(flag, configValue string) (string, error) {
	return resolve(Data, flag, configValue, os.Getenv(EnvDataDir))
}

// ResolveFile places name inside dataDir. Absolute names are kept as they
// are and an empty name stays empty.
func ResolveFile(dataDir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dataDir, name)
}
