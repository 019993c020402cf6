// Package config holds the settings of the isis-convert command.
package config

import (
	"os"
	"path"
	"runtime"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/miku/isiskit"
	"github.com/miku/isiskit/isis"
	"github.com/miku/isiskit/reftable"
	"github.com/miku/isiskit/resolve"
	"github.com/miku/isiskit/scielo"
)

// Output formats.
const (
	FormatArticle = "article"
	FormatRelease = "release"
)

// DefaultDataDir is where optional reference table overrides are looked up.
var DefaultDataDir = path.Join(xdg.DataHome, isiskit.AppName)

// Config for conversions, populated from flags.
type Config struct {
	// DataDir is the data directory, a "tables" subdirectory in it is used
	// for reference table overrides, if TablesDir is not set.
	DataDir string
	// TablesDir contains countries.csv and states.csv overrides.
	TablesDir      string
	LanguageFormat string
	Format         string
	Workers        int
	BatchSize      int
	// Since keeps only documents updated on that day or later, if not zero.
	Since   time.Time
	Verbose bool
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		DataDir:        DefaultDataDir,
		LanguageFormat: string(scielo.DefaultLanguageFormat),
		Format:         FormatArticle,
		Workers:        runtime.NumCPU(),
		BatchSize:      1000,
	}
}

// Validate checks option values before any data is read.
func (c Config) Validate() error {
	switch c.Format {
	case FormatArticle, FormatRelease:
	default:
		return &isis.ConfigError{Option: "format", Value: c.Format}
	}
	if _, err := resolve.ParseLanguageFormat(c.LanguageFormat); err != nil {
		return err
	}
	if c.Workers < 1 {
		return &isis.ConfigError{Option: "workers", Value: itoa(c.Workers)}
	}
	if c.BatchSize < 1 {
		return &isis.ConfigError{Option: "batch size", Value: itoa(c.BatchSize)}
	}
	return nil
}

// TablesPath is the directory to read reference tables from, empty if the
// bundled tables should be used.
func (c Config) TablesPath() string {
	if c.TablesDir != "" {
		return c.TablesDir
	}
	if c.DataDir == "" {
		return ""
	}
	dir := path.Join(c.DataDir, "tables")
	if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
		return dir
	}
	return ""
}

// Options turns the configuration into entity options, loading reference
// tables once.
func (c Config) Options() ([]scielo.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []scielo.Option{scielo.WithLanguageFormat(c.LanguageFormat)}
	if dir := c.TablesPath(); dir != "" {
		t, err := reftable.LoadDir(dir)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scielo.WithTables(t))
	}
	return opts, nil
}

func itoa(i int) string { return strconv.Itoa(i) }
