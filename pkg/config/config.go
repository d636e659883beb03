// Package config loads and writes the framewright configuration file.
//
// Configuration lives at ~/.config/framewright/config.toml and covers
// display preferences (unit, tape graduations), cutting defaults, the
// share link base, and which workbench storage backend to use. A
// missing file is not an error: [Load] returns [Default] in that case,
// so every setting has a working zero-configuration value.
package config

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/format"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/share"
	"github.com/framewright/framewright/pkg/tape"
	"github.com/framewright/framewright/pkg/units"
	"github.com/framewright/framewright/pkg/workbench"
)

// Backend names accepted in the storage section.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNull  = "null"
)

// Config is the full configuration file.
type Config struct {
	// Unit is the display unit, "in" or "mm".
	Unit string `toml:"unit"`

	// Denominators are the allowed tape graduations for fractional
	// display, coarsest first.
	Denominators []int `toml:"denominators"`

	// BladeWidth is the default saw kerf in inches.
	BladeWidth float64 `toml:"blade_width"`

	// ShareBaseURL is the link prefix for generated share links.
	ShareBaseURL string `toml:"share_base_url"`

	Storage Storage `toml:"storage"`
}

// Storage selects and configures the workbench backend.
type Storage struct {
	// Backend is one of file, redis, mongo, or null.
	Backend string `toml:"backend"`

	// Path overrides the file backend's directory. Empty means the
	// default under the user config directory.
	Path string `toml:"path"`

	Redis Redis `toml:"redis"`
	Mongo Mongo `toml:"mongo"`
}

// Redis configures the redis backend.
type Redis struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// Mongo configures the mongo backend.
type Mongo struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Default returns the zero-configuration settings: inches on a
// standard tape, file storage, and the public share link base.
func Default() Config {
	return Config{
		Unit:         string(units.Inches),
		Denominators: append([]int(nil), tape.DefaultDenominators...),
		BladeWidth:   frame.DefaultBladeWidth,
		ShareBaseURL: share.DefaultBaseURL,
		Storage: Storage{
			Backend: BackendFile,
			Redis:   Redis{Addr: "localhost:6379"},
			Mongo:   Mongo{URI: "mongodb://localhost:27017", Database: "framewright"},
		},
	}
}

// Path returns the configuration file location under the user's home.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "locate home directory")
	}
	return filepath.Join(home, ".config", "framewright", "config.toml"), nil
}

// Load reads the configuration from its default location. A missing
// file yields [Default].
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads and validates a configuration file. Settings the file
// omits keep their defaults; a missing file yields [Default] without
// error.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Write validates the configuration and encodes it as TOML.
func Write(c Config, w io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "encode config")
	}
	return nil
}

// WriteFile validates the configuration and writes it as TOML,
// creating parent directories as needed.
func WriteFile(c Config, path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "create config directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "create %s", path)
	}
	defer f.Close()

	return Write(c, f)
}

// Validate checks every field that has an invalid representation.
func (c Config) Validate() error {
	if _, err := units.ParseUnit(c.Unit); err != nil {
		return err
	}
	if err := errors.ValidateDenominators(c.Denominators); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("blade_width", c.BladeWidth); err != nil {
		return err
	}
	if err := errors.ValidateURL(c.ShareBaseURL); err != nil {
		return err
	}

	switch c.Storage.Backend {
	case BackendFile, BackendRedis, BackendMongo, BackendNull:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"storage backend %q (want %s, %s, %s, or %s)",
			c.Storage.Backend, BackendFile, BackendRedis, BackendMongo, BackendNull)
	}
}

// DisplayUnit returns the parsed display unit, falling back to inches
// when the field has not been validated.
func (c Config) DisplayUnit() units.Unit {
	u, err := units.ParseUnit(c.Unit)
	if err != nil {
		return units.Inches
	}
	return u
}

// FormatOptions returns display formatting that honors the configured
// unit and tape graduations.
func (c Config) FormatOptions() format.Options {
	fo := format.DefaultOptions(c.DisplayUnit())
	if len(c.Denominators) > 0 {
		fo.Denominators = c.Denominators
	}
	return fo
}

// OpenStore opens the workbench store the configuration selects. The
// caller owns the store and must Close it. Stores are instrumented so
// registered observability hooks see every lookup and write.
func (c Config) OpenStore(ctx context.Context) (workbench.Store, error) {
	st, err := c.openBackend(ctx)
	if err != nil {
		return nil, err
	}
	return workbench.Instrument(st), nil
}

func (c Config) openBackend(ctx context.Context) (workbench.Store, error) {
	switch c.Storage.Backend {
	case BackendRedis:
		return workbench.NewRedisStore(ctx, workbench.RedisConfig{
			Addr:      c.Storage.Redis.Addr,
			Password:  c.Storage.Redis.Password,
			DB:        c.Storage.Redis.DB,
			KeyPrefix: c.Storage.Redis.KeyPrefix,
		})
	case BackendMongo:
		return workbench.NewMongoStore(ctx, workbench.MongoConfig{
			URI:      c.Storage.Mongo.URI,
			Database: c.Storage.Mongo.Database,
		})
	case BackendNull:
		return workbench.NewNullStore(), nil
	case BackendFile, "":
		return workbench.NewFileStore(c.Storage.Path)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "storage backend %q", c.Storage.Backend)
	}
}
