package types

import (
	errs "errors"
	"fmt"
	"os"
	"path"

	"github.com/oliverisaac/goli"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath     string `yaml:"db_path"`
	ListenAddr string `yaml:"listen"`
	Locale     string `yaml:"locale"`
	LogLevel   string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		DBPath:     "mynotes.db",
		ListenAddr: ":8080",
		Locale:     "en",
		LogLevel:   "info",
	}
}

// ConfigOverride adjusts a config after the file and environment have been
// applied and before it is validated, e.g. from command line flags.
type ConfigOverride func(*Config)

// ConfigFromEnv loads the file named by MYNOTES_CONFIG, if any, and then
// applies the environment on top of it.
func ConfigFromEnv(overrides ...ConfigOverride) (Config, error) {
	return LoadConfig(os.Getenv("MYNOTES_CONFIG"), overrides...)
}

// LoadConfig layers defaults, the YAML file at configPath (skipped when
// empty), MYNOTES_* environment variables and overrides, in that order. All
// validation problems are returned together.
func LoadConfig(configPath string, overrides ...ConfigOverride) (Config, error) {
	ret, err := readConfig(configPath)
	if err != nil {
		return ret, err
	}
	for _, override := range overrides {
		override(&ret)
	}
	return ret, ret.Validate()
}

func readConfig(configPath string) (Config, error) {
	ret := DefaultConfig()

	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return ret, errors.Wrapf(err, "reading config file %q", configPath)
		}
		if err := yaml.Unmarshal(raw, &ret); err != nil {
			return ret, errors.Wrapf(err, "parsing config file %q", configPath)
		}
	}

	ret.DBPath = goli.DefaultEnv("MYNOTES_DB_PATH", ret.DBPath)
	ret.ListenAddr = goli.DefaultEnv("MYNOTES_LISTEN", ret.ListenAddr)
	ret.Locale = goli.DefaultEnv("MYNOTES_LOCALE", ret.Locale)
	ret.LogLevel = goli.DefaultEnv("MYNOTES_LOG_LEVEL", ret.LogLevel)

	return ret, nil
}

func (c Config) Validate() error {
	var retErr error

	if c.DBPath == "" {
		retErr = errs.Join(retErr, fmt.Errorf("You must define a database path"))
	} else if _, err := os.Stat(path.Dir(c.DBPath)); err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "Directory for MYNOTES_DB_PATH must exist"))
	}

	if c.ListenAddr == "" {
		retErr = errs.Join(retErr, fmt.Errorf("You must define a listen address"))
	}

	if _, err := language.Parse(c.Locale); err != nil {
		retErr = errs.Join(retErr, errors.Wrapf(err, "parsing locale %q", c.Locale))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		retErr = errs.Join(retErr, errors.Wrapf(err, "parsing log level %q", c.LogLevel))
	}

	return retErr
}

// Language returns the configured locale, falling back to English.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
