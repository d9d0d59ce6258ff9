// Package config loads the settings for the vitae command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to the upper-cased key of every setting to get the
// environment variable that overrides it, like VITAE_OUTPUT.
const EnvPrefix = "VITAE"

// Config holds every setting the vitae command understands.
type Config struct {
	// Content is the path of the content file: YAML, JSON, or Markdown
	// with YAML frontmatter.
	Content string `mapstructure:"content"`

	// AssetDir is the directory Stylesheets are read from.
	AssetDir string `mapstructure:"assetDir"`

	// Stylesheets are slash-separated paths within AssetDir, embedded in
	// the page in order.
	Stylesheets []string `mapstructure:"stylesheets"`

	// Output is where the rendered page is written.
	Output string `mapstructure:"output"`

	// Title overrides the document title, which is otherwise the name
	// in the content file.
	Title string `mapstructure:"title"`

	// SourceURL is linked to from the header. Empty leaves the link out.
	SourceURL string `mapstructure:"sourceURL"`

	// ShellDir holds a custom shell template. Empty uses the built-in
	// one.
	ShellDir string `mapstructure:"shellDir"`

	// Shell is the name of the shell template within ShellDir.
	Shell string `mapstructure:"shell"`

	LogLevel string `mapstructure:"logLevel"`
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// FlagKeys maps the command-line flag names that override settings to the
// settings they override.
var FlagKeys = map[string]string{
	"content":    "content",
	"asset-dir":  "assetDir",
	"stylesheet": "stylesheets",
	"output":     "output",
	"title":      "title",
	"source-url": "sourceURL",
	"shell-dir":  "shellDir",
	"shell":      "shell",
	"log-level":  "logLevel",
}

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("content", "cv.yaml")
	v.SetDefault("assetDir", ".")
	v.SetDefault("stylesheets", []string{})
	v.SetDefault("output", "public/index.html")
	v.SetDefault("title", "")
	v.SetDefault("sourceURL", "")
	v.SetDefault("shellDir", "")
	v.SetDefault("shell", "shell.html.tmpl")
	v.SetDefault("logLevel", "info")
}

// Load reads the settings from, in increasing order of precedence: defaults,
// the config file, VITAE_ environment variables, and any flags that were set.
//
// If file is empty, a vitae.yaml in the working directory is used when there
// is one. If file is set, it must exist.
func Load(file string, flags *pflag.FlagSet) (Config, string, error) {
	v := viper.New()
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("vitae")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, "", fmt.Errorf("error binding flag %q: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || file != "" {
			return Config{}, "", fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, "", err
	}
	return cfg, v.ConfigFileUsed(), nil
}
