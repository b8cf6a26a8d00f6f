// Package config loads the GitHub credentials a search run needs.
//
// Credentials come from the environment first and from an optional TOML file
// second. The result is a plain value that is built once at startup and
// handed to the API client; nothing here is global.
//
// The file lives at $XDG_CONFIG_HOME/cratescout/config.toml (falling back to
// ~/.config/cratescout/config.toml) and looks like:
//
//	[github]
//	api_key = "ghp_..."
//	username = "octocat"
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cratescout/pkg/errors"
)

// Environment variables consulted by [Loader.Load].
const (
	EnvAPIKey   = "GITHUB_API_KEY"
	EnvUsername = "GITHUB_USERNAME"
)

const appName = "cratescout"

// Credentials identify the caller to the GitHub API.
type Credentials struct {
	APIKey   string // Sent as the Authorization header
	ClientID string // Sent as the User-Agent header
}

// AuthorizationHeader returns the Authorization header value for the key.
// Keys that already name a scheme ("token ...", "Bearer ...") are sent
// verbatim; a bare token gets the Bearer scheme.
func (c Credentials) AuthorizationHeader() string {
	key := strings.TrimSpace(c.APIKey)
	if strings.ContainsRune(key, ' ') {
		return key
	}
	return "Bearer " + key
}

// Validate checks that both values are present and can be encoded as HTTP
// header values.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return errors.New(errors.ErrCodeConfigMissing, "%s is not set", EnvAPIKey)
	}
	if strings.TrimSpace(c.ClientID) == "" {
		return errors.New(errors.ErrCodeConfigMissing, "%s is not set", EnvUsername)
	}
	if err := errors.ValidateHeaderValue("Authorization", c.APIKey); err != nil {
		return err
	}
	return errors.ValidateHeaderValue("User-Agent", c.ClientID)
}

type fileConfig struct {
	GitHub struct {
		APIKey   string `toml:"api_key"`
		Username string `toml:"username"`
	} `toml:"github"`
}

// Loader resolves credentials. The zero value reads the real environment and
// the default config path.
type Loader struct {
	// Path overrides the config file location. Empty means [DefaultPath].
	Path string
	// Getenv replaces os.Getenv, mainly for tests.
	Getenv func(string) string
}

// Load returns validated credentials. Environment values win over the file;
// a missing file is not an error, a malformed one is.
func (l Loader) Load() (Credentials, error) {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	creds := Credentials{
		APIKey:   getenv(EnvAPIKey),
		ClientID: getenv(EnvUsername),
	}
	if creds.APIKey == "" || creds.ClientID == "" {
		fc, err := l.readFile(getenv)
		if err != nil {
			return Credentials{}, err
		}
		if creds.APIKey == "" {
			creds.APIKey = fc.GitHub.APIKey
		}
		if creds.ClientID == "" {
			creds.ClientID = fc.GitHub.Username
		}
	}

	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

func (l Loader) readFile(getenv func(string) string) (fileConfig, error) {
	var fc fileConfig

	path := l.Path
	if path == "" {
		p, err := defaultPath(getenv)
		if err != nil {
			return fc, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fc, nil
	}
	if err != nil {
		return fc, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fc, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return fc, nil
}

// DefaultPath returns the config file location following the XDG convention.
func DefaultPath() (string, error) {
	return defaultPath(os.Getenv)
}

func defaultPath(getenv func(string) string) (string, error) {
	if configHome := getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
