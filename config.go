package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config locations.
const (
	configDirName  = "advent-of-code"
	configFileName = "config.json"
	envPrefix      = "AOC_"
	envToken       = envPrefix + "TOKEN"
)

// Config store errors.
var (
	errConfigDirUnavailable = errors.New("config directory unavailable")
	errConfigWriteFailed    = errors.New("config write failed")
	errPromptFailed         = errors.New("token prompt failed")
)

// appConfig holds the persisted configuration.
type appConfig struct {
	Token string `json:"token"`
}

// configStore describes where the config lives and how to ask for a token.
type configStore struct {
	// dir overrides the per-user config directory; empty means
	// os.UserConfigDir()/advent-of-code.
	dir string
	in  io.Reader
	out io.Writer
	log *logger
}

func defaultConfigStore(log *logger) configStore {
	return configStore{in: os.Stdin, out: os.Stdout, log: log}
}

func (s configStore) path() (string, error) {
	dir := s.dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", errConfigDirUnavailable, err)
		}
		dir = filepath.Join(base, configDirName)
	}
	return filepath.Join(dir, configFileName), nil
}

// loadOrCreateConfig resolves the session token: AOC_TOKEN, then the config
// file, then a prompt whose answer is written back to the config file.
func loadOrCreateConfig(s configStore) (appConfig, error) {
	path, pathErr := s.path()

	k := koanf.New(".")
	if pathErr == nil {
		if err := loadConfigFile(k, path); err != nil && s.log != nil {
			s.log.warnf("ignoring config file %s: %v", path, err)
		}
	}
	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envKeyValue), nil); err != nil {
		return appConfig{}, fmt.Errorf("load env: %w", err)
	}

	var cfg appConfig
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Token = strings.TrimSpace(cfg.Token)
	if cfg.Token != "" {
		return cfg, nil
	}

	if pathErr != nil {
		return appConfig{}, pathErr
	}
	token, err := promptToken(s.in, s.out)
	if err != nil {
		return appConfig{}, err
	}
	cfg.Token = token
	if err := saveConfig(path, cfg); err != nil {
		return appConfig{}, err
	}
	if s.log != nil {
		s.log.okf("config saved: %s", path)
	}
	return cfg, nil
}

// envKeyValue maps AOC_TOKEN to the "token" key. Blank variables are
// skipped so they cannot mask the file.
func envKeyValue(key, value string) (string, any) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
}

// loadConfigFile merges the file into k. A missing file is not an error.
func loadConfigFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat config: %w", err)
	}
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}

// saveConfig writes configuration to the specified path.
func saveConfig(path string, cfg appConfig) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal config: %w", errConfigWriteFailed, err)
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: mkdir config dir: %w", errConfigDirUnavailable, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("%w: write temp config: %w", errConfigWriteFailed, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: replace config: %w", errConfigWriteFailed, err)
	}
	return nil
}

func promptToken(in io.Reader, out io.Writer) (string, error) {
	_, _ = fmt.Fprintln(out, "Please enter your Advent of Code session token:")
	_, _ = fmt.Fprint(out, "> ")

	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", errPromptFailed, err)
		}
		return "", fmt.Errorf("%w: stdin closed", errPromptFailed)
	}
	token := strings.TrimSpace(sc.Text())
	if token == "" {
		return "", fmt.Errorf("%w: empty token", errPromptFailed)
	}
	return token, nil
}
