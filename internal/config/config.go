package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ini "gopkg.in/ini.v1"
)

type Config struct {
	CodecName string
	Direction string
}

const (
	defaultCodec     = "compat"
	defaultDirection = "decompose"
	defaultFileName  = "hanjamo.ini"
)

func Default() Config {
	return Config{CodecName: defaultCodec, Direction: defaultDirection}
}

// Load reads a config file. A missing file yields the defaults; a file
// that exists but cannot be parsed is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	section := file.Section("codec")
	cfg.CodecName = strings.TrimSpace(section.Key("name").MustString(cfg.CodecName))
	cfg.Direction = strings.TrimSpace(section.Key("direction").MustString(cfg.Direction))

	switch cfg.Direction {
	case "decompose", "compose":
	default:
		return Default(), fmt.Errorf("config: invalid direction %q in %s", cfg.Direction, path)
	}
	return cfg, nil
}

// Resolve loads the config named on the command line, falling back to
// ./hanjamo.ini when present and the defaults otherwise.
func Resolve(cliPath string) (Config, error) {
	if cliPath != "" {
		return Load(cliPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Default(), nil
	}
	defaultPath := filepath.Join(cwd, defaultFileName)
	if _, statErr := os.Stat(defaultPath); statErr == nil {
		return Load(defaultPath)
	}
	return Default(), nil
}
