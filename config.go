package main

import (
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/BurntSushi/toml"

	"gbcat/log"
	"gbcat/source"
)

type Config struct {
	Scan   ScanConfig   `toml:"scan"`
	Report ReportConfig `toml:"report"`
}

type ScanConfig struct {
	Root          string   `toml:"root"`
	ROMExtensions []string `toml:"rom_extensions"`
	Archives      bool     `toml:"archives"`
	Workers       int      `toml:"workers"`
}

type ReportConfig struct {
	Output   string `toml:"output"`
	Format   string `toml:"format"`
	Template string `toml:"template"`
}

const DefaultFileMode = os.FileMode(0755)

// ConfigDir returns the gbcat directory in the user configuration
// directory, creating it if needed.
var ConfigDir = sync.OnceValues(func() (string, error) {
	cfgdir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(cfgdir, "gbcat")
	if err := os.MkdirAll(dir, DefaultFileMode); err != nil {
		return "", err
	}
	return dir, nil
})

func defaultConfig() Config {
	return Config{
		Scan: ScanConfig{
			Root:          "roms",
			ROMExtensions: slices.Clone(source.DefaultROMExts),
			Archives:      true,
			Workers:       0,
		},
		Report: ReportConfig{
			Output: "gameboy-roms",
			Format: "html",
		},
	}
}

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from the gbcat config
// directory. Settings missing from the file, or the whole configuration if
// there's no file, take their default value.
func LoadConfigOrDefault() Config {
	dir, err := ConfigDir()
	if err != nil {
		log.ModCLI.Warnf("no configuration directory: %v", err)
		return defaultConfig()
	}

	cfg, err := loadConfig(filepath.Join(dir, cfgFilename))
	if err != nil {
		if !os.IsNotExist(err) {
			log.ModCLI.Warnf("ignoring configuration file: %v", err)
		}
		return defaultConfig()
	}
	return cfg
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	log.ModCLI.Debugf("loaded configuration from %s", path)
	return cfg, nil
}

// SaveConfig into gbcat config directory.
func SaveConfig(cfg Config) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, cfgFilename)
	return path, saveConfig(path, cfg)
}

func saveConfig(path string, cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, buf, 0644)
}
