/*
Package config manages TOML config for SpellServe services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/quillforge/spellserve/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Spell  SpellConfig  `toml:"spell"`
	Stats  StatsConfig  `toml:"stats"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has boundary-layer options: caps applied to responses, never
// to the engine itself.
type ServerConfig struct {
	MaxLimit   int `toml:"max_limit"`
	MaxWordLen int `toml:"max_word_len"`
}

// SpellConfig holds spell engine options.
type SpellConfig struct {
	MaxDistance int    `toml:"max_distance"`
	DictPath    string `toml:"dict_path"`
	CustomPath  string `toml:"custom_path"`
}

// StatsConfig holds text statistics options.
type StatsConfig struct {
	ReadWPM int `toml:"read_wpm"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit       int  `toml:"default_limit"`
	DefaultMaxDistance int  `toml:"default_max_distance"`
	DefaultNoFilter    bool `toml:"default_no_filter"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "spellserve")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "spellserve")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/spellserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxLimit:   100,
			MaxWordLen: 255,
		},
		Spell: SpellConfig{
			MaxDistance: 2,
			DictPath:    "dictionary.txt",
			CustomPath:  "custom.txt",
		},
		Stats: StatsConfig{
			ReadWPM: 200,
		},
		CLI: CliConfig{
			DefaultLimit:       10,
			DefaultMaxDistance: 2,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file section by section so one
// bad value does not discard the whole file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if spellSection, ok := utils.ExtractSection(tempConfig, "spell"); ok {
		extractSpellConfig(spellSection, &config.Spell)
	}
	if statsSection, ok := utils.ExtractSection(tempConfig, "stats"); ok {
		extractStatsConfig(statsSection, &config.Stats)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		server.MaxWordLen = val
	}
}

// extractSpellConfig extracts spell engine configuration from a map
func extractSpellConfig(data map[string]any, spell *SpellConfig) {
	if val, ok := utils.ExtractInt64(data, "max_distance"); ok {
		spell.MaxDistance = val
	}
	if val, ok := utils.ExtractString(data, "dict_path"); ok {
		spell.DictPath = val
	}
	if val, ok := utils.ExtractString(data, "custom_path"); ok {
		spell.CustomPath = val
	}
}

// extractStatsConfig extracts text statistics configuration from a map
func extractStatsConfig(data map[string]any, stats *StatsConfig) {
	if val, ok := utils.ExtractInt64(data, "read_wpm"); ok {
		stats.ReadWPM = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "default_max_distance"); ok {
		cli.DefaultMaxDistance = val
	}
	if val, ok := utils.ExtractBool(data, "default_no_filter"); ok {
		cli.DefaultNoFilter = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	config := DefaultConfig()
	return utils.SaveTOMLFile(config, defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the boundary caps and saves to file
func (c *Config) Update(configPath string, maxLimit, maxWordLen *int) error {
	server := &c.Server
	if maxLimit != nil {
		server.MaxLimit = *maxLimit
	}
	if maxWordLen != nil {
		server.MaxWordLen = *maxWordLen
	}
	return SaveConfig(c, configPath)
}
