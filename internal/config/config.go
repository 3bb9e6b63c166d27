package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"team-generator/internal/domain"
)

const defaultConfigPath = "config/config.yaml"

// Config объединяет все аспекты настройки приложения.
type Config struct {
	Roster     RosterConfig     `yaml:"roster"`
	Allocation AllocationConfig `yaml:"allocation"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// RosterConfig задаёт ограничения на размер состава.
type RosterConfig struct {
	MaxPlayers int `yaml:"max_players" env:"ROSTER_MAX_PLAYERS"`
	MinPlayers int `yaml:"min_players" env:"ROSTER_MIN_PLAYERS"`
}

// AllocationConfig описывает распределение по командам.
type AllocationConfig struct {
	Policy    string   `yaml:"policy" env:"ALLOCATION_POLICY"`
	Seed      int64    `yaml:"seed" env:"ALLOCATION_SEED"`
	TeamNames []string `yaml:"team_names" env:"TEAM_NAMES" envSeparator:","`
}

// LoggingConfig описывает формат и место логов.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Output string `yaml:"output" env:"LOG_OUTPUT"`
}

// MetricsConfig задаёт файл для выгрузки метрик. Пустой путь отключает выгрузку.
type MetricsConfig struct {
	TextfilePath string `yaml:"textfile_path" env:"METRICS_TEXTFILE"`
}

// Load загружает конфигурацию, отдавая предпочтение пути из CONFIG_PATH.
func Load() (Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg := Config{}
	if err := readYAML(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env vars: %w", err)
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode config yaml: %w", err)
	}
	return nil
}

// normalize устанавливает значения по умолчанию для всех полей конфигурации, если они не заданы.
func (c *Config) normalize() {
	// Состав
	if c.Roster.MaxPlayers <= 0 {
		c.Roster.MaxPlayers = 10
	}
	if c.Roster.MinPlayers <= 0 {
		c.Roster.MinPlayers = 2
	}
	// Распределение
	if c.Allocation.Policy == "" {
		c.Allocation.Policy = string(domain.PolicyBalanced)
	}
	if len(c.Allocation.TeamNames) != 2 {
		c.Allocation.TeamNames = []string{domain.DefaultFirstTeamName, domain.DefaultSecondTeamName}
	}
	// Логирование
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}
}

func (c Config) validate() error {
	if c.Roster.MinPlayers > c.Roster.MaxPlayers {
		return fmt.Errorf("roster.min_players (%d) exceeds roster.max_players (%d)", c.Roster.MinPlayers, c.Roster.MaxPlayers)
	}
	if _, err := domain.ParsePolicy(c.Allocation.Policy); err != nil {
		return fmt.Errorf("allocation.policy: %w", err)
	}
	return nil
}
