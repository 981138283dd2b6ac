package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Trash   TrashConfig   `yaml:"trash"`
	Worker  WorkerConfig  `yaml:"worker"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Host string `yaml:"host"`
}

type StorageConfig struct {
	Type     string         `yaml:"type"` // "inmemory", "file" или "postgres"
	File     FileConfig     `yaml:"file"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type FileConfig struct {
	Dir string `yaml:"dir"`
}

type PostgresConfig struct {
	URL string `yaml:"url"`
}

type TrashConfig struct {
	RetentionDays int `yaml:"retention_days"`
	Capacity      int `yaml:"capacity"`
}

func (t TrashConfig) Retention() time.Duration {
	return time.Duration(t.RetentionDays) * 24 * time.Hour
}

type WorkerConfig struct {
	TrashSweep    string `yaml:"trash_sweep"`
	ReminderCheck string `yaml:"reminder_check"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Server:  ServerConfig{Host: "", Port: "8080"},
		Storage: StorageConfig{Type: "file", File: FileConfig{Dir: "data"}},
		Trash:   TrashConfig{RetentionDays: 7, Capacity: 50},
		Worker:  WorkerConfig{TrashSweep: "@every 1h", ReminderCheck: "@every 1m"},
		Logging: LoggingConfig{Development: true},
	}
}

// Load читает config.yml; отсутствующий файл — не ошибка, берутся значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("не могу открыть %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
