package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	configEnvKey      = "LEDGER_CONFIG"
	defaultConfigFile = "data/config.yaml"
	defaultLedgerFile = "expenses.csv"
)

type config struct {
	App       AppConfig       `yaml:"app"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Reporter  ReporterConfig  `yaml:"reporter"`
}

type Service struct {
	config config
}

// Path returns the config file location, LEDGER_CONFIG overriding the default.
func Path() string {
	if p := os.Getenv(configEnvKey); p != "" {
		return p
	}
	return defaultConfigFile
}

// New reads the YAML file at path on top of the defaults. A missing file
// leaves the defaults in place.
func New(path string) (*Service, error) {
	s := &Service{config: defaults()}

	rawYAML, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Info("config file not found, using defaults", zap.String("path", path))
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			Symbol: "₹",
			Months: 4,
		},
		Storage: StorageConfig{
			Kind:     "csv",
			CSVFile:  besideExecutable(defaultLedgerFile),
			SQLiteDB: "data/ledger.db",
		},
		Kafka: KafkaConfig{
			Consumer: "expense-reporter",
			RepTopic: "expense-reports",
		},
		Metrics: MetricsConfig{
			Address: ":9090",
		},
		Tracing: TracingConfig{
			Service: "expense-tracker",
		},
		Reporter: ReporterConfig{
			Port: 8080,
		},
	}
}

func besideExecutable(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}

func (s *Service) Reporter() *ReporterConfig {
	return &s.config.Reporter
}
