package config

type MetricsConfig struct {
	Address string `yaml:"addr"`
}

func (s *MetricsConfig) Addr() string {
	return s.Address
}

type TracingConfig struct {
	On      bool   `yaml:"enabled"`
	Service string `yaml:"service-name"`
}

func (s *TracingConfig) Enabled() bool {
	return s.On
}

func (s *TracingConfig) ServiceName() string {
	return s.Service
}

type ReporterConfig struct {
	Port int `yaml:"grpc-port"`
}

func (s *ReporterConfig) GRPCPort() int {
	return s.Port
}
