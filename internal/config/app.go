package config

type AppConfig struct {
	Symbol string `yaml:"currency-symbol"`
	Months int    `yaml:"recent-months"`
}

func (s *AppConfig) CurrencySymbol() string {
	return s.Symbol
}

func (s *AppConfig) RecentMonths() int {
	return s.Months
}
