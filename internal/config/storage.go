package config

type StorageConfig struct {
	Kind     string `yaml:"backend"`
	CSVFile  string `yaml:"csv-path"`
	SQLiteDB string `yaml:"sqlite-path"`
}

func (s *StorageConfig) Backend() string {
	return s.Kind
}

func (s *StorageConfig) CSVPath() string {
	return s.CSVFile
}

func (s *StorageConfig) SQLitePath() string {
	return s.SQLiteDB
}
