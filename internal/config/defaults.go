package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			BaseURL: "https://raw.githubusercontent.com/krishnadey30/LeetCode-Questions-CompanyWise/master",
		},
		Storage: StorageConfig{
			Path:       "~/.config/leetrack",
			SQLiteFile: "leetrack.db",
		},
		Server: ServerConfig{
			Host:           "127.0.0.1",
			Port:           8477,
			AllowedOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
	}
}
