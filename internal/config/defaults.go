package config

// Upload limits of the parse endpoint.
const (
	DefaultMaxUploadFiles = 50
	DefaultMaxUploadBytes = 10 << 20
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MaxUploadFiles == 0 {
		cfg.Server.MaxUploadFiles = DefaultMaxUploadFiles
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if cfg.Server.RequestTimeout == "" {
		cfg.Server.RequestTimeout = "120s"
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/resumecua/data/db/candidates.db"
	}
	if cfg.Storage.IndexPath == "" {
		cfg.Storage.IndexPath = "/usr/local/var/resumecua/data/indices/bleve"
	}
	if cfg.NER.MaxTokens == 0 {
		cfg.NER.MaxTokens = 128
	}
	if cfg.NER.OutputName == "" {
		cfg.NER.OutputName = "logits"
	}
	if cfg.NER.CacheSize == 0 {
		cfg.NER.CacheSize = 256
	}
	if cfg.Parse.Workers == 0 {
		cfg.Parse.Workers = 4
	}
	if cfg.Parse.Extensions == nil {
		cfg.Parse.Extensions = []string{".pdf", ".docx", ".txt"}
	}
	// Recursive defaults to true when unset (nil).
	if len(cfg.Watch.Directories) > 0 && cfg.Watch.Recursive == nil {
		t := true
		cfg.Watch.Recursive = &t
	}
}
