package log

// Config is the configuration struct for the log package.
//
// Can be deserialized from YAML.
type Config struct {
	// Level is the log level, default to info.
	Level Level `yaml:"level"`

	// JSON switches the global logger from the console format to the full
	// JSON format.
	JSON bool `yaml:"json"`
}

// InitFromConfig initializes the global logger using the given Config.
func InitFromConfig(cfg Config) {
	level := cfg.Level
	if level == "" {
		level = InfoLevel
	}
	if cfg.JSON {
		InitLoggerJSON(level)
		return
	}
	InitLogger(level)
}
