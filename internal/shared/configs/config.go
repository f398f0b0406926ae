package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Dataset     DatasetConfig     `mapstructure:"dataset" validate:"required"`
	Assistant   AssistantConfig   `mapstructure:"assistant" validate:"required"`
	Simulator   SimulatorConfig   `mapstructure:"simulator"`
	NATS        NATSConfig        `mapstructure:"nats"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// DatasetConfig locates the telemetry CSV inside the file storage root.
type DatasetConfig struct {
	CSVKey string `mapstructure:"csv_key" validate:"required"`
}

// AssistantConfig holds the chat-completion endpoint settings.
// An empty APIKey disables outbound calls; every reply is then the local fallback.
type AssistantConfig struct {
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`
	Model    string `mapstructure:"model" validate:"required"`
	APIKey   string `mapstructure:"api_key"`
	Timeout  int    `mapstructure:"timeout" validate:"required,min=1"` // seconds
}

// SimulatorConfig holds scenario simulator settings.
type SimulatorConfig struct {
	RulesPath       string `mapstructure:"rules_path"`                                  // empty uses the embedded rule set
	RefreshInterval int    `mapstructure:"refresh_interval" validate:"required,min=1"`  // seconds
	InputDebounceMs int    `mapstructure:"input_debounce_ms" validate:"required,min=1"` // milliseconds
}

// NATSConfig enables publishing prediction runs when URL is set.
type NATSConfig struct {
	URL     string `mapstructure:"url" validate:"omitempty,url"`
	Subject string `mapstructure:"subject" validate:"required_with=URL"`
}
