// Package config defines the tool configuration and its yaml/json loading.
package config

// GlobalConfig contains all configuration sections for the tool.
type GlobalConfig struct {
	ParserConfig ParserConfig `json:"parser_config,omitempty" yaml:"parser_config,omitempty"`
	LogConfig    LogConfig    `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// ParserConfig mirrors the two parse options of the library surface.
type ParserConfig struct {
	// ParseQueryString decodes query strings into key/value mappings.
	ParseQueryString bool `json:"parse_query_string,omitempty" yaml:"parse_query_string,omitempty"`
	// SlashesDenoteHost treats a leading "//" as denoting an authority.
	SlashesDenoteHost bool `json:"slashes_denote_host,omitempty" yaml:"slashes_denote_host,omitempty"`
}

// LogConfig defines configuration for logging.
type LogConfig struct {
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogBackups int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty"`
}

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)

// NewDefaultParserConfig creates default parser configuration.
func NewDefaultParserConfig() ParserConfig {
	return ParserConfig{}
}

// NewDefaultLogConfig creates default log configuration.
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogFile:       DefaultLogFile,
		LogFormat:     DefaultLogFormat,
		LogLevel:      DefaultLogLevel,
		MaxLogBackups: DefaultMaxLogBackups,
		MaxLogSizeMB:  DefaultMaxLogSizeMB,
	}
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values.
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		ParserConfig: NewDefaultParserConfig(),
		LogConfig:    NewDefaultLogConfig(),
	}
}
