package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Upload  UploadConfig
	Extract ExtractConfig
	CORS    CORSConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// UploadConfig holds upload validation settings.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// ExtractConfig holds the default extraction policy settings.
// Per-request query parameters may override the behavior switches.
type ExtractConfig struct {
	Mode                    string  `mapstructure:"mode"`
	MergeContactIntoCompany bool    `mapstructure:"merge_contact_into_company"`
	RemarkFallback          string  `mapstructure:"remark_fallback"`
	RowTolerance            float64 `mapstructure:"row_tolerance"`
	WordGapFactor           float64 `mapstructure:"word_gap_factor"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the TOURXLS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TOURXLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 25)

	// Extraction defaults
	v.SetDefault("extract.mode", "auto")
	v.SetDefault("extract.merge_contact_into_company", false)
	v.SetDefault("extract.remark_fallback", "premarker")
	v.SetDefault("extract.row_tolerance", 3.0)
	v.SetDefault("extract.word_gap_factor", 0.3)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                        "TOURXLS_SERVER_PORT",
		"server.read_timeout":                "TOURXLS_SERVER_READ_TIMEOUT",
		"server.write_timeout":               "TOURXLS_SERVER_WRITE_TIMEOUT",
		"server.environment":                 "TOURXLS_SERVER_ENVIRONMENT",
		"upload.max_file_size_mb":            "TOURXLS_UPLOAD_MAX_FILE_SIZE_MB",
		"extract.mode":                       "TOURXLS_EXTRACT_MODE",
		"extract.merge_contact_into_company": "TOURXLS_EXTRACT_MERGE_CONTACT_INTO_COMPANY",
		"extract.remark_fallback":            "TOURXLS_EXTRACT_REMARK_FALLBACK",
		"extract.row_tolerance":              "TOURXLS_EXTRACT_ROW_TOLERANCE",
		"extract.word_gap_factor":            "TOURXLS_EXTRACT_WORD_GAP_FACTOR",
		"log.level":                          "TOURXLS_LOG_LEVEL",
		"log.format":                         "TOURXLS_LOG_FORMAT",
		"cors.allowed_origins":               "TOURXLS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TOURXLS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TOURXLS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Extract = ExtractConfig{
		Mode:                    v.GetString("extract.mode"),
		MergeContactIntoCompany: v.GetBool("extract.merge_contact_into_company"),
		RemarkFallback:          v.GetString("extract.remark_fallback"),
		RowTolerance:            v.GetFloat64("extract.row_tolerance"),
		WordGapFactor:           v.GetFloat64("extract.word_gap_factor"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
