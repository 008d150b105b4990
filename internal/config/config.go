package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Analysis AnalysisConfig `mapstructure:"analysis" validate:"required"`
	SRS      SRSConfig      `mapstructure:"srs" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// RateLimit is the sustained number of API requests per second allowed
	// for a single user; RateBurst is the bucket size.
	RateLimit float64 `mapstructure:"rate_limit" validate:"gt=0"`
	RateBurst int     `mapstructure:"rate_burst" validate:"gte=1"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL          string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gte=1"`
}

// LLMConfig contains the settings of the optional study coach.
// An empty GeminiAPIKey disables it.
type LLMConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key"`
	ModelName         string `mapstructure:"model_name" validate:"required_with=GeminiAPIKey"`
	MaxRetries        int    `mapstructure:"max_retries" validate:"gte=0,lte=5"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=0,lte=30"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds" validate:"gte=1"`
}

// AnalysisConfig contains the scoring policy of the attempt analyzer.
type AnalysisConfig struct {
	AccuracyWeight         float64 `mapstructure:"accuracy_weight" validate:"gte=0,lte=1"`
	OmissionWeight         float64 `mapstructure:"omission_weight" validate:"gte=0,lte=1"`
	ErrorWeight            float64 `mapstructure:"error_weight" validate:"gte=0,lte=1"`
	LowAccuracyBand        float64 `mapstructure:"low_accuracy_band" validate:"gte=0,lte=1"`
	HighAccuracyBand       float64 `mapstructure:"high_accuracy_band" validate:"gte=0,lte=1,gtfield=LowAccuracyBand"`
	HoursPerTopic          int     `mapstructure:"hours_per_topic" validate:"gte=1"`
	TopN                   int     `mapstructure:"top_n" validate:"gte=1"`
	TopicsPerWeek          int     `mapstructure:"topics_per_week" validate:"gte=1"`
	WeakSubjectThreshold   float64 `mapstructure:"weak_subject_threshold" validate:"gte=0,lte=100"`
	StrongSubjectThreshold float64 `mapstructure:"strong_subject_threshold" validate:"gte=0,lte=100"`
}

// SRSConfig contains the spaced-repetition scheduler parameters.
type SRSConfig struct {
	PassQuality    int     `mapstructure:"pass_quality" validate:"gte=1,lte=5"`
	MinEaseFactor  float64 `mapstructure:"min_ease_factor" validate:"gte=1.3"`
	FirstInterval  int     `mapstructure:"first_interval" validate:"gte=1"`
	SecondInterval int     `mapstructure:"second_interval" validate:"gte=1"`
}
