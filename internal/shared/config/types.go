package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type OpenAIConfig struct {
	APIKey          string `mapstructure:"api_key"`
	EmbeddingModel  string `mapstructure:"embedding_model"`
	CompletionModel string `mapstructure:"completion_model"`
}

// SuggestionConfig tunes the knowledge-base matching pipeline.
type SuggestionConfig struct {
	// SimilarityThreshold is the minimum cosine similarity for the
	// automated (advisory) matching path.
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	// SearchLimit caps the number of candidate articles per search.
	SearchLimit int `mapstructure:"search_limit"`
}

type StorageConfig struct {
	// BasePath is the root directory for attachment blobs.
	BasePath string `mapstructure:"base_path"`
	// PublicBaseURL prefixes public attachment URLs.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	// NotifyAddress is the shared team inbox for ticket notifications.
	// User accounts live outside this service, so there is no per-user
	// address to resolve.
	NotifyAddress string `mapstructure:"notify_address"`
	BaseURL       string `mapstructure:"base_url"`
}
