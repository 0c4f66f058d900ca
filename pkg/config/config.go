package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// API SERVER CONFIG
// =============================================================================

// APIServerConfig represents the marketplace API server configuration
type APIServerConfig struct {
	Server         ServerConfig         `yaml:"server"`
	Database       DatabaseConfig       `yaml:"database"`
	Auth           AuthConfig           `yaml:"auth"`
	Ethereum       EthereumConfig       `yaml:"ethereum"`
	Subgraph       SubgraphConfig       `yaml:"subgraph"`
	Reconciliation ReconciliationConfig `yaml:"reconciliation"`
	Royalty        RoyaltyConfig        `yaml:"royalty"`
	Monitoring     MonitoringConfig     `yaml:"monitoring"`
	Logging        LoggingConfig        `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8081" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"music_marketplace"`
	SSLMode  string `yaml:"ssl_mode" default:"disable"`

	MaxOpenConns    int           `yaml:"max_open_conns" default:"20" validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns" default:"5" validate:"min=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" default:"30m"`
}

// AuthConfig holds session token and credential settings
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret" validate:"required,min=16"`
	JWTIssuer  string        `yaml:"jwt_issuer" default:"music-marketplace"`
	TokenTTL   time.Duration `yaml:"token_ttl" default:"24h"`
	BcryptCost int           `yaml:"bcrypt_cost" default:"10" validate:"min=4,max=31"`
	RateLimit  RateLimit     `yaml:"rate_limit"`
}

// RateLimit configures the per-IP limiter on credential endpoints
type RateLimit struct {
	Requests int           `yaml:"requests" default:"10"`
	Window   time.Duration `yaml:"window" default:"1m"`
	Burst    int           `yaml:"burst" default:"5"`
	TTL      time.Duration `yaml:"ttl" default:"10m"`
}

// EthereumConfig contains chain read settings. An empty RPCURL disables every
// feature that needs the chain (on-chain listing lookups, receipt checks,
// platform fees, background reconciliation).
type EthereumConfig struct {
	RPCURL             string        `yaml:"rpc_url"`
	ChainID            int64         `yaml:"chain_id" default:"11155111"`
	MarketplaceAddress string        `yaml:"marketplace_address" validate:"omitempty,eth_addr"`
	MusicNFTAddress    string        `yaml:"music_nft_address" validate:"omitempty,eth_addr"`
	StreamingAddress   string        `yaml:"streaming_address" validate:"omitempty,eth_addr"`
	RequestTimeout     time.Duration `yaml:"request_timeout" default:"15s"`
}

// Enabled reports whether a chain endpoint is configured
func (c *EthereumConfig) Enabled() bool {
	return c.RPCURL != ""
}

// SubgraphConfig contains the GraphQL indexer endpoint
type SubgraphConfig struct {
	URL     string        `yaml:"url" validate:"omitempty,url"`
	Timeout time.Duration `yaml:"timeout" default:"10s"`
}

// ReconciliationConfig contains settings for listing reconciliation
type ReconciliationConfig struct {
	InitialTimeout time.Duration `yaml:"initial_timeout" default:"2m"`
	Interval       time.Duration `yaml:"interval" default:"5m"`
	BatchSize      int           `yaml:"batch_size" default:"100" validate:"min=1"`
}

// RoyaltyConfig contains royalty payout settings
type RoyaltyConfig struct {
	// PerPlayETH is the amount paid to the owner for every recorded play
	PerPlayETH string `yaml:"per_play_eth" default:"0.0001"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled     bool   `yaml:"enabled" default:"true"`
	MetricsPath string `yaml:"metrics_path" default:"/metrics"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// =============================================================================
// CLIENT CONFIG
// =============================================================================

// ClientConfig represents the marketctl client configuration
type ClientConfig struct {
	BaseURL       string        `yaml:"base_url" default:"http://localhost:8081" validate:"required,url"`
	SessionFile   string        `yaml:"session_file" default:".marketctl-session.json"`
	PrivateKeyEnv string        `yaml:"private_key_env" default:"WALLET_PRIVATE_KEY"`
	Timeout       time.Duration `yaml:"timeout" default:"30s"`
	Logging       LoggingConfig `yaml:"logging"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadAPIServer loads API server configuration from file
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	var cfg APIServerConfig
	if err := load(configPath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadClient loads client configuration from file. A missing file yields the defaults.
func LoadClient(configPath string) (*ClientConfig, error) {
	var cfg ClientConfig
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := defaults.Set(&cfg); err != nil {
			return nil, fmt.Errorf("failed to apply defaults: %w", err)
		}
		return &cfg, nil
	}
	if err := load(configPath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func load(configPath string, out any) error {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw, out)
}

// Parse decodes YAML into out, expanding ${ENV} references, applying
// `default` tags and validating the result.
func Parse(raw []byte, out any) error {
	expanded := os.ExpandEnv(string(raw))

	if err := defaults.Set(out); err != nil {
		return fmt.Errorf("failed to apply defaults: %w", err)
	}
	if err := yaml.Unmarshal([]byte(expanded), out); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
