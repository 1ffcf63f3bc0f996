package structs

import "time"

type Config struct {
	Server     *ServerConfig
	Cors       *CorsConfig
	Storage    *StorageConfig
	Cache      *CacheConfig
	Database   *DatabaseConfig
	Identity   *IdentityConfig
	RateLimit  *RateLimitConfig
	Email      *EmailConfig
	Checkout   *CheckoutConfig
	Storefront *StorefrontConfig
}

type ServerConfig struct {
	AppName        string        // Revorz
	Environment    string        // development, production
	Port           string        // :8082
	CookieDomain   string        // .revorz.id in production
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

// StorageConfig selects the backend for each storage scope.
type StorageConfig struct {
	SessionDriver    string        // memory, redis
	PersistentDriver string        // memory, redis, postgres
	SessionTTL       time.Duration // lifetime of session scoped values
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
}

type DatabaseConfig struct {
	Driver       string // pgdriver, pgx
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type IdentityConfig struct {
	SigningSecret string
	ProfileExpiry time.Duration
}

type RateLimitConfig struct {
	Enabled        bool
	GeneralLimit   int
	GeneralWindow  time.Duration
	MutationLimit  int
	MutationWindow time.Duration
}

type EmailConfig struct {
	ApiKey string
	From   string
}

type CheckoutConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// StorefrontConfig holds the page defined defaults of the product page.
type StorefrontConfig struct {
	ProductName     string
	BasePrice       string // raw, before normalization
	PriceSuffix     string
	PageIdleTimeout time.Duration
	LoginPage       string
	CartPage        string
	ProductPage     string
}
