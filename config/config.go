package config

import (
	"revorz_storefront/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "Revorz_no_env"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8082"),
				CookieDomain:   getEnvAsString("COOKIE_DOMAIN", ""),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowOrigins:     getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
				AllowMethods:     getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "DELETE", "OPTIONS"}),
				AllowHeaders:     getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
			},
			Storage: &structs.StorageConfig{
				SessionDriver:    getEnvAsString("STORAGE_SESSION_DRIVER", "redis"),
				PersistentDriver: getEnvAsString("STORAGE_PERSISTENT_DRIVER", "redis"),
				SessionTTL:       getEnvAsTimeDuration("STORAGE_SESSION_TTL", 24*time.Hour),
			},
			Cache: &structs.CacheConfig{
				Address:         getEnvAsString("REDIS_ADDR", "localhost:6379"),
				Username:        getEnvAsString("REDIS_USERNAME", ""),
				Password:        getEnvAsString("REDIS_PASSWORD", ""),
				DB:              getEnvAsInt("REDIS_DB", 0),
				PoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 20),
				MinIdleConns:    getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
				MaxIdleConns:    getEnvAsInt("REDIS_MAX_IDLE_CONNS", 10),
				PoolTimeout:     getEnvAsTimeDuration("REDIS_POOL_TIMEOUT", 4*time.Second),
				IdleTimeout:     getEnvAsTimeDuration("REDIS_IDLE_TIMEOUT", 5*time.Minute),
				DialTimeout:     getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:     getEnvAsTimeDuration("REDIS_READ_TIMEOUT", 3*time.Second),
				WriteTimeout:    getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
				MaxRetries:      getEnvAsInt("REDIS_MAX_RETRIES", 3),
				MinRetryBackoff: getEnvAsTimeDuration("REDIS_MIN_RETRY_BACKOFF", 8*time.Millisecond),
				MaxRetryBackoff: getEnvAsTimeDuration("REDIS_MAX_RETRY_BACKOFF", 512*time.Millisecond),
			},
			Database: &structs.DatabaseConfig{
				Driver:       getEnvAsString("DB_DRIVER", "pgdriver"),
				Host:         getEnvAsString("DB_HOST", "localhost"),
				Port:         getEnvAsInt("DB_PORT", 5432),
				User:         getEnvAsString("DB_USER", "postgres"),
				Password:     getEnvAsString("DB_PASSWORD", "password"),
				Name:         getEnvAsString("DB_NAME", "revorz_db"),
				SSLMode:      getEnvAsString("DB_SSL_MODE", "disable"),
				MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
				MinConns:     getEnvAsInt("DB_MIN_CONNS", 2),
				MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
				ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
				WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
			},
			Identity: &structs.IdentityConfig{
				SigningSecret: getEnvAsString("IDENTITY_SIGNING_SECRET", "default_identity_secret"),
				ProfileExpiry: getEnvAsTimeDuration("IDENTITY_PROFILE_EXPIRY", 365*24*time.Hour),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:        getEnvAsBool("RATE_LIMIT_ENABLED", true),
				GeneralLimit:   getEnvAsInt("RATE_LIMIT_GENERAL", 300),
				GeneralWindow:  getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", time.Minute),
				MutationLimit:  getEnvAsInt("RATE_LIMIT_MUTATION", 60),
				MutationWindow: getEnvAsTimeDuration("RATE_LIMIT_MUTATION_WINDOW", time.Minute),
			},
			Email: &structs.EmailConfig{
				ApiKey: getEnvAsString("EMAIL_API_KEY", ""),
				From:   getEnvAsString("EMAIL_FROM", "Revorz <newsletter@revorz.id>"),
			},
			Checkout: &structs.CheckoutConfig{
				Brokers: getEnvAsSlice("CHECKOUT_KAFKA_BROKERS", nil),
				Topic:   getEnvAsString("CHECKOUT_KAFKA_TOPIC", "checkout-completed"),
				GroupID: getEnvAsString("CHECKOUT_KAFKA_GROUP", "storefront-cart-clear"),
			},
			Storefront: &structs.StorefrontConfig{
				ProductName:     getEnvAsString("STOREFRONT_PRODUCT_NAME", "Smart Watch Pro"),
				BasePrice:       getEnvAsString("STOREFRONT_BASE_PRICE", "75000"),
				PriceSuffix:     getEnvAsString("STOREFRONT_PRICE_SUFFIX", "J"),
				PageIdleTimeout: getEnvAsTimeDuration("STOREFRONT_PAGE_IDLE_TIMEOUT", 30*time.Minute),
				LoginPage:       getEnvAsString("STOREFRONT_LOGIN_PAGE", "login.html"),
				CartPage:        getEnvAsString("STOREFRONT_CART_PAGE", "cart.html"),
				ProductPage:     getEnvAsString("STOREFRONT_PRODUCT_PAGE", "product.html"),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
