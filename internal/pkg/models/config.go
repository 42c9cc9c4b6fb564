package models

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Geocoder GeocoderConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ daemon and lookupd addresses
type NSQConfig struct {
	Address         string
	LookupAddresses []string
	Channel         string
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// GeocoderConfig holds the external geocoding service configuration
type GeocoderConfig struct {
	BaseURL  string
	Timeout  int // seconds
	CacheTTL int // seconds
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
