package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	WhatsApp WhatsAppConfig
	CORS     CORSConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
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

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// CookieConfig contains session cookie configuration
type CookieConfig struct {
	Domain string
	Secure bool
}

// WhatsAppConfig contains the WhatsApp delivery API configuration
type WhatsAppConfig struct {
	APIURL  string
	Timeout int // in seconds
}

// CORSConfig contains the origin allow-list cache configuration
type CORSConfig struct {
	CacheTTL int // in seconds
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level string
}
