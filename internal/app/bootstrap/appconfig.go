// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings like the HTTP port, TLS, and logging level;
// AppConfig is everything specific to this service.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max pooled connections
	MongoMinPoolSize uint64 // Min pooled connections

	// Bearer token configuration
	TokenSecret string        // HMAC signing secret (must be strong in production)
	TokenTTL    time.Duration // Token validity window (default 150 days)
}
