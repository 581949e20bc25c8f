package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of uploaded objects.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"64"`
	// PresignExpirySeconds is the default lifetime of presigned URLs.
	PresignExpirySeconds int `mapstructure:"presign_expiry_seconds" default:"3600"`
}

const (
	DefaultBodyLimitMB          = 64
	DefaultPresignExpirySeconds = 3600
)

// BodyLimit returns the upload limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return DefaultBodyLimitMB * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// PresignExpiry returns the default presigned URL lifetime in seconds.
func (c Config) PresignExpiry() int {
	if c.PresignExpirySeconds <= 0 {
		return DefaultPresignExpirySeconds
	}
	return c.PresignExpirySeconds
}
