package config

import "time"

const (
	DefaultHTTPPort        = "8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRequestTimeout  = 5 * time.Second
	DefaultHost            = "api.frankfurter.app"
	DefaultUserAgent       = "frankfurter-go/1.0"
	DefaultCatalogTTL      = 24 * time.Hour
	DefaultCatalogKey      = "frankfurter:currencies"
	DefaultRedisWait       = 10 * time.Second
)
