package config

import "time"

// Server
const (
	ServerReadTimeout    = 15 * time.Second
	ServerWriteTimeout   = 30 * time.Second
	ServerIdleTimeout    = 60 * time.Second
	ServerMaxHeaderBytes = 1 << 20
	ShutdownTimeout      = 10 * time.Second
)

// Logging
const (
	LogFilePrefix  = "site-"
	LogFilePattern = "site-%s.log" // %s = YYYY-MM-DD
	LogMaxAgeDays  = 30
)

// Static assets
const (
	StaticPrefix        = "/static/"
	CacheControlAsset   = "public, max-age=86400"
	CacheControlNoCache = "no-cache"
)

// Export
const (
	ExportDir          = "./public"
	ExportNotFoundFile = "404.html"
)
