package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
	// DataFilePermissions is the permission for history files (rw-r--r--)
	DataFilePermissions = 0o644
)

// Timeout and duration constants
const (
	// DefaultHTTPClientTimeout is the timeout for provider requests
	DefaultHTTPClientTimeout = 10 * time.Second
	// DefaultDoctorTimeout bounds each doctor check
	DefaultDoctorTimeout = 5 * time.Second
)

// Limit constants
const (
	// DefaultLookupConcurrency is the number of parallel batch lookups
	DefaultLookupConcurrency = 4
	// MaxProviderResponseBytes caps how much of a provider body is read
	MaxProviderResponseBytes = 1 << 20
)

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
	// DefaultHistorySearchLimit is the default number of search results to return
	DefaultHistorySearchLimit = 50
	// DefaultRedisKey prefixes the redis history keys
	DefaultRedisKey = "findphone:history"
)

// Defaults for number formatting
const (
	// DefaultRegion is used to format numbers that lack a country code
	DefaultRegion = "US"
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
