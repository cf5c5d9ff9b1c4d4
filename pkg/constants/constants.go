// Package constants provides shared constants for the rate-converter application.
package constants

// Conversion constants
const (
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DisplayDecimals is the number of decimals shown for a converted percentage
	DisplayDecimals = 4
)

// Form field names accepted by the web form and the JSON API.
const (
	FieldValue             = "valor"
	FieldOriginType        = "origen_tipo"
	FieldOriginPeriod      = "origen_periodo"
	FieldOriginTiming      = "tipo_tiempo_origen"
	FieldDestinationType   = "destino_tipo"
	FieldDestinationPeriod = "destino_periodo"
	FieldDestinationTiming = "tipo_tiempo_destino"

	// FieldSharedTiming is the single timing field of the legacy form. It fills
	// whichever of the origin/destination timings is missing.
	FieldSharedTiming = "tipo_tiempo"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "RATECONV"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum accepted request body (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultReadTimeout is the default HTTP read timeout
	DefaultReadTimeout = "10s"

	// DefaultWriteTimeout is the default HTTP write timeout
	DefaultWriteTimeout = "10s"

	// DefaultShutdownTimeout bounds graceful shutdown
	DefaultShutdownTimeout = "15s"
)

// Rate limiting defaults
const (
	// DefaultRequestsPerSecond is the sustained per-client request rate
	DefaultRequestsPerSecond = 5.0

	// DefaultBurst is the per-client burst size
	DefaultBurst = 20

	// DefaultLimiterIdleTTL is how long an idle client limiter is retained
	DefaultLimiterIdleTTL = "15m"
)

// Logging defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)
