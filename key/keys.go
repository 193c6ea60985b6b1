// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Metadata Provider - these keys configure the TMDB detail lookups.
const (
	TMDBApiKey     = "tmdb.api_key"
	TMDBURL        = "tmdb.url"
	TMDBImageURL   = "tmdb.image_url"
	TMDBPosterSize = "tmdb.poster_size"
	TMDBLanguage   = "tmdb.language"
	TMDBRateLimit  = "tmdb.rate_limit"
)

// Source-List Provider and Player - these keys configure the VixSrc listing and embed links.
const (
	VixsrcURL            = "vixsrc.url"
	VixsrcLang           = "vixsrc.lang"
	VixsrcPrimaryColor   = "vixsrc.primary_color"
	VixsrcSecondaryColor = "vixsrc.secondary_color"
	VixsrcAutoplay       = "vixsrc.autoplay"
)

// Catalog Aggregation - these keys bound the size of served catalogs.
const (
	CatalogLimit = "catalog.limit"
)

// Addon Server - these keys define where the protocol endpoint listens.
const (
	ServerHost = "server.host"
	ServerPort = "server.port"
)

// Outbound Network - these keys tune the shared upstream HTTP client.
const (
	NetworkUserAgent      = "network.user_agent"
	NetworkTimeout        = "network.timeout"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output.
const (
	CliColored   = "cli.colored"
	IconsVariant = "icons.variant"
)
