package constant

// Addon manifest identifiers.
const (
	AddonID          = "org.vixsrc.stremioaddon"
	AddonName        = "VixSrc API Addon"
	AddonDescription = "Addon che integra i contenuti VixSrc usando gli ID TMDB."

	MovieCatalogID    = "vixsrc_movies_recent"
	MovieCatalogName  = "VixSrc Film Recenti"
	SeriesCatalogID   = "vixsrc_series_recent"
	SeriesCatalogName = "VixSrc Serie TV Recenti"
)

// IDNamespace prefixes every composite identifier served by the addon.
const IDNamespace = "tmdb"

// Stream labels shown by the client for the synthesized embed link.
const (
	StreamTitle = "VixSrc Embed Player"
	StreamName  = "VixSrc"
)
