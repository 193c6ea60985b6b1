// Package addon exposes the catalog, meta and stream resources over the Stremio addon HTTP protocol.
package addon

import (
	"github.com/samber/lo"
	"github.com/vixstremio/vixstremio/constant"
	"github.com/vixstremio/vixstremio/media"
)

// Extra is an optional catalog argument advertised to clients.
type Extra struct {
	Name string `json:"name"`
}

// Catalog describes one catalog the addon serves.
type Catalog struct {
	Type  media.Category `json:"type" jsonschema:"enum=movie,enum=series"`
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Extra []Extra        `json:"extra,omitempty"`
}

// Manifest is served at /manifest.json.
type Manifest struct {
	ID          string           `json:"id"`
	Version     string           `json:"version"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Resources   []string         `json:"resources"`
	Types       []media.Category `json:"types"`
	IDPrefixes  []string         `json:"idPrefixes"`
	Catalogs    []Catalog        `json:"catalogs"`
}

// CatalogResponse is the body of a catalog request.
type CatalogResponse struct {
	Metas []*media.Meta `json:"metas"`
}

// StreamResponse is the body of a stream request.
type StreamResponse struct {
	Streams []*media.Stream `json:"streams"`
}

// MetaResponse is the body of a meta request. Meta is null when the title cannot be resolved.
type MetaResponse struct {
	Meta *media.Meta `json:"meta"`
}

// NewManifest returns the addon manifest.
func NewManifest() *Manifest {
	extra := []Extra{{Name: "search"}, {Name: "genre"}}

	return &Manifest{
		ID:          constant.AddonID,
		Version:     constant.Version,
		Name:        constant.AddonName,
		Description: constant.AddonDescription,
		Resources:   []string{"catalog", "meta", "stream"},
		Types:       media.Categories(),
		IDPrefixes:  []string{constant.IDNamespace},
		Catalogs: []Catalog{
			{Type: media.CategoryMovie, ID: constant.MovieCatalogID, Name: constant.MovieCatalogName, Extra: extra},
			{Type: media.CategorySeries, ID: constant.SeriesCatalogID, Name: constant.SeriesCatalogName, Extra: extra},
		},
	}
}

// Serves reports whether the manifest declares a catalog with this type and id.
func (m *Manifest) Serves(category media.Category, catalogID string) bool {
	return lo.ContainsBy(m.Catalogs, func(c Catalog) bool {
		return c.Type == category && c.ID == catalogID
	})
}
