package media

// Meta is the display record advertised in catalog and meta responses.
type Meta struct {
	ID     string   `json:"id" jsonschema:"description=Composite identifier (tmdb:<id>)"`
	Type   Category `json:"type" jsonschema:"enum=movie,enum=series"`
	Name   string   `json:"name"`
	Poster string   `json:"poster,omitempty" jsonschema:"format=uri"`
}

// Stream is a single playable link.
type Stream struct {
	URL   string `json:"url" jsonschema:"format=uri"`
	Title string `json:"title"`
	Name  string `json:"name"`
}
