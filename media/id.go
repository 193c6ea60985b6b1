package media

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

const idSeparator = ":"

// Kind tags the shape a composite identifier was recognized as.
type Kind int

const (
	KindMalformed Kind = iota
	KindMovie
	KindEpisode
)

func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindEpisode:
		return "episode"
	default:
		return "malformed"
	}
}

// ID is a parsed composite identifier: "<namespace>:<external>" for a single work,
// "<namespace>:<external>:<season>:<episode>" for a series episode.
type ID struct {
	Kind      Kind
	Namespace string
	External  string
	Season    int
	Episode   int
}

// ParseID recognizes raw for playback of the given category.
//
// Movies need a non-empty external part; extra parts are ignored.
// Episodes need exactly four parts with positive decimal season and episode.
// Anything else is KindMalformed.
func ParseID(raw string, category Category) ID {
	parts := strings.Split(raw, idSeparator)
	if len(parts) < 2 || parts[1] == "" {
		return ID{Kind: KindMalformed}
	}

	switch category {
	case CategoryMovie:
		return ID{Kind: KindMovie, Namespace: parts[0], External: parts[1]}
	case CategorySeries:
		if len(parts) != 4 {
			return ID{Kind: KindMalformed}
		}
		season, ok := positive(parts[2])
		if !ok {
			return ID{Kind: KindMalformed}
		}
		episode, ok := positive(parts[3])
		if !ok {
			return ID{Kind: KindMalformed}
		}
		return ID{
			Kind:      KindEpisode,
			Namespace: parts[0],
			External:  parts[1],
			Season:    season,
			Episode:   episode,
		}
	default:
		return ID{Kind: KindMalformed}
	}
}

// LookupExternal extracts the external id from the first two parts of raw, whatever its category.
func LookupExternal(raw string) mo.Option[string] {
	parts := strings.Split(raw, idSeparator)
	if len(parts) < 2 || parts[1] == "" {
		return mo.None[string]()
	}
	return mo.Some(parts[1])
}

// CompositeID builds the two-part identifier advertised in catalogs.
func CompositeID(namespace, external string) string {
	return namespace + idSeparator + external
}

func (id ID) String() string {
	switch id.Kind {
	case KindMovie:
		return CompositeID(id.Namespace, id.External)
	case KindEpisode:
		return fmt.Sprintf("%s:%s:%d:%d", id.Namespace, id.External, id.Season, id.Episode)
	default:
		return ""
	}
}

func positive(s string) (int, bool) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
