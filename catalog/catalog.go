// Package catalog builds the display list of a category by joining the VixSrc listing with TMDB metadata.
package catalog

import (
	"context"
	"errors"

	"github.com/samber/lo"
	"github.com/samber/lo/parallel"
	"github.com/samber/mo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/key"
	"github.com/vixstremio/vixstremio/log"
	"github.com/vixstremio/vixstremio/media"
	"github.com/vixstremio/vixstremio/tmdb"
	"github.com/vixstremio/vixstremio/vixsrc"
)

// DefaultLimit caps how many listing ids are resolved per request when nothing else is configured.
const DefaultLimit = 200

// Lister yields the external ids of a category in provider order.
type Lister interface {
	IDs(ctx context.Context, category media.Category) ([]string, error)
}

// Resolver turns one external id into a display record.
type Resolver interface {
	Resolve(ctx context.Context, externalID string, category media.Category) mo.Result[*media.Meta]
}

// Aggregator fans out one resolution per listed id and joins the results.
type Aggregator struct {
	lister   Lister
	resolver Resolver
	limit    int
}

// New builds an Aggregator. A non-positive limit means DefaultLimit.
func New(lister Lister, resolver Resolver, limit int) *Aggregator {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Aggregator{lister: lister, resolver: resolver, limit: limit}
}

// FromConfig wires the VixSrc lister and the TMDB client from configuration.
func FromConfig() *Aggregator {
	return New(vixsrc.ListerFromConfig(), tmdb.New(tmdb.OptionsFromConfig()), viper.GetInt(key.CatalogLimit))
}

// Limit returns the default cap.
func (a *Aggregator) Limit() int {
	return a.limit
}

// Catalog returns the resolved records of category in listing order.
// A non-positive limit uses the aggregator's default. Failures never surface: an unreachable
// listing gives an empty list and unresolvable ids are left out.
func (a *Aggregator) Catalog(ctx context.Context, category media.Category, limit int) []*media.Meta {
	if limit <= 0 {
		limit = a.limit
	}

	ids, err := a.lister.IDs(ctx, category)
	if err != nil {
		logListingFailure(category, err)
		return []*media.Meta{}
	}

	if len(ids) > limit {
		ids = ids[:limit]
	}

	results := parallel.Map(ids, func(id string, _ int) mo.Result[*media.Meta] {
		return a.resolver.Resolve(ctx, id, category)
	})

	metas := lo.FilterMap(results, func(result mo.Result[*media.Meta], i int) (*media.Meta, bool) {
		meta, err := result.Get()
		if err != nil {
			tmdb.LogFailure(ids[i], category, err)
			return nil, false
		}
		return meta, meta != nil
	})

	log.Fields(logrus.Fields{
		"category": category,
		"listed":   len(ids),
		"resolved": len(metas),
	}).Info("catalog built")

	return metas
}

func logListingFailure(category media.Category, err error) {
	fields := logrus.Fields{"category": category, "error": err.Error()}

	var (
		status    *vixsrc.StatusError
		transport *vixsrc.TransportError
		parse     *vixsrc.ParseError
	)
	switch {
	case errors.As(err, &status):
		fields["reason"] = "status"
		fields["status"] = status.StatusCode
	case errors.As(err, &transport):
		fields["reason"] = "transport"
	case errors.As(err, &parse):
		fields["reason"] = "parse"
	}

	log.Fields(fields).Error("vixsrc listing failed")
}
