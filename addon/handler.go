package addon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/mo"
	logrus "github.com/sirupsen/logrus"
	"github.com/vixstremio/vixstremio/log"
	"github.com/vixstremio/vixstremio/media"
)

// Cataloger builds the display list of a category.
type Cataloger interface {
	Catalog(ctx context.Context, category media.Category, limit int) []*media.Meta
}

// Resolver looks up a single title.
type Resolver interface {
	Lookup(ctx context.Context, externalID string, category media.Category) mo.Option[*media.Meta]
}

// Linker synthesizes the playable link of a composite id.
type Linker interface {
	Link(compositeID string, category media.Category) mo.Option[*media.Stream]
}

// Handler serves the addon resources.
type Handler struct {
	manifest *Manifest
	catalog  Cataloger
	resolver Resolver
	player   Linker
}

// NewHandler builds a Handler around the three domain components.
func NewHandler(catalog Cataloger, resolver Resolver, player Linker) *Handler {
	return &Handler{
		manifest: NewManifest(),
		catalog:  catalog,
		resolver: resolver,
		player:   player,
	}
}

// Routes returns the addon router wrapped with CORS and request logging.
func (h *Handler) Routes() http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /manifest.json", h.Manifest)
	router.HandleFunc("GET /catalog/{type}/{file}", h.Catalog)
	router.HandleFunc("GET /catalog/{type}/{id}/{file}", h.Catalog)
	router.HandleFunc("GET /meta/{type}/{file}", h.Meta)
	router.HandleFunc("GET /stream/{type}/{file}", h.Stream)

	return withLogging(withCORS(router))
}

// Manifest handles GET /manifest.json
func (h *Handler) Manifest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manifest)
}

// Catalog handles GET /catalog/{type}/{id}.json and GET /catalog/{type}/{id}/{extra}.json
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	catalogID, extra := r.PathValue("id"), ""
	if catalogID == "" {
		id, ok := trimJSON(r.PathValue("file"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		catalogID = id
	} else {
		raw, ok := trimJSON(r.PathValue("file"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		extra = raw
	}

	category, ok := media.ParseCategory(r.PathValue("type"))
	if !ok || !h.manifest.Serves(category, catalogID) {
		log.Fields(logrus.Fields{"category": r.PathValue("type"), "catalog": catalogID}).Warn("unknown catalog requested")
		writeJSON(w, http.StatusOK, CatalogResponse{Metas: []*media.Meta{}})
		return
	}

	if extra != "" {
		// search and genre are advertised but the listing has no way to filter by them
		if args, err := url.ParseQuery(extra); err == nil {
			log.Fields(logrus.Fields{"catalog": catalogID, "search": args.Get("search"), "genre": args.Get("genre")}).Debug("catalog extra ignored")
		}
	}

	// Dispatched resolutions finish even if the client goes away.
	metas := h.catalog.Catalog(context.WithoutCancel(r.Context()), category, 0)
	writeJSON(w, http.StatusOK, CatalogResponse{Metas: metas})
}

// Meta handles GET /meta/{type}/{id}.json
func (h *Handler) Meta(w http.ResponseWriter, r *http.Request) {
	id, ok := trimJSON(r.PathValue("file"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	category, ok := media.ParseCategory(r.PathValue("type"))
	if !ok {
		writeJSON(w, http.StatusOK, MetaResponse{})
		return
	}

	external, ok := media.LookupExternal(id).Get()
	if !ok {
		log.Fields(logrus.Fields{"id": id, "category": category, "reason": "shape"}).Warn("malformed meta id")
		writeJSON(w, http.StatusOK, MetaResponse{})
		return
	}

	meta := h.resolver.Lookup(r.Context(), external, category)
	writeJSON(w, http.StatusOK, MetaResponse{Meta: meta.OrEmpty()})
}

// Stream handles GET /stream/{type}/{id}.json
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	id, ok := trimJSON(r.PathValue("file"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	streams := []*media.Stream{}
	category, ok := media.ParseCategory(r.PathValue("type"))
	if ok {
		if stream, found := h.player.Link(id, category).Get(); found {
			streams = append(streams, stream)
		}
	}

	log.Fields(logrus.Fields{"id": id, "category": r.PathValue("type"), "streams": len(streams)}).Info("stream request")
	writeJSON(w, http.StatusOK, StreamResponse{Streams: streams})
}

func trimJSON(file string) (string, bool) {
	name, ok := strings.CutSuffix(file, ".json")
	return name, ok && name != ""
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Fields(logrus.Fields{"error": err.Error()}).Error("write response")
	}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Fields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Debug("request served")
	})
}
