package addon

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vixstremio/vixstremio/media"
	"github.com/vixstremio/vixstremio/vixsrc"
)

type fakeCatalog struct {
	calls   []media.Category
	ctxErrs []error
}

func (f *fakeCatalog) Catalog(ctx context.Context, category media.Category, _ int) []*media.Meta {
	f.calls = append(f.calls, category)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	return []*media.Meta{{ID: "tmdb:603", Type: category, Name: "Matrix"}}
}

type fakeResolver struct{}

func (fakeResolver) Lookup(_ context.Context, externalID string, category media.Category) mo.Option[*media.Meta] {
	if externalID != "603" {
		return mo.None[*media.Meta]()
	}
	return mo.Some(&media.Meta{ID: "tmdb:603", Type: category, Name: "Matrix"})
}

func get(server *httptest.Server, path string, into any) *http.Response {
	resp, err := server.Client().Get(server.URL + path)
	So(err, ShouldBeNil)
	defer resp.Body.Close()
	if into != nil {
		So(json.NewDecoder(resp.Body).Decode(into), ShouldBeNil)
	}
	return resp
}

func TestHandler(t *testing.T) {
	Convey("Given the addon router", t, func() {
		catalog := &fakeCatalog{}
		player := vixsrc.NewPlayer("https://vixsrc.to", vixsrc.Theme{PrimaryColor: "B20710", SecondaryColor: "170000", Lang: "it", Autoplay: true})
		server := httptest.NewServer(NewHandler(catalog, fakeResolver{}, player).Routes())
		defer server.Close()

		Convey("The manifest advertises both catalogs", func() {
			var manifest Manifest
			resp := get(server, "/manifest.json", &manifest)
			So(resp.Header.Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
			So(resp.Header.Get("Content-Type"), ShouldStartWith, "application/json")
			So(manifest.ID, ShouldEqual, "org.vixsrc.stremioaddon")
			So(manifest.IDPrefixes, ShouldResemble, []string{"tmdb"})
			So(manifest.Catalogs, ShouldHaveLength, 2)
			So(manifest.Catalogs[1].ID, ShouldEqual, "vixsrc_series_recent")
			So(manifest.Catalogs[1].Extra, ShouldResemble, []Extra{{Name: "search"}, {Name: "genre"}})
		})

		Convey("A known catalog is aggregated", func() {
			var body CatalogResponse
			get(server, "/catalog/movie/vixsrc_movies_recent.json", &body)
			So(body.Metas, ShouldHaveLength, 1)
			So(catalog.calls, ShouldResemble, []media.Category{media.CategoryMovie})
		})

		Convey("Catalog extras are accepted and ignored", func() {
			var body CatalogResponse
			get(server, "/catalog/series/vixsrc_series_recent/search=trono&genre=Drama.json", &body)
			So(body.Metas, ShouldHaveLength, 1)
			So(catalog.calls, ShouldResemble, []media.Category{media.CategorySeries})
		})

		Convey("Unknown catalogs answer an empty list", func() {
			var raw map[string]json.RawMessage
			get(server, "/catalog/series/vixsrc_movies_recent.json", &raw)
			So(string(raw["metas"]), ShouldEqual, "[]")
			So(catalog.calls, ShouldBeEmpty)
		})

		Convey("A movie stream is synthesized", func() {
			var body StreamResponse
			get(server, "/stream/movie/tmdb:603.json", &body)
			So(body.Streams, ShouldHaveLength, 1)
			So(body.Streams[0].URL, ShouldEqual, "https://vixsrc.to/movie/603?primaryColor=B20710&secondaryColor=170000&lang=it&autoplay=true")
			So(body.Streams[0].Name, ShouldEqual, "VixSrc")
		})

		Convey("An episode stream is synthesized", func() {
			var body StreamResponse
			get(server, "/stream/series/tmdb:1399:1:2.json", &body)
			So(body.Streams, ShouldHaveLength, 1)
			So(body.Streams[0].URL, ShouldStartWith, "https://vixsrc.to/tv/1399/1/2?")
		})

		Convey("Malformed stream ids answer an empty list", func() {
			var raw map[string]json.RawMessage
			get(server, "/stream/series/tmdb:1399.json", &raw)
			So(string(raw["streams"]), ShouldEqual, "[]")
		})

		Convey("Meta resolves the first two parts of the id", func() {
			var body MetaResponse
			get(server, "/meta/series/tmdb:603:1:1.json", &body)
			So(body.Meta, ShouldNotBeNil)
			So(body.Meta.Name, ShouldEqual, "Matrix")
		})

		Convey("Unresolvable meta is null", func() {
			var raw map[string]json.RawMessage
			get(server, "/meta/movie/tmdb:1.json", &raw)
			So(string(raw["meta"]), ShouldEqual, "null")
		})

		Convey("Paths without the json suffix are not found", func() {
			resp := get(server, "/stream/movie/tmdb:603", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("Health and preflight answer directly", func() {
			resp, err := server.Client().Get(server.URL + "/healthz")
			So(err, ShouldBeNil)
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			So(string(body), ShouldEqual, "ok")

			req, _ := http.NewRequest(http.MethodOptions, server.URL+"/manifest.json", nil)
			resp, err = server.Client().Do(req)
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNoContent)
			So(resp.Header.Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
		})
	})
}

func TestCatalogOutlivesClient(t *testing.T) {
	Convey("Given a request whose client already went away", t, func() {
		catalog := &fakeCatalog{}
		player := vixsrc.NewPlayer("https://vixsrc.to", vixsrc.Theme{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodGet, "/catalog/movie/vixsrc_movies_recent.json", nil).WithContext(ctx)
		rec := httptest.NewRecorder()

		NewHandler(catalog, fakeResolver{}, player).Routes().ServeHTTP(rec, req)

		Convey("The catalog still resolves with a live context", func() {
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(catalog.ctxErrs, ShouldHaveLength, 1)
			So(catalog.ctxErrs[0], ShouldBeNil)
		})
	})
}

func TestServe(t *testing.T) {
	Convey("Serve stops cleanly when its context ends", t, func() {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		So(err, ShouldBeNil)
		port := listener.Addr().(*net.TCPAddr).Port
		So(listener.Close(), ShouldBeNil)

		server := NewServer("127.0.0.1", port, http.NotFoundHandler())
		So(ManifestURL(port), ShouldEndWith, "/manifest.json")

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- Serve(ctx, server) }()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			So(err, ShouldBeNil)
		case <-time.After(5 * time.Second):
			So("serve did not return", ShouldBeEmpty)
		}
	})
}
