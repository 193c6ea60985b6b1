package vixsrc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vixstremio/vixstremio/media"
)

func TestListerIDs(t *testing.T) {
	Convey("Given a fake VixSrc listing", t, func() {
		var lastPath, lastQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastPath = r.URL.Path
			lastQuery = r.URL.RawQuery

			switch r.URL.Path {
			case "/api/list/movie":
				_, _ = w.Write([]byte(`[{"tmdb_id":603},{"tmdb_id":"27205"},{"title":"no id"},null,{"tmdb_id":null},{"tmdb_id":""},{"tmdb_id":0},{"tmdb_id":603}]`))
			case "/api/list/tv":
				_, _ = w.Write([]byte(`{"unexpected":"object"}`))
			default:
				w.WriteHeader(http.StatusBadGateway)
			}
		}))
		defer server.Close()

		lister := NewLister(server.Client(), server.URL+"/", "it")

		Convey("Ids keep provider order, duplicates and both encodings", func() {
			ids, err := lister.IDs(context.Background(), media.CategoryMovie)
			So(err, ShouldBeNil)
			So(ids, ShouldResemble, []string{"603", "27205", "603"})
			So(lastPath, ShouldEqual, "/api/list/movie")
			So(lastQuery, ShouldEqual, "lang=it")
		})

		Convey("A body that is not an array is a ParseError", func() {
			_, err := lister.IDs(context.Background(), media.CategorySeries)
			So(lastPath, ShouldEqual, "/api/list/tv")
			var parse *ParseError
			So(errors.As(err, &parse), ShouldBeTrue)
		})
	})

	Convey("A non-2xx answer is a StatusError", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := NewLister(server.Client(), server.URL, "it").IDs(context.Background(), media.CategoryMovie)
		var status *StatusError
		So(errors.As(err, &status), ShouldBeTrue)
		So(status.StatusCode, ShouldEqual, http.StatusServiceUnavailable)
	})

	Convey("An unreachable provider is a TransportError", t, func() {
		server := httptest.NewServer(http.NotFoundHandler())
		lister := NewLister(server.Client(), server.URL, "it")
		server.Close()

		_, err := lister.IDs(context.Background(), media.CategoryMovie)
		var transport *TransportError
		So(errors.As(err, &transport), ShouldBeTrue)
	})
}

func TestPlayerLink(t *testing.T) {
	Convey("Given the default player theme", t, func() {
		player := NewPlayer("https://vixsrc.to/", Theme{
			PrimaryColor:   "B20710",
			SecondaryColor: "170000",
			Lang:           "it",
			Autoplay:       true,
		})
		const suffix = "?primaryColor=B20710&secondaryColor=170000&lang=it&autoplay=true"

		Convey("A movie id yields one movie stream", func() {
			stream := player.Link("tmdb:603", media.CategoryMovie).MustGet()
			So(stream.URL, ShouldEqual, "https://vixsrc.to/movie/603"+suffix)
			So(stream.Title, ShouldEqual, "VixSrc Embed Player")
			So(stream.Name, ShouldEqual, "VixSrc")
		})

		Convey("An episode id yields one tv stream", func() {
			stream := player.Link("tmdb:1399:1:3", media.CategorySeries).MustGet()
			So(stream.URL, ShouldEqual, "https://vixsrc.to/tv/1399/1/3"+suffix)
		})

		Convey("Shape mismatches yield nothing", func() {
			So(player.Link("tmdb:1399", media.CategorySeries).IsPresent(), ShouldBeFalse)
			So(player.Link("tmdb:1399:1", media.CategorySeries).IsPresent(), ShouldBeFalse)
			So(player.Link("tmdb:1399:a:b", media.CategorySeries).IsPresent(), ShouldBeFalse)
			So(player.Link("tmdb:", media.CategoryMovie).IsPresent(), ShouldBeFalse)
		})

		Convey("Links are deterministic", func() {
			first := player.Link("tmdb:1399:2:5", media.CategorySeries).MustGet()
			second := player.Link("tmdb:1399:2:5", media.CategorySeries).MustGet()
			So(first, ShouldResemble, second)
		})
	})

	Convey("Autoplay off is rendered in place", t, func() {
		player := NewPlayer("https://vixsrc.to", Theme{PrimaryColor: "000000", SecondaryColor: "FFFFFF", Lang: "en"})
		So(player.Link("tmdb:1", media.CategoryMovie).MustGet().URL, ShouldEqual,
			"https://vixsrc.to/movie/1?primaryColor=000000&secondaryColor=FFFFFF&lang=en&autoplay=false")
	})
}

func TestListerOddIDs(t *testing.T) {
	Convey("Entries whose id is neither a number nor a string are dropped alone", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"tmdb_id":603},{"tmdb_id":true},{"tmdb_id":{}},{"tmdb_id":[1]},{"tmdb_id":-4},{"tmdb_id":27205}]`))
		}))
		defer server.Close()

		ids, err := NewLister(server.Client(), server.URL, "it").IDs(context.Background(), media.CategoryMovie)
		So(err, ShouldBeNil)
		So(ids, ShouldResemble, []string{"603", "-4", "27205"})
	})
}
