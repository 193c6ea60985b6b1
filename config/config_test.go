package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/filesystem"
	"github.com/vixstremio/vixstremio/key"
	"github.com/vixstremio/vixstremio/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		viper.Reset()

		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name, field := range Default {
				So(viper.Get(name), ShouldEqual, field.Value)
			}
			So(viper.GetInt(key.CatalogLimit), ShouldEqual, 200)
			So(viper.GetInt(key.ServerPort), ShouldEqual, 7000)
		})

		Convey("Should honour the legacy environment names", func() {
			So(os.Setenv("TMDB_API_KEY", "legacy-key"), ShouldBeNil)
			So(os.Setenv("PORT", "8123"), ShouldBeNil)
			defer os.Unsetenv("TMDB_API_KEY")
			defer os.Unsetenv("PORT")

			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.TMDBApiKey), ShouldEqual, "legacy-key")
			So(viper.GetInt(key.ServerPort), ShouldEqual, 8123)
		})

		Convey("Prefixed variables win over aliases", func() {
			So(os.Setenv("TMDB_API_KEY", "legacy-key"), ShouldBeNil)
			So(os.Setenv("VIXSTREMIO_TMDB_API_KEY", "prefixed-key"), ShouldBeNil)
			defer os.Unsetenv("TMDB_API_KEY")
			defer os.Unsetenv("VIXSTREMIO_TMDB_API_KEY")

			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.TMDBApiKey), ShouldEqual, "prefixed-key")
		})

		Convey("Should read the TOML file from the config directory", func() {
			path := filepath.Join(where.Config(), "vixstremio.toml")
			So(filesystem.API().WriteFile(path, []byte("[catalog]\nlimit = 25\n"), 0o644), ShouldBeNil)
			defer filesystem.API().Remove(path)

			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.CatalogLimit), ShouldEqual, 25)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("tmdb.api_key"), ShouldEqual, "tmdb_api_key")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the tmdb.api_key field", t, func() {
		field := Default[key.TMDBApiKey]

		Convey("Env is prefixed with the app name", func() {
			So(field.Env(), ShouldEqual, "VIXSTREMIO_TMDB_API_KEY")
		})

		Convey("EnvNames lists the prefixed name before aliases", func() {
			So(field.EnvNames(), ShouldResemble, []string{"VIXSTREMIO_TMDB_API_KEY", "TMDB_API_KEY"})
		})

		Convey("Pretty mentions the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.TMDBApiKey)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse converts values to the default's type", t, func() {
		v, err := Parse(key.CatalogLimit, []string{"50"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 50)

		v, err = Parse(key.VixsrcAutoplay, []string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		v, err = Parse(key.VixsrcLang, []string{"en"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "en")

		_, err = Parse(key.ServerPort, []string{"seven"})
		So(err, ShouldNotBeNil)

		_, err = Parse("tmdb.nope", []string{"x"})
		So(err, ShouldNotBeNil)

		_, err = Parse(key.VixsrcLang, nil)
		So(err, ShouldNotBeNil)
	})
}

func TestRateLimitIsFractional(t *testing.T) {
	Convey("Given a fractional rate limit in the environment", t, func() {
		viper.Reset()
		defer viper.Reset()
		So(os.Setenv("VIXSTREMIO_TMDB_RATE_LIMIT", "0.5"), ShouldBeNil)
		defer os.Unsetenv("VIXSTREMIO_TMDB_RATE_LIMIT")

		So(Setup(), ShouldBeNil)
		So(viper.GetFloat64(key.TMDBRateLimit), ShouldEqual, 0.5)

		Convey("config set accepts fractions too", func() {
			v, err := Parse(key.TMDBRateLimit, []string{"0.25"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 0.25)

			_, err = Parse(key.TMDBRateLimit, []string{"fast"})
			So(err, ShouldNotBeNil)
		})

		Convey("the field reports its type", func() {
			field := Default[key.TMDBRateLimit]
			So(field.typeName(), ShouldEqual, "float64")
		})
	})
}

