package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vixstremio/vixstremio/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("ConfigFile()", func() {
			So(filepath.Base(ConfigFile()), ShouldEqual, "vixstremio.toml")
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override variable", func() {
			custom := filepath.Join(os.TempDir(), "vixstremio-test-config")
			So(os.Setenv(EnvConfigPath, custom), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, custom)
			So(lo.Must(filesystem.API().IsDir(custom)), ShouldBeTrue)
		})
	})
}
