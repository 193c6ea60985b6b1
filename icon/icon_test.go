package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/key"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		defer viper.Reset()
		target := Success

		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					So(Get(target), ShouldNotBeEmpty)
				})
			}
		})

		Convey("Plain variant stays ASCII-friendly", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Fail), ShouldEqual, "✗")
			So(Get(Link), ShouldEqual, "->")
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(target), ShouldBeEmpty)
		})

		Convey("It returns empty for an unregistered icon", func() {
			viper.Set(key.IconsVariant, "emoji")
			So(Get(Icon(99)), ShouldBeEmpty)
		})
	})
}
