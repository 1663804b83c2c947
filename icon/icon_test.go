package icon

import (
	"testing"

	"github.com/NathanPERIER/plexmedia-downloader/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		Convey("It renders for each variant", func() {
			for i := Success; i <= Unsupported; i++ {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})

		Convey("Emoji are returned untinted", func() {
			viper.Set(key.IconsVariant, emoji)
			So(Get(Download), ShouldEqual, "📥")
		})

		Convey("An unknown variant falls back to plain", func() {
			viper.Set(key.IconsVariant, "kaomoji")
			fallback := Get(Success)
			viper.Set(key.IconsVariant, plain)
			So(fallback, ShouldEqual, Get(Success))
		})

		Convey("An unregistered icon renders empty", func() {
			So(Get(Icon(99)), ShouldBeEmpty)
		})
	})
}
