package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a folder to open", t, func() {
		Convey("Linux uses xdg-open", func() {
			cmd, ok := command(linux, "/media/Dark")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", "/media/Dark"})
		})

		Convey("macOS uses open", func() {
			cmd, ok := command(darwin, "/media/Dark")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", "/media/Dark"})
		})

		Convey("Unknown systems are refused", func() {
			_, ok := command("plan9", "/media/Dark")
			So(ok, ShouldBeFalse)
		})
	})
}
