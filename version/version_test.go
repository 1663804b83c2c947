package version

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NathanPERIER/plexmedia-downloader/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		Convey("Newer majors, minors and patches win", func() {
			So(must(Compare("1.0.0", "0.9.9")), ShouldEqual, 1)
			So(must(Compare("0.3.1", "0.3.0")), ShouldEqual, 1)
			So(must(Compare("v0.2.0", "0.3.0")), ShouldEqual, -1)
			So(must(Compare("0.3.0", "v0.3.0")), ShouldEqual, 0)
		})

		Convey("Garbage is an error", func() {
			_, err := Compare("latest", "0.3.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		calls := 0
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			fmt.Fprint(w, `{"tag_name":"v1.2.3"}`)
		}))
		defer ts.Close()

		previous := releasesURL
		releasesURL = ts.URL
		Reset(func() { releasesURL = previous })

		Convey("The tag is returned without its prefix and cached", func() {
			latest, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(latest, ShouldEqual, "1.2.3")

			again, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(again, ShouldEqual, "1.2.3")
			So(calls, ShouldEqual, 1)
		})
	})
}

func must(v int, err error) int {
	if err != nil {
		panic(err)
	}
	return v
}
