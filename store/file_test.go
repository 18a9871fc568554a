package store

import (
	"errors"
	"testing"

	"github.com/oxrcfg/oxrcfg/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFile(t *testing.T) {
	Convey("Given a file store on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		f := NewFile("/cfg/store.json")

		Convey("Opening before the document exists is ErrNotExist", func() {
			_, err := f.Open(`SOFTWARE`, Read)
			So(errors.Is(err, ErrNotExist), ShouldBeTrue)
		})

		Convey("After import", func() {
			So(f.Import(seeded()), ShouldBeNil)

			Convey("Modules enumerate", func() {
				k, err := f.Open(`SOFTWARE\OpenXR_Toolkit`, Read)
				So(err, ShouldBeNil)
				defer k.Close()

				names, err := SubKeys(k)
				So(err, ShouldBeNil)
				So(names, ShouldResemble, []string{"DCS World", "MSFS"})
			})

			Convey("Types survive the document", func() {
				k, _ := f.Open(`SOFTWARE\OpenXR_Toolkit\DCS World`, Read)
				defer k.Close()

				values, err := Values(k)
				So(err, ShouldBeNil)
				So(values, ShouldResemble, []Value{
					{Name: "scaling_type", Type: TypeDWord, Data: int64(2)},
					{Name: "runtime", Type: TypeString, Data: "WMR"},
				})
			})

			Convey("Writes persist for later handles", func() {
				k, err := f.Open(`SOFTWARE\OpenXR_Toolkit\DCS World`, Write)
				So(err, ShouldBeNil)
				So(k.SetValue("scaling_type", TypeDWord, int64(1)), ShouldBeNil)
				So(k.Close(), ShouldBeNil)

				again := NewFile("/cfg/store.json")
				k, _ = again.Open(`SOFTWARE\OpenXR_Toolkit\DCS World`, Read)
				defer k.Close()
				values, _ := Values(k)
				So(values[0].Data, ShouldEqual, int64(1))
			})

			Convey("Read handles cannot write", func() {
				k, _ := f.Open(`SOFTWARE\OpenXR_Toolkit\DCS World`, Read)
				defer k.Close()
				So(errors.Is(k.SetValue("runtime", TypeString, "x"), ErrAccessDenied), ShouldBeTrue)
			})
		})
	})
}
