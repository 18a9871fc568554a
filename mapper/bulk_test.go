package mapper

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/oxrcfg/oxrcfg/constant"
	"github.com/oxrcfg/oxrcfg/filesystem"
	"github.com/oxrcfg/oxrcfg/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestExport(t *testing.T) {
	Convey("Export maps labels and keeps raw values", t, func() {
		m, _ := fixture()

		exported, err := m.Export(module)
		So(err, ShouldBeNil)
		So(exported["scaling_type"], ShouldEqual, "FSR")
		So(exported["turbo"], ShouldEqual, "Off")
		So(exported["motion_reprojection_rate"], ShouldEqual, "Off")
		So(exported["scaling"], ShouldEqual, int64(70))
		So(exported["runtime"], ShouldEqual, "WMR")
	})

	Convey("Export fails in strict mode on unknown codes", t, func() {
		m, _ := fixture()
		m.Strict = true

		_, err := m.Export(module)
		So(errors.Is(err, ErrUnknownCode), ShouldBeTrue)
	})
}

func TestApply(t *testing.T) {
	Convey("Given a bulk file with a bogus attribute", t, func() {
		m, mem := fixture()

		report := m.Apply(module, map[string]any{
			"turbo":      "On",
			"bogus_attr": "x",
		})

		Convey("The valid entry is written as its code", func() {
			So(report.Applied, ShouldResemble, []string{"turbo"})
			So(stored(mem, "turbo").Data, ShouldEqual, int64(1))
			So(mem.Writes(), ShouldEqual, 1)
		})

		Convey("The bogus entry is reported", func() {
			So(report.Failed, ShouldHaveLength, 1)
			So(errors.Is(report.Failed["bogus_attr"], ErrAttributeNotFound), ShouldBeTrue)
		})
	})

	Convey("Numbers read from JSON are applied to numeric attributes", t, func() {
		m, mem := fixture()

		report := m.Apply(module, map[string]any{"scaling": float64(80), "turbo": float64(1)})
		So(report.Applied, ShouldResemble, []string{"scaling"})
		So(report.Failed["turbo"], ShouldHaveSameTypeAs, &InvalidValueError{})
		So(stored(mem, "scaling").Data, ShouldEqual, int64(80))
	})
}

func TestFiles(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		Convey("SaveConfig then ReadFromFile round-trips", func() {
			cfg := map[string]any{"scaling_type": "FSR", "runtime": "WMR", "turbo": "On"}
			So(SaveConfig("/exports/dcs.json", cfg), ShouldBeNil)

			read, err := ReadFromFile("/exports/dcs.json")
			So(err, ShouldBeNil)
			So(read, ShouldResemble, cfg)
		})

		Convey("SaveConfig indents by two spaces and overwrites", func() {
			So(SaveConfig("/a.json", map[string]any{"turbo": "Off"}), ShouldBeNil)
			So(SaveConfig("/a.json", map[string]any{"turbo": "On"}), ShouldBeNil)

			data, err := filesystem.API().ReadFile("/a.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "{\n  \"turbo\": \"On\"\n}\n")
		})

		Convey("Malformed content is reported", func() {
			So(filesystem.API().WriteFile("/bad.json", []byte("{turbo"), 0o644), ShouldBeNil)
			_, err := ReadFromFile("/bad.json")
			So(errors.Is(err, ErrMalformedFile), ShouldBeTrue)
		})

		Convey("A JSON value that is not an object is malformed", func() {
			So(filesystem.API().WriteFile("/null.json", []byte("null"), 0o644), ShouldBeNil)
			_, err := ReadFromFile("/null.json")
			So(errors.Is(err, ErrMalformedFile), ShouldBeTrue)
		})

		Convey("Large raw integers survive export, save, read and apply", func() {
			m, mem := fixture()
			mem.Put(store.Join(constant.RootPath, module),
				store.Value{Name: "stamp", Type: store.TypeQWord, Data: int64(9007199254740993)},
			)

			exported, err := m.Export(module)
			So(err, ShouldBeNil)
			So(SaveConfig("/exports/stamp.json", map[string]any{"stamp": exported["stamp"]}), ShouldBeNil)

			read, err := ReadFromFile("/exports/stamp.json")
			So(err, ShouldBeNil)
			So(read["stamp"], ShouldEqual, json.Number("9007199254740993"))

			report := m.Apply(module, read)
			So(report.Failed, ShouldBeEmpty)
			So(report.Applied, ShouldResemble, []string{"stamp"})
			So(stored(mem, "stamp").Data, ShouldEqual, int64(9007199254740993))
		})

		Convey("Trailing content after the object is malformed", func() {
			So(filesystem.API().WriteFile("/trailing.json", []byte(`{"turbo": "On"} x`), 0o644), ShouldBeNil)
			_, err := ReadFromFile("/trailing.json")
			So(errors.Is(err, ErrMalformedFile), ShouldBeTrue)
		})

		Convey("A missing file is not malformed", func() {
			_, err := ReadFromFile("/missing.json")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrMalformedFile), ShouldBeFalse)
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("Schema lists every mapped attribute", t, func() {
		schema := Schema()
		So(schema.Type, ShouldEqual, "object")

		prop, ok := schema.Properties.Get("scaling_type")
		So(ok, ShouldBeTrue)
		So(prop.Enum, ShouldResemble, []any{"Off", "NIS", "FSR", "CAS"})

		_, ok = schema.Properties.Get("runtime")
		So(ok, ShouldBeFalse)
		So(schema.Properties.Len(), ShouldEqual, 16)
	})
}

func TestFileBackedMapper(t *testing.T) {
	Convey("The mapper works over the file store", t, func() {
		filesystem.SetMemMapFs()
		_, mem := fixture()
		file := store.NewFile("/store.json")
		So(file.Import(mem), ShouldBeNil)

		m := New(file, constant.RootPath)
		So(m.SetValue(module, "scaling_type", "NIS"), ShouldBeNil)

		exported, err := m.Export(module)
		So(err, ShouldBeNil)
		So(exported["scaling_type"], ShouldEqual, "NIS")
	})
}
