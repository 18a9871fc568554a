package mapper

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/oxrcfg/oxrcfg/constant"
	"github.com/oxrcfg/oxrcfg/domain"
	"github.com/oxrcfg/oxrcfg/store"
	. "github.com/smartystreets/goconvey/convey"
)

const module = "DCS World"

func fixture() (*Mapper, *store.Memory) {
	mem := store.NewMemory().
		Put(store.Join(constant.RootPath, module),
			store.Value{Name: "scaling_type", Type: store.TypeDWord, Data: 2},
			store.Value{Name: "turbo", Type: store.TypeDWord, Data: 0},
			store.Value{Name: "motion_reprojection_rate", Type: store.TypeDWord, Data: 1},
			store.Value{Name: "overlay", Type: store.TypeDWord, Data: 9},
			store.Value{Name: "scaling", Type: store.TypeDWord, Data: 70},
			store.Value{Name: "runtime", Type: store.TypeString, Data: "WMR"},
			store.Value{Name: "blob", Type: store.TypeBinary, Data: []byte{1}},
		).
		Put(store.Join(constant.RootPath, "MSFS"))

	return New(mem, constant.RootPath), mem
}

func stored(mem *store.Memory, name string) store.Value {
	k, err := mem.Open(store.Join(constant.RootPath, module), store.Read)
	So(err, ShouldBeNil)
	defer k.Close()

	values, err := store.Values(k)
	So(err, ShouldBeNil)
	for _, v := range values {
		if v.Name == name {
			return v
		}
	}
	return store.Value{}
}

func TestListModules(t *testing.T) {
	Convey("Given a store with two modules", t, func() {
		m, _ := fixture()

		Convey("ListModules returns them in store order", func() {
			modules, err := m.ListModules()
			So(err, ShouldBeNil)
			So(modules, ShouldResemble, []string{module, "MSFS"})
		})

		Convey("A missing root is reported", func() {
			_, err := New(store.NewMemory(), constant.RootPath).ListModules()
			So(errors.Is(err, store.ErrNotExist), ShouldBeTrue)
		})
	})
}

func TestModuleConfig(t *testing.T) {
	Convey("Given a module", t, func() {
		m, _ := fixture()

		Convey("ModuleConfig returns raw values", func() {
			values, err := m.ModuleConfig(module)
			So(err, ShouldBeNil)
			So(values, ShouldHaveLength, 7)
			So(values[0], ShouldResemble, store.Value{Name: "scaling_type", Type: store.TypeDWord, Data: int64(2)})
		})

		Convey("An unknown module is an error", func() {
			_, err := m.ModuleConfig("Half-Life: Alyx")
			So(errors.Is(err, store.ErrNotExist), ShouldBeTrue)
		})
	})
}

// rawTagStore puts a value with a tag outside the supported set first in every key.
type rawTagStore struct {
	*store.Memory
	extra store.Value
}

func (s rawTagStore) Open(path string, access store.Access) (store.Key, error) {
	k, err := s.Memory.Open(path, access)
	if err != nil {
		return nil, err
	}
	return rawTagKey{Key: k, extra: s.extra}, nil
}

type rawTagKey struct {
	store.Key
	extra store.Value
}

func (k rawTagKey) EnumValue(index int) (store.Value, error) {
	if index == 0 {
		return k.extra, nil
	}
	return k.Key.EnumValue(index - 1)
}

func TestRawTagValues(t *testing.T) {
	Convey("Given a module holding a REG_RESOURCE_LIST value", t, func() {
		_, mem := fixture()
		m := New(rawTagStore{
			Memory: mem,
			extra:  store.Value{Name: "resources", Type: store.ValueType(8), Data: []byte{0xde, 0xad}},
		}, constant.RootPath)

		Convey("The module stays readable", func() {
			values, err := m.ModuleConfig(module)
			So(err, ShouldBeNil)
			So(values, ShouldHaveLength, 8)

			exported, err := m.Export(module)
			So(err, ShouldBeNil)
			So(exported["scaling_type"], ShouldEqual, "FSR")
			So(exported["resources"], ShouldResemble, []byte{0xde, 0xad})
		})

		Convey("Other settings can still be written", func() {
			So(m.SetValue(module, "turbo", "On"), ShouldBeNil)
			So(stored(mem, "turbo").Data, ShouldEqual, int64(1))
		})

		Convey("The value itself is not writable", func() {
			err := m.SetModuleValue(module, "resources", "x")
			So(errors.Is(err, store.ErrUnsupportedType), ShouldBeTrue)
			So(mem.Writes(), ShouldEqual, 0)
		})
	})
}

func TestMapData(t *testing.T) {
	Convey("Given the mapper", t, func() {
		m, _ := fixture()

		Convey("scaling_type 2 maps to FSR", func() {
			values, err := m.ModuleConfig(module)
			So(err, ShouldBeNil)

			mapped, err := m.MapData(values[0])
			So(err, ShouldBeNil)
			So(mapped, ShouldResemble, store.Value{Name: "scaling_type", Type: store.TypeDWord, Data: "FSR"})
		})

		Convey("Every code of every mapped attribute decodes to its label", func() {
			for _, name := range domain.Attributes() {
				d, _ := domain.Lookup(name)
				for _, e := range d.Entries {
					mapped, err := m.MapData(store.Value{Name: name, Type: store.TypeDWord, Data: e.Code})
					So(err, ShouldBeNil)
					So(mapped.Data, ShouldEqual, e.Label)
				}
			}
		})

		Convey("Unmapped attributes pass through", func() {
			v := store.Value{Name: "runtime", Type: store.TypeString, Data: "WMR"}
			mapped, err := m.MapData(v)
			So(err, ShouldBeNil)
			So(mapped, ShouldResemble, v)
		})

		Convey("Unknown codes pass through by default", func() {
			v := store.Value{Name: "overlay", Type: store.TypeDWord, Data: int64(9)}
			mapped, err := m.MapData(v)
			So(err, ShouldBeNil)
			So(mapped.Data, ShouldEqual, int64(9))
		})

		Convey("Unknown codes fail in strict mode", func() {
			m.Strict = true
			_, err := m.MapData(store.Value{Name: "overlay", Type: store.TypeDWord, Data: int64(9)})
			So(errors.Is(err, ErrUnknownCode), ShouldBeTrue)
		})
	})
}

func TestOptions(t *testing.T) {
	Convey("Options", t, func() {
		m, _ := fixture()

		Convey("finds mapped attributes case-insensitively", func() {
			d, ok := m.Options("SCALING_TYPE")
			So(ok, ShouldBeTrue)
			So(d.Labels(), ShouldResemble, []string{"Off", "NIS", "FSR", "CAS"})
		})

		Convey("reports unknown attributes", func() {
			d, ok := m.Options("unknown_attr")
			So(ok, ShouldBeFalse)
			So(d, ShouldBeNil)
		})
	})
}

func TestSetValue(t *testing.T) {
	Convey("Given the mapper", t, func() {
		m, mem := fixture()

		Convey("An invalid label is rejected without writing", func() {
			err := m.SetValue(module, "scaling_type", "Nope")

			var invalid *InvalidValueError
			So(errors.As(err, &invalid), ShouldBeTrue)
			So(invalid.Valid, ShouldResemble, []string{"Off", "NIS", "FSR", "CAS"})
			So(err.Error(), ShouldContainSubstring, "Off, NIS, FSR, CAS")
			So(mem.Writes(), ShouldEqual, 0)
		})

		Convey("A valid label is written as its code", func() {
			So(m.SetValue(module, "scaling_type", "CAS"), ShouldBeNil)
			So(mem.Writes(), ShouldEqual, 1)
			So(stored(mem, "scaling_type"), ShouldResemble, store.Value{Name: "scaling_type", Type: store.TypeDWord, Data: int64(3)})
		})

		Convey("Codes that start at one are honoured", func() {
			So(m.SetValue(module, "motion_reprojection_rate", "R_30Hz"), ShouldBeNil)
			So(stored(mem, "motion_reprojection_rate").Data, ShouldEqual, int64(3))
		})

		Convey("Attribute case does not matter and the stored name is kept", func() {
			So(m.SetValue(module, "Turbo", "On"), ShouldBeNil)
			So(stored(mem, "turbo").Data, ShouldEqual, int64(1))
		})

		Convey("Labels are case-sensitive", func() {
			err := m.SetValue(module, "turbo", "on")
			So(err, ShouldHaveSameTypeAs, &InvalidValueError{})
		})

		Convey("Unmapped numeric attributes take integers", func() {
			So(m.SetValue(module, "scaling", "85"), ShouldBeNil)
			So(stored(mem, "scaling").Data, ShouldEqual, int64(85))
		})

		Convey("Unmapped numeric attributes refuse text", func() {
			err := m.SetValue(module, "scaling", "lots")
			So(errors.Is(err, ErrNotInteger), ShouldBeTrue)
			So(mem.Writes(), ShouldEqual, 0)
		})

		Convey("Text attributes keep their type", func() {
			So(m.SetValue(module, "runtime", "SteamVR"), ShouldBeNil)
			So(stored(mem, "runtime"), ShouldResemble, store.Value{Name: "runtime", Type: store.TypeString, Data: "SteamVR"})
		})
	})
}

func TestSetModuleValue(t *testing.T) {
	Convey("Given the mapper", t, func() {
		m, mem := fixture()

		Convey("An absent attribute is not found and nothing is written", func() {
			err := m.SetModuleValue(module, "bogus_attr", "x")
			So(errors.Is(err, ErrAttributeNotFound), ShouldBeTrue)
			So(mem.Writes(), ShouldEqual, 0)
		})

		Convey("An unknown module fails before writing", func() {
			err := m.SetModuleValue("nope", "turbo", 1)
			So(errors.Is(err, store.ErrNotExist), ShouldBeTrue)
		})

		Convey("Binary attributes are not writable", func() {
			err := m.SetModuleValue(module, "blob", "x")
			So(errors.Is(err, store.ErrUnsupportedType), ShouldBeTrue)
			So(mem.Writes(), ShouldEqual, 0)
		})

		Convey("Access faults surface", func() {
			mem.Deny(store.Join(constant.RootPath, module))
			err := m.SetModuleValue(module, "turbo", 1)
			So(errors.Is(err, store.ErrAccessDenied), ShouldBeTrue)
		})

		Convey("JSON numbers are accepted for numeric attributes", func() {
			So(m.SetModuleValue(module, "scaling", float64(60)), ShouldBeNil)
			So(stored(mem, "scaling").Data, ShouldEqual, int64(60))

			err := m.SetModuleValue(module, "scaling", 60.5)
			So(errors.Is(err, ErrNotInteger), ShouldBeTrue)
		})
	})
}

func TestToInteger(t *testing.T) {
	Convey("toInteger", t, func() {
		n, err := toInteger(" 42 ")
		So(err, ShouldBeNil)
		So(n, ShouldEqual, 42)

		n, err = toInteger(int64(7))
		So(err, ShouldBeNil)
		So(n, ShouldEqual, 7)

		_, err = toInteger("08x")
		So(errors.Is(err, ErrNotInteger), ShouldBeTrue)

		_, err = toInteger(true)
		So(errors.Is(err, ErrNotInteger), ShouldBeTrue)

		_, err = toInteger([]int{1})
		So(errors.Is(err, ErrNotInteger), ShouldBeTrue)

		n, err = toInteger(json.Number("9007199254740993"))
		So(err, ShouldBeNil)
		So(n, ShouldEqual, int64(9007199254740993))

		_, err = toInteger(json.Number("1.5"))
		So(errors.Is(err, ErrNotInteger), ShouldBeTrue)
	})

	Convey("toText keeps json.Number digits", t, func() {
		So(toText(json.Number("9007199254740993")), ShouldEqual, "9007199254740993")
		So(toText("On"), ShouldEqual, "On")
		So(toText(int64(3)), ShouldEqual, "3")
	})
}
