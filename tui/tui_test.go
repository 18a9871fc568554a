package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/oxrcfg/oxrcfg/constant"
	"github.com/oxrcfg/oxrcfg/mapper"
	"github.com/oxrcfg/oxrcfg/store"
	. "github.com/smartystreets/goconvey/convey"
)

const module = "DCS World"

func storedData(mem *store.Memory, name string) any {
	k, err := mem.Open(store.Join(constant.RootPath, module), store.Read)
	So(err, ShouldBeNil)
	defer k.Close()

	values, err := store.Values(k)
	So(err, ShouldBeNil)
	for _, v := range values {
		if v.Name == name {
			return v.Data
		}
	}
	return nil
}

func TestBubble(t *testing.T) {
	Convey("Given a bubble over a memory store", t, func() {
		mem := store.NewMemory().
			Put(store.Join(constant.RootPath, module),
				store.Value{Name: "scaling_type", Type: store.TypeDWord, Data: 2},
				store.Value{Name: "runtime", Type: store.TypeString, Data: "WMR"},
			).
			Put(store.Join(constant.RootPath, "MSFS"))
		b := newBubble(mapper.New(mem, constant.RootPath), &Options{Module: "Missing"})

		So(b.state, ShouldEqual, loadingState)

		Convey("Loaded modules are listed", func() {
			b.Update(b.loadModules()())
			So(b.state, ShouldEqual, modulesState)
			So(len(b.modulesC.Items()), ShouldEqual, 2)
			So(b.modulesC.Items()[0], ShouldEqual, moduleItem(module))
		})

		Convey("Loaded settings show labels", func() {
			b.Update(b.loadSettings(module)())
			So(b.state, ShouldEqual, settingsState)
			So(b.currentModule, ShouldEqual, module)

			item, ok := b.settingsC.Items()[0].(*settingItem)
			So(ok, ShouldBeTrue)
			So(item.label(), ShouldEqual, "FSR")
			So(item.domain, ShouldNotBeNil)

			Convey("Right writes the next label", func() {
				_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRight})
				So(cmd, ShouldNotBeNil)
				So(cmd(), ShouldResemble, settingWrittenMsg{attr: "scaling_type", label: "CAS"})
				So(storedData(mem, "scaling_type"), ShouldEqual, int64(3))
			})

			Convey("Left writes the previous label", func() {
				_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyLeft})
				So(cmd(), ShouldResemble, settingWrittenMsg{attr: "scaling_type", label: "NIS"})
				So(storedData(mem, "scaling_type"), ShouldEqual, int64(1))
			})

			Convey("Settings without options are not written", func() {
				b.Update(tea.KeyMsg{Type: tea.KeyDown})
				So(b.settingsC.Index(), ShouldEqual, 1)

				b.Update(tea.KeyMsg{Type: tea.KeyRight})
				So(mem.Writes(), ShouldEqual, 0)
				So(storedData(mem, "runtime"), ShouldEqual, "WMR")
			})

			Convey("Esc goes back to the modules", func() {
				b.Update(tea.KeyMsg{Type: tea.KeyEsc})
				So(b.state, ShouldEqual, modulesState)
			})
		})

		Convey("A missing module raises an error", func() {
			b.Update(b.loadSettings("Missing")())
			So(b.state, ShouldEqual, errorState)
			So(errors.Is(b.lastError, store.ErrNotExist), ShouldBeTrue)
			So(b.View(), ShouldContainSubstring, "Error")

			Convey("Going back from an error during startup quits", func() {
				_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEsc})
				So(cmd, ShouldNotBeNil)
				So(cmd(), ShouldResemble, tea.Quit())
			})
		})
	})
}
