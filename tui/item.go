package tui

import (
	"fmt"

	"github.com/oxrcfg/oxrcfg/domain"
	"github.com/oxrcfg/oxrcfg/icon"
	"github.com/oxrcfg/oxrcfg/store"
	"github.com/oxrcfg/oxrcfg/style"
)

// moduleItem is a row of the modules list.
type moduleItem string

func (i moduleItem) FilterValue() string { return string(i) }
func (i moduleItem) Title() string       { return icon.Get(icon.Module) + " " + string(i) }
func (i moduleItem) Description() string { return "" }

// settingItem is a row of the settings list.
type settingItem struct {
	// value has mapped attributes already translated to their label.
	value  store.Value
	domain *domain.Domain
}

func (i *settingItem) FilterValue() string {
	return i.value.Name
}

func (i *settingItem) Title() string {
	if i.domain == nil {
		return i.value.Name
	}
	return icon.Get(icon.Attribute) + " " + i.value.Name
}

func (i *settingItem) Description() string {
	if i.domain == nil {
		return style.Code(fmt.Sprintf("%v (%s)", i.value.Data, i.value.Type))
	}

	label := fmt.Sprint(i.value.Data)
	if !i.domain.Has(label) {
		return style.Code(label) + " " + style.Faint("unknown "+i.domain.Name+" code")
	}
	return style.Label(label) + " " + style.Faint(i.domain.Name)
}

// label is the current label of a mapped setting.
func (i *settingItem) label() string {
	return fmt.Sprint(i.value.Data)
}
