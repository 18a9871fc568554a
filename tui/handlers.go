package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oxrcfg/oxrcfg/log"
)

type (
	modulesLoadedMsg  []string
	settingsLoadedMsg struct {
		module string
		items  []*settingItem
	}
	settingWrittenMsg struct {
		attr, label string
	}
)

func (b *statefulBubble) loadModules() tea.Cmd {
	return func() tea.Msg {
		modules, err := b.mapper.ListModules()
		if err != nil {
			return err
		}
		return modulesLoadedMsg(modules)
	}
}

func (b *statefulBubble) loadSettings(module string) tea.Cmd {
	return func() tea.Msg {
		values, err := b.mapper.ModuleConfig(module)
		if err != nil {
			return err
		}

		items := make([]*settingItem, 0, len(values))
		for _, v := range values {
			mapped, err := b.mapper.MapData(v)
			if err != nil {
				// strict mode; show the raw code instead of failing the whole view
				log.Warn(err)
				mapped = v
			}

			item := &settingItem{value: mapped}
			if d, ok := b.mapper.Options(v.Name); ok {
				item.domain = d
			}
			items = append(items, item)
		}

		return settingsLoadedMsg{module: module, items: items}
	}
}

func (b *statefulBubble) writeLabel(module string, item *settingItem, label string) tea.Cmd {
	return func() tea.Msg {
		if err := b.mapper.SetValue(module, item.value.Name, label); err != nil {
			return err
		}
		return settingWrittenMsg{attr: item.value.Name, label: label}
	}
}
