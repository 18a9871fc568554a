package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oxrcfg/oxrcfg/color"
	"github.com/oxrcfg/oxrcfg/icon"
	"github.com/oxrcfg/oxrcfg/style"
	"github.com/samber/lo"
)

func (b *statefulBubble) Init() tea.Cmd {
	return b.loadModules()
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case modulesLoadedMsg:
		return b, b.onModulesLoaded(msg)
	case settingsLoadedMsg:
		b.currentModule = msg.module
		b.settingsC.Title = "Settings - " + msg.module
		b.newState(settingsState)
		return b, b.settingsC.SetItems(lo.Map(msg.items, func(i *settingItem, _ int) list.Item { return i }))
	case settingWrittenMsg:
		status := fmt.Sprintf("%s %s set to %s", style.Fg(color.Green)(icon.Get(icon.Success)), msg.attr, style.Label(msg.label))
		return b, tea.Batch(b.loadSettings(b.currentModule), b.settingsC.NewStatusMessage(status))
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		switch b.state {
		case modulesState:
			return b.updateModules(msg)
		case settingsState:
			return b.updateSettings(msg)
		case errorState:
			return b.updateError(msg)
		}
		return b, nil
	}

	var cmd tea.Cmd
	switch b.state {
	case modulesState:
		b.modulesC, cmd = b.modulesC.Update(msg)
	case settingsState:
		b.settingsC, cmd = b.settingsC.Update(msg)
	}
	return b, cmd
}

func (b *statefulBubble) onModulesLoaded(modules []string) tea.Cmd {
	cmd := b.modulesC.SetItems(lo.Map(modules, func(m string, _ int) list.Item { return moduleItem(m) }))

	if b.state != loadingState {
		return cmd
	}

	b.newState(modulesState)
	if _, index, ok := lo.FindIndexOf(modules, func(m string) bool { return m == b.options.Module }); ok {
		b.modulesC.Select(index)
		return tea.Batch(cmd, b.loadSettings(b.options.Module))
	}
	return cmd
}

func (b *statefulBubble) updateModules(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if b.modulesC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.modulesC.SelectedItem().(moduleItem); ok {
				return b, b.loadSettings(string(item))
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.reload):
			return b, b.loadModules()
		}
	}

	b.modulesC, cmd = b.modulesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if b.settingsC.FilterState() == list.Filtering {
		b.settingsC, cmd = b.settingsC.Update(msg)
		return b, cmd
	}

	switch {
	case bubblesKey.Matches(msg, b.keymap.back) && b.settingsC.FilterState() == list.Unfiltered:
		b.newState(modulesState)
		return b, nil
	case bubblesKey.Matches(msg, b.keymap.reload):
		return b, b.loadSettings(b.currentModule)
	case bubblesKey.Matches(msg, b.keymap.prev, b.keymap.next):
		item, ok := b.settingsC.SelectedItem().(*settingItem)
		if !ok {
			return b, nil
		}

		if item.domain == nil {
			return b, b.settingsC.NewStatusMessage(style.Faint(item.value.Name + " has no options"))
		}

		label := item.domain.Next(item.label())
		if bubblesKey.Matches(msg, b.keymap.prev) {
			label = item.domain.Prev(item.label())
		}
		return b, b.writeLabel(b.currentModule, item, label)
	}

	b.settingsC, cmd = b.settingsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case bubblesKey.Matches(msg, b.keymap.quit):
		return b, tea.Quit
	case bubblesKey.Matches(msg, b.keymap.back):
		if b.previous == loadingState {
			return b, tea.Quit
		}
		b.previousState()
	}
	return b, nil
}
