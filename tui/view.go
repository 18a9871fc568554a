package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/oxrcfg/oxrcfg/color"
	"github.com/oxrcfg/oxrcfg/icon"
	"github.com/oxrcfg/oxrcfg/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.renderLines(false, []string{
			style.Title("Loading"),
			"",
			icon.Get(icon.Progress) + " reading " + b.mapper.Root(),
		})
	case modulesState:
		return listExtraPaddingStyle.Render(b.modulesC.View())
	case settingsState:
		return listExtraPaddingStyle.Render(b.settingsC.View())
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewError() string {
	message := style.New().Foreground(color.Red).Bold(true).Render(fmt.Sprint(b.lastError))
	return b.renderLines(true, []string{
		style.New().Foreground(color.New("230")).Background(color.Red).Padding(0, 1).Render("Error"),
		"",
		icon.Get(icon.Fail) + " " + wrap.String(message, b.width),
	})
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
