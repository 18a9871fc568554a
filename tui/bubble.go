package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/oxrcfg/oxrcfg/color"
	"github.com/oxrcfg/oxrcfg/mapper"
	"github.com/oxrcfg/oxrcfg/style"
	"github.com/oxrcfg/oxrcfg/util"
)

type statefulBubble struct {
	state         state
	previous      state
	mapper        *mapper.Mapper
	options       *Options
	keymap        *statefulKeymap
	currentModule string
	lastError     error

	modulesC  list.Model
	settingsC list.Model
	helpC     help.Model

	width, height int
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState switches state, remembering the one to return to from errors.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != errorState && b.state != loadingState {
		b.previous = b.state
	}
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	b.setState(b.previous)
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.modulesC.SetSize(listWidth, listHeight)
	b.modulesC.Help.Width = listWidth

	b.settingsC.SetSize(listWidth, listHeight)
	b.settingsC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func newBubble(m *mapper.Mapper, options *Options) *statefulBubble {
	bubble := statefulBubble{
		mapper:  m,
		options: options,
		keymap:  newStatefulKeymap(),
		helpC:   help.New(),
	}

	makeList := func(title string, background lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(color.Purple).
			Foreground(color.Purple).
			Padding(0, 0, 0, 1)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = style.New().Foreground(color.New("230")).Background(background).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = 3 * time.Second

		return listC
	}

	bubble.modulesC = makeList("Modules", color.New("62"))
	bubble.modulesC.SetStatusBarItemName("module", "modules")

	bubble.settingsC = makeList("Settings", color.Purple)
	bubble.settingsC.SetStatusBarItemName("setting", "settings")

	bubble.resize(util.TerminalWidth(80), 24)
	bubble.setState(loadingState)

	return &bubble
}
