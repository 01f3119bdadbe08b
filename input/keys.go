package input

// Key represents a non-printable key, or KeyRune for printable input
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check KeyEvent.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

var keyNames = map[string]Key{
	"escape":  KeyEscape,
	"esc":     KeyEscape,
	"enter":   KeyEnter,
	"return":  KeyEnter,
	"tab":     KeyTab,
	"backtab": KeyBacktab,
	"space":   KeySpace,
	"up":      KeyUp,
	"down":    KeyDown,
	"left":    KeyLeft,
	"right":   KeyRight,
	"home":    KeyHome,
	"end":     KeyEnd,
}

// KeyByName resolves a lowercase key name used in keymap files
func KeyByName(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// String returns the canonical key name
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyBacktab:
		return "backtab"
	case KeySpace:
		return "space"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return "none"
	}
}
