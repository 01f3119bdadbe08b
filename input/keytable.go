package input

import "github.com/lixenwraith/orbital/constant"

// KeyAction is the keyboard-parity operation a key maps to
type KeyAction uint8

const (
	ActionNone KeyAction = iota
	ActionFocusNext
	ActionFocusPrev
	ActionFocusFirst
	ActionFocusLast
	ActionActivate // same effect as tap on the focused item
	ActionDisclose // same effect as long-press on the focused item
	ActionEscape
	ActionRotateCW
	ActionRotateCCW
	ActionZoomIn
	ActionZoomOut
	ActionZoomInLarge
	ActionZoomOutLarge
	ActionJump // focus item Index and tap it
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Action KeyAction
	Index  int // ActionJump target, zero-based
}

// KeyTable maps keys to actions
type KeyTable struct {
	// Non-printable keys (Tab, arrows, Enter, Escape)
	SpecialKeys map[Key]KeyEntry

	// Printable bindings (space, +, -, digits)
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[Key]KeyEntry{
			KeyTab:     {Action: ActionFocusNext},
			KeyBacktab: {Action: ActionFocusPrev},
			KeyHome:    {Action: ActionFocusFirst},
			KeyEnd:     {Action: ActionFocusLast},
			KeyEnter:   {Action: ActionActivate},
			KeySpace:   {Action: ActionDisclose},
			KeyEscape:  {Action: ActionEscape},
			KeyRight:   {Action: ActionRotateCW},
			KeyLeft:    {Action: ActionRotateCCW},
			KeyUp:      {Action: ActionZoomIn},
			KeyDown:    {Action: ActionZoomOut},
		},
		Runes: map[rune]KeyEntry{
			' ': {Action: ActionDisclose},
			'+': {Action: ActionZoomInLarge},
			'=': {Action: ActionZoomInLarge},
			'-': {Action: ActionZoomOutLarge},
		},
	}
	for i := 0; i < constant.MaxDigitShortcut; i++ {
		kt.Runes[rune('1'+i)] = KeyEntry{Action: ActionJump, Index: i}
	}
	return kt
}

// Merge overlays non-nil sections of override onto a copy of kt
// An ActionNone entry unbinds the key
func (kt *KeyTable) Merge(override *KeyTable) *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for r, v := range kt.Runes {
		out.Runes[r] = v
	}
	if override == nil {
		return out
	}
	for k, v := range override.SpecialKeys {
		if v.Action == ActionNone {
			delete(out.SpecialKeys, k)
			continue
		}
		out.SpecialKeys[k] = v
	}
	for r, v := range override.Runes {
		if v.Action == ActionNone {
			delete(out.Runes, r)
			continue
		}
		out.Runes[r] = v
	}
	return out
}

// Lookup resolves a key event; Shift+Tab is treated as Backtab
func (kt *KeyTable) Lookup(ev KeyEvent) (KeyEntry, bool) {
	key := ev.Key
	if key == KeyTab && ev.Shift {
		key = KeyBacktab
	}
	if key == KeyRune {
		e, ok := kt.Runes[ev.Rune]
		return e, ok
	}
	e, ok := kt.SpecialKeys[key]
	return e, ok
}
