package input

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/orbital/constant"
)

// actionRegistry maps canonical action names to KeyEntry structs
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	reg := map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		// Focus traversal
		"focus_next":  {Action: ActionFocusNext},
		"focus_prev":  {Action: ActionFocusPrev},
		"focus_first": {Action: ActionFocusFirst},
		"focus_last":  {Action: ActionFocusLast},

		// Activation
		"activate": {Action: ActionActivate},
		"disclose": {Action: ActionDisclose},
		"escape":   {Action: ActionEscape},

		// Ring transforms
		"rotate_cw":      {Action: ActionRotateCW},
		"rotate_ccw":     {Action: ActionRotateCCW},
		"zoom_in":        {Action: ActionZoomIn},
		"zoom_out":       {Action: ActionZoomOut},
		"zoom_in_large":  {Action: ActionZoomInLarge},
		"zoom_out_large": {Action: ActionZoomOutLarge},
	}
	for i := 0; i < constant.MaxDigitShortcut; i++ {
		reg[fmt.Sprintf("jump_%d", i+1)] = KeyEntry{Action: ActionJump, Index: i}
	}
	return reg
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
