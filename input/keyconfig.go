package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
	"plus":  '+',
	"minus": '-',
	"equal": '=',
}

// keymapFile is the TOML layout: [keys] for named keys, [runes] for printable ones
type keymapFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only keys present in TOML are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		SpecialKeys: make(map[Key]KeyEntry, len(f.Keys)),
		Runes:       make(map[rune]KeyEntry, len(f.Runes)),
	}

	for name, action := range f.Keys {
		k, ok := KeyByName(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("[keys] %q: %w", name, ErrUnknownKey)
		}
		entry, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("[keys] %q: %w", name, err)
		}
		kt.SpecialKeys[k] = entry
	}

	for name, action := range f.Runes {
		r, err := resolveRune(name)
		if err != nil {
			return nil, fmt.Errorf("[runes] %q: %w", name, err)
		}
		entry, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("[runes] %q: %w", name, err)
		}
		kt.Runes[r] = entry
	}

	return kt, nil
}

func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: expected single character or alias", ErrUnknownKey)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func resolveAction(name string) (KeyEntry, error) {
	if entry, ok := actionRegistry[name]; ok {
		return entry, nil
	}
	if hint := suggestAction(name); hint != "" {
		return KeyEntry{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownAction, name, hint)
	}
	return KeyEntry{}, fmt.Errorf("%w %q", ErrUnknownAction, name)
}

// suggestAction returns the closest registered name within edit distance 3
func suggestAction(name string) string {
	best, bestDist := "", 4
	for _, candidate := range ActionNames() {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
