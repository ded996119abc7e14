package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Modifier is one of the four hotkey modifier keys. Keeping this a closed
// enumeration instead of free-form strings makes an invalid modifier a
// decode-time error rather than a silent misconfiguration.
type Modifier int

const (
	ModCtrl Modifier = iota
	ModShift
	ModAlt
	ModWin
)

var modifierNames = map[Modifier]string{
	ModCtrl:  "Ctrl",
	ModShift: "Shift",
	ModAlt:   "Alt",
	ModWin:   "Win",
}

func (m Modifier) String() string {
	if name, ok := modifierNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Modifier(%d)", int(m))
}

// ParseModifier maps a vocabulary string to its Modifier. Matching is
// case-insensitive on the fixed vocabulary {Ctrl, Shift, Alt, Win}.
func ParseModifier(s string) (Modifier, error) {
	for mod, name := range modifierNames {
		if strings.EqualFold(name, s) {
			return mod, nil
		}
	}
	return 0, fmt.Errorf("unknown modifier %q", s)
}

// MarshalJSON writes the vocabulary string, keeping the persisted document
// compatible with hand-edited settings files.
func (m Modifier) MarshalJSON() ([]byte, error) {
	name, ok := modifierNames[m]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid modifier %d", int(m))
	}
	return json.Marshal(name)
}

// UnmarshalJSON accepts the vocabulary strings case-insensitively.
func (m *Modifier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	mod, err := ParseModifier(s)
	if err != nil {
		return err
	}
	*m = mod
	return nil
}
