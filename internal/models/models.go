package models

import (
	"fmt"
	"strings"
)

// GameProfile describes one wiki target: the base URL plus the rules for
// turning a typed search term into a page URL. Profiles are immutable once
// loaded; the catalog key (the display name used for title matching) is kept
// outside the profile itself.
type GameProfile struct {
	BaseURL        string            `json:"BaseUrl"`
	NeedsSearch    bool              `json:"NeedsSearch"`
	SearchTemplate string            `json:"SearchTemplate,omitempty"`
	KeywordMap     map[string]string `json:"KeywordMap,omitempty"`
}

// Validate reports whether the profile is usable. SearchTemplate and
// KeywordMap are only consulted when NeedsSearch is set, but a template
// without the {query} placeholder is always a document error.
func (p *GameProfile) Validate() error {
	if strings.TrimSpace(p.BaseURL) == "" {
		return fmt.Errorf("BaseUrl must not be empty")
	}
	if p.SearchTemplate != "" && !strings.Contains(p.SearchTemplate, "{query}") {
		return fmt.Errorf("SearchTemplate %q is missing the {query} placeholder", p.SearchTemplate)
	}
	return nil
}

// HotkeyConfig is the user-configurable global shortcut.
type HotkeyConfig struct {
	Key       string     `json:"Key"`
	Modifiers []Modifier `json:"Modifiers"`
}

// Validate requires a non-empty key name.
func (h *HotkeyConfig) Validate() error {
	if strings.TrimSpace(h.Key) == "" {
		return fmt.Errorf("hotkey key must not be empty")
	}
	return nil
}

// Normalize collapses duplicate modifiers while keeping the first
// occurrence's position, so the set has a stable declaration order.
func (h HotkeyConfig) Normalize() HotkeyConfig {
	seen := make(map[Modifier]bool, len(h.Modifiers))
	mods := make([]Modifier, 0, len(h.Modifiers))
	for _, m := range h.Modifiers {
		if seen[m] {
			continue
		}
		seen[m] = true
		mods = append(mods, m)
	}
	h.Modifiers = mods
	return h
}

// String renders the combination in canonical order: modifiers in
// declaration order, then the key.
func (h HotkeyConfig) String() string {
	parts := make([]string, 0, len(h.Modifiers)+1)
	for _, m := range h.Modifiers {
		parts = append(parts, m.String())
	}
	parts = append(parts, h.Key)
	return strings.Join(parts, "+")
}

// PopupGeometry holds the popup window's last observed bounds. Values are
// floats because the persisted document historically stored them that way.
type PopupGeometry struct {
	Left   float64 `json:"Left"`
	Top    float64 `json:"Top"`
	Width  float64 `json:"Width"`
	Height float64 `json:"Height"`
}

// AppSettings is the sole persisted user-configurable state.
type AppSettings struct {
	Hotkey HotkeyConfig  `json:"Hotkey"`
	Popup  PopupGeometry `json:"Popup"`
}

// Validate checks the document after decode.
func (s *AppSettings) Validate() error {
	if err := s.Hotkey.Validate(); err != nil {
		return err
	}
	if s.Popup.Width <= 0 || s.Popup.Height <= 0 {
		return fmt.Errorf("popup geometry %gx%g is not positive", s.Popup.Width, s.Popup.Height)
	}
	return nil
}
