// Package settingsui provides a small graphical editor for the hotkey
// binding. It runs as a one-shot window, separate from the daemon.
package settingsui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"game-wiki-overlay/internal/ipc"
	"game-wiki-overlay/internal/models"
	"game-wiki-overlay/pkg/config"
	"game-wiki-overlay/pkg/logger"
)

// Editor owns the settings window and writes changes back to the store.
type Editor struct {
	log    *logger.Logger
	store  *config.Store
	window fyne.Window

	keyEntry *widget.Entry
	ctrl     *widget.Check
	shift    *widget.Check
	alt      *widget.Check
	win      *widget.Check
	status   *widget.Label
}

func NewEditor(store *config.Store, log *logger.Logger) *Editor {
	return &Editor{log: log, store: store}
}

// Run shows the editor and blocks until the window is closed.
func (e *Editor) Run() error {
	settings := e.store.LoadSettings()

	a := app.New()
	e.window = a.NewWindow("Game Wiki Overlay Settings")

	e.keyEntry = widget.NewEntry()
	e.keyEntry.SetText(settings.Hotkey.Key)
	e.keyEntry.SetPlaceHolder("F1")

	e.ctrl = widget.NewCheck("Ctrl", nil)
	e.shift = widget.NewCheck("Shift", nil)
	e.alt = widget.NewCheck("Alt", nil)
	e.win = widget.NewCheck("Win", nil)
	for _, mod := range settings.Hotkey.Modifiers {
		switch mod {
		case models.ModCtrl:
			e.ctrl.SetChecked(true)
		case models.ModShift:
			e.shift.SetChecked(true)
		case models.ModAlt:
			e.alt.SetChecked(true)
		case models.ModWin:
			e.win.SetChecked(true)
		}
	}

	e.status = widget.NewLabel("")

	saveButton := widget.NewButton("Save", func() {
		e.save(settings)
	})

	e.window.SetContent(container.NewVBox(
		widget.NewLabel("Hotkey"),
		e.keyEntry,
		container.NewHBox(e.ctrl, e.shift, e.alt, e.win),
		saveButton,
		e.status,
	))
	e.window.Resize(fyne.NewSize(320, 200))

	e.window.ShowAndRun()
	return nil
}

func (e *Editor) save(settings *models.AppSettings) {
	hotkey := models.HotkeyConfig{Key: strings.TrimSpace(e.keyEntry.Text)}
	if e.ctrl.Checked {
		hotkey.Modifiers = append(hotkey.Modifiers, models.ModCtrl)
	}
	if e.shift.Checked {
		hotkey.Modifiers = append(hotkey.Modifiers, models.ModShift)
	}
	if e.alt.Checked {
		hotkey.Modifiers = append(hotkey.Modifiers, models.ModAlt)
	}
	if e.win.Checked {
		hotkey.Modifiers = append(hotkey.Modifiers, models.ModWin)
	}

	if err := hotkey.Validate(); err != nil {
		e.status.SetText(fmt.Sprintf("Invalid hotkey: %v", err))
		return
	}

	settings.Hotkey = hotkey
	if err := e.store.SaveSettings(settings); err != nil {
		e.log.Error("Failed to save settings", err)
		e.status.SetText(fmt.Sprintf("Save failed: %v", err))
		return
	}

	// Nudge a running daemon to pick up the new binding. Best effort,
	// the daemon may not be running.
	if resp, err := ipc.SendCommand("rehotkey"); err != nil {
		e.status.SetText(fmt.Sprintf("Saved %s (daemon not reloaded)", hotkey.String()))
	} else if resp.Status != "success" {
		e.status.SetText(fmt.Sprintf("Saved %s (%s)", hotkey.String(), resp.Message))
	} else {
		e.status.SetText(fmt.Sprintf("Saved and applied %s", hotkey.String()))
	}
	e.log.Info("Settings saved", "hotkey", hotkey.String())
}
