package popup

import (
	"fmt"
	"os/exec"

	"game-wiki-overlay/internal/models"
	"game-wiki-overlay/pkg/logger"
)

// XDGFactory is the degraded fallback for hosts without an embedded
// browsing engine: URLs open in the default external browser. The "window"
// cannot be observed, so geometry is frozen at whatever was requested and
// visibility tracks open/close calls only.
type XDGFactory struct {
	log *logger.Logger
}

// NewXDGFactory fails when xdg-open is unavailable.
func NewXDGFactory(log *logger.Logger) (*XDGFactory, error) {
	if _, err := exec.LookPath("xdg-open"); err != nil {
		return nil, fmt.Errorf("xdg-open not found: %w", err)
	}
	log.Warn("No embedded browsing engine, falling back to the external browser")
	return &XDGFactory{log: log}, nil
}

func (f *XDGFactory) New(geo models.PopupGeometry) (WebView, error) {
	return &xdgView{log: f.log, geo: geo}, nil
}

func (f *XDGFactory) Shutdown() {}

type xdgView struct {
	log     *logger.Logger
	geo     models.PopupGeometry
	url     string
	visible bool

	onLoadStarted  func()
	onLoadFinished func(bool)
	onURLChanged   func(string)
	onClosed       func()
}

func (v *xdgView) LoadURL(url string) error {
	v.url = url
	if v.onLoadStarted != nil {
		v.onLoadStarted()
	}
	if err := exec.Command("xdg-open", url).Start(); err != nil {
		if v.onLoadFinished != nil {
			v.onLoadFinished(false)
		}
		return fmt.Errorf("xdg-open failed: %w", err)
	}
	if v.onURLChanged != nil {
		v.onURLChanged(url)
	}
	if v.onLoadFinished != nil {
		v.onLoadFinished(true)
	}
	return nil
}

func (v *xdgView) Show() error {
	v.visible = true
	return nil
}

func (v *xdgView) Raise() {}

func (v *xdgView) Visible() bool { return v.visible }

func (v *xdgView) Bounds() models.PopupGeometry { return v.geo }

func (v *xdgView) SetBounds(geo models.PopupGeometry) { v.geo = geo }

func (v *xdgView) Close() error {
	if !v.visible {
		return nil
	}
	v.visible = false
	if v.onClosed != nil {
		v.onClosed()
	}
	return nil
}

func (v *xdgView) OnLoadStarted(fn func()) { v.onLoadStarted = fn }
func (v *xdgView) OnLoadFinished(fn func(bool)) { v.onLoadFinished = fn }
func (v *xdgView) OnURLChanged(fn func(string)) { v.onURLChanged = fn }
func (v *xdgView) OnRenderCrashed(fn func(string)) {}
func (v *xdgView) OnClosed(fn func()) { v.onClosed = fn }
