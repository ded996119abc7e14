package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-wiki-overlay/internal/hotkey"
	"game-wiki-overlay/internal/models"
	"game-wiki-overlay/internal/popup"
	"game-wiki-overlay/internal/prompt"
	"game-wiki-overlay/pkg/config"
	"game-wiki-overlay/pkg/logger"
	"game-wiki-overlay/pkg/notify"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(logger.WithFile(filepath.Join(t.TempDir(), "test.log")))
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log
}

type fakeProbe struct{ title string }

func (p *fakeProbe) ActiveWindowTitle() string { return p.title }
func (p *fakeProbe) Name() string { return "fake" }

type fakeNotifier struct{ messages []string }

func (n *fakeNotifier) Show(message string, _ notify.NotificationType) error {
	n.messages = append(n.messages, message)
	return nil
}

// fakePrompt returns a scripted result and records what it was asked.
type fakePrompt struct {
	result      prompt.Result
	asked       int
	placeholder string
	lastTerm    string
}

func (p *fakePrompt) Ask(placeholder, lastTerm string) (prompt.Result, error) {
	p.asked++
	p.placeholder = placeholder
	p.lastTerm = lastTerm
	return p.result, nil
}

type fakeView struct {
	url     string
	geo     models.PopupGeometry
	visible bool
	raised  int

	onClosed func()
}

func (v *fakeView) LoadURL(url string) error { v.url = url; return nil }
func (v *fakeView) Show() error { v.visible = true; return nil }
func (v *fakeView) Raise() { v.raised++ }
func (v *fakeView) Visible() bool { return v.visible }
func (v *fakeView) Bounds() models.PopupGeometry { return v.geo }
func (v *fakeView) SetBounds(geo models.PopupGeometry) { v.geo = geo }
func (v *fakeView) Close() error { v.visible = false; return nil }
func (v *fakeView) OnLoadStarted(func()) {}
func (v *fakeView) OnLoadFinished(func(bool)) {}
func (v *fakeView) OnURLChanged(func(string)) {}
func (v *fakeView) OnRenderCrashed(func(string)) {}
func (v *fakeView) OnClosed(fn func()) { v.onClosed = fn }

type fakeFactory struct{ views []*fakeView }

func (f *fakeFactory) New(geo models.PopupGeometry) (popup.WebView, error) {
	v := &fakeView{geo: geo}
	f.views = append(f.views, v)
	return v, nil
}

func (f *fakeFactory) Shutdown() {}

type fixture struct {
	orch     *Orchestrator
	probe    *fakeProbe
	notifier *fakeNotifier
	prompt   *fakePrompt
	factory  *fakeFactory
	store    *config.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := testLogger(t)

	store, err := config.NewStoreAt(t.TempDir(), log, nil)
	require.NoError(t, err)

	f := &fixture{
		probe:    &fakeProbe{},
		notifier: &fakeNotifier{},
		prompt:   &fakePrompt{},
		factory:  &fakeFactory{},
		store:    store,
	}
	f.orch = New(Deps{
		Log:       log,
		Notifier:  f.notifier,
		Store:     store,
		Probe:     f.probe,
		Registrar: hotkey.NewRegistrar(log),
		Prompt:    f.prompt,
		Factory:   f.factory,
	})

	// Load state the way Run would, without spinning the event loop.
	f.orch.settings = store.LoadSettings()
	f.orch.catalog = models.NewGameCatalog()
	return f
}

func (f *fixture) addProfile(key string, profile models.GameProfile) {
	f.orch.catalog.Put(key, profile)
}

// drainTasks runs events the popup manager posted during the pipeline.
func (f *fixture) drainTasks() {
	for {
		select {
		case fn := <-f.orch.taskCh:
			fn()
		default:
			return
		}
	}
}

func TestHotkeyOpensBaseURLWithoutPrompt(t *testing.T) {
	f := newFixture(t)
	f.addProfile("Valorant", models.GameProfile{BaseURL: "https://wiki.example/valorant"})
	f.probe.title = "VALORANT"

	f.orch.handleHotkey()

	require.Len(t, f.factory.views, 1)
	assert.Equal(t, "https://wiki.example/valorant", f.factory.views[0].url)
	assert.True(t, f.factory.views[0].visible)
	assert.Zero(t, f.prompt.asked)
	assert.Equal(t, "https://wiki.example/valorant", f.orch.lastSearchURL)
}

func TestHotkeySearchProfileBuildsTemplatedURL(t *testing.T) {
	f := newFixture(t)
	f.addProfile("Elden Ring", models.GameProfile{
		BaseURL:        "https://wiki.example/elden",
		NeedsSearch:    true,
		SearchTemplate: "https://wiki.example/search?q={query}",
	})
	f.probe.title = "ELDEN RING - Steam"
	f.prompt.result = prompt.Result{Outcome: prompt.Accepted, Term: "fire staff"}

	f.orch.handleHotkey()

	assert.Equal(t, 1, f.prompt.asked)
	assert.Equal(t, "Search Elden Ring Wiki...", f.prompt.placeholder)
	require.Len(t, f.factory.views, 1)
	assert.Equal(t, "https://wiki.example/search?q=fire+staff", f.factory.views[0].url)
}

func TestHotkeyOpenLastWithoutHistoryFallsBackToBase(t *testing.T) {
	f := newFixture(t)
	f.addProfile("Elden Ring", models.GameProfile{
		BaseURL:        "https://wiki.example/elden",
		NeedsSearch:    true,
		SearchTemplate: "https://wiki.example/search?q={query}",
	})
	f.probe.title = "Elden Ring"
	f.prompt.result = prompt.Result{Outcome: prompt.OpenLast}

	f.orch.handleHotkey()

	require.Len(t, f.factory.views, 1)
	assert.Equal(t, "https://wiki.example/elden", f.factory.views[0].url)
}

func TestHotkeyOpenLastReusesPreviousURLVerbatim(t *testing.T) {
	f := newFixture(t)
	f.addProfile("Elden Ring", models.GameProfile{
		BaseURL:        "https://wiki.example/elden",
		NeedsSearch:    true,
		SearchTemplate: "https://wiki.example/search?q={query}",
	})
	f.probe.title = "Elden Ring"
	f.orch.lastSearchURL = "https://other.example/search?q=old"
	f.prompt.result = prompt.Result{Outcome: prompt.OpenLast}

	f.orch.handleHotkey()

	require.Len(t, f.factory.views, 1)
	assert.Equal(t, "https://other.example/search?q=old", f.factory.views[0].url)
}

func TestHotkeyNoMatchNotifiesAndLeavesSessionAlone(t *testing.T) {
	f := newFixture(t)
	f.addProfile("Valorant", models.GameProfile{BaseURL: "https://wiki.example/valorant"})
	f.probe.title = "Text Editor"

	f.orch.handleHotkey()

	assert.Empty(t, f.factory.views)
	require.Len(t, f.notifier.messages, 1)
	assert.Equal(t, "No configuration for: Text Editor", f.notifier.messages[0])
	assert.Empty(t, f.orch.lastSearchURL)
}

func TestHotkeyEmptyCatalogNotifies(t *testing.T) {
	f := newFixture(t)
	f.probe.title = "Valorant"

	f.orch.handleHotkey()

	assert.Empty(t, f.factory.views)
	require.Len(t, f.notifier.messages, 1)
	assert.Equal(t, "Game configurations not loaded", f.notifier.messages[0])
}

func TestHotkeyCancelledPromptAborts(t *testing.T) {
	f := newFixture(t)
	f.addProfile("Elden Ring", models.GameProfile{
		BaseURL:     "https://wiki.example/elden",
		NeedsSearch: true,
	})
	f.probe.title = "Elden Ring"
	f.prompt.result = prompt.Result{Outcome: prompt.Cancelled}

	f.orch.handleHotkey()

	assert.Empty(t, f.factory.views)
	assert.Empty(t, f.orch.lastSearchURL)
}

func TestHotkeyEmptyAcceptedTermOpensBaseURL(t *testing.T) {
	f := newFixture(t)
	f.addProfile("Elden Ring", models.GameProfile{
		BaseURL:        "https://wiki.example/elden",
		NeedsSearch:    true,
		SearchTemplate: "https://wiki.example/search?q={query}",
	})
	f.probe.title = "Elden Ring"
	f.prompt.result = prompt.Result{Outcome: prompt.Accepted, Term: ""}

	f.orch.handleHotkey()

	require.Len(t, f.factory.views, 1)
	assert.Equal(t, "https://wiki.example/elden", f.factory.views[0].url)
}

func TestHotkeyCursorFixGameRaisesExistingPopup(t *testing.T) {
	f := newFixture(t)
	f.addProfile("Valorant", models.GameProfile{BaseURL: "https://wiki.example/valorant"})
	f.probe.title = "Valorant"

	f.orch.handleHotkey()
	require.Len(t, f.factory.views, 1)

	// Second press while the popup is visible raises it instead of
	// opening anything; the content is not refreshed.
	f.orch.handleHotkey()

	require.Len(t, f.factory.views, 1)
	assert.Equal(t, 1, f.factory.views[0].raised)
}

func TestHotkeyRegularGameReplacesPopup(t *testing.T) {
	f := newFixture(t)
	f.addProfile("Terraria", models.GameProfile{BaseURL: "https://wiki.example/terraria"})
	f.probe.title = "Terraria"

	f.orch.handleHotkey()
	f.orch.handleHotkey()

	// Each press resolves anew; the old popup was closed first.
	require.Len(t, f.factory.views, 2)
	assert.False(t, f.factory.views[0].visible)
	assert.True(t, f.factory.views[1].visible)
}

func TestPromptPrefillSkipsSameWiki(t *testing.T) {
	f := newFixture(t)
	f.addProfile("Elden Ring", models.GameProfile{
		BaseURL:        "https://wiki.example/elden",
		NeedsSearch:    true,
		SearchTemplate: "https://wiki.example/search?q={query}",
	})
	f.probe.title = "Elden Ring"
	f.prompt.result = prompt.Result{Outcome: prompt.Cancelled}

	// A previous URL from this wiki is not suggested back.
	f.orch.lastSearchURL = "https://wiki.example/elden/page"
	f.orch.handleHotkey()
	assert.Empty(t, f.prompt.lastTerm)

	// One from another wiki is.
	f.orch.lastSearchURL = "https://other.example/page"
	f.orch.handleHotkey()
	assert.Equal(t, "https://other.example/page", f.prompt.lastTerm)
}

func TestPopupCloseEventPersistsGeometry(t *testing.T) {
	f := newFixture(t)
	f.addProfile("Terraria", models.GameProfile{BaseURL: "https://wiki.example/terraria"})
	f.probe.title = "Terraria"

	f.orch.handleHotkey()
	require.Len(t, f.factory.views, 1)

	view := f.factory.views[0]
	view.SetBounds(models.PopupGeometry{Left: 11, Top: 22, Width: 1280, Height: 720})
	view.Close()
	view.onClosed()
	f.drainTasks()

	saved := f.store.LoadSettings()
	assert.Equal(t, models.PopupGeometry{Left: 11, Top: 22, Width: 1280, Height: 720}, saved.Popup)
}
