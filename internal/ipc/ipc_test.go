package ipc

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-wiki-overlay/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(logger.WithFile(filepath.Join(t.TempDir(), "test.log")))
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log
}

type fakeHandler struct {
	triggered  int
	reloadN    int
	reloadErr  error
	rehotkeyed int
}

func (h *fakeHandler) Trigger() error { h.triggered++; return nil }

func (h *fakeHandler) ReloadCatalog() (int, error) {
	if h.reloadErr != nil {
		return 0, h.reloadErr
	}
	return h.reloadN, nil
}

func (h *fakeHandler) Rehotkey() error { h.rehotkeyed++; return nil }

func (h *fakeHandler) Status() map[string]any {
	return map[string]any{"games": h.reloadN}
}

func startServer(t *testing.T, handler Handler) {
	t.Helper()
	server, err := NewServer(handler, testLogger(t))
	require.NoError(t, err)
	go server.Serve()
	t.Cleanup(func() { server.Close() })
}

func TestTriggerRoundTrip(t *testing.T) {
	handler := &fakeHandler{}
	startServer(t, handler)

	resp, err := SendCommand("trigger")
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 1, handler.triggered)
}

func TestReloadReportsCount(t *testing.T) {
	handler := &fakeHandler{reloadN: 7}
	startServer(t, handler)

	resp, err := SendCommand("reload")
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Contains(t, resp.Message, "7")
}

func TestReloadErrorSurfaces(t *testing.T) {
	handler := &fakeHandler{reloadErr: errors.New("disk gone")}
	startServer(t, handler)

	resp, err := SendCommand("reload")
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "disk gone", resp.Message)
}

func TestStatusCarriesDetail(t *testing.T) {
	handler := &fakeHandler{reloadN: 3}
	startServer(t, handler)

	resp, err := SendCommand("status")
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	require.NotNil(t, resp.Detail)

	detail, ok := resp.Detail.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 3, detail["games"])
}

func TestUnknownCommandRejected(t *testing.T) {
	startServer(t, &fakeHandler{})

	resp, err := SendCommand("explode")
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
}

func TestSendCommandWithoutDaemonFails(t *testing.T) {
	// No server bound; the dial must fail rather than hang.
	_, err := SendCommand("status")
	assert.Error(t, err)
}
