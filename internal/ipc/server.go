// Package ipc exposes a small unix-socket control channel so a second
// invocation of the binary can poke the running daemon.
package ipc

import (
	"encoding/json"
	"fmt"
	"net"
	"os"

	"game-wiki-overlay/pkg/logger"
)

const SocketPath = "/tmp/game-wiki-overlay.sock"

type Request struct {
	Command string `json:"command"`
}

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// Handler is the surface the daemon hands to the server. All methods are
// expected to hand work off to the control thread themselves.
type Handler interface {
	// Trigger enqueues a synthetic hotkey event.
	Trigger() error
	// ReloadCatalog reloads the game catalog, returning the entry count.
	ReloadCatalog() (int, error)
	// Rehotkey re-reads settings from disk and re-registers the hotkey.
	Rehotkey() error
	// Status describes the daemon state.
	Status() map[string]any
}

// Server accepts control connections until Close.
type Server struct {
	log      *logger.Logger
	handler  Handler
	listener net.Listener
}

// NewServer binds the control socket, replacing any stale one.
func NewServer(handler Handler, log *logger.Logger) (*Server, error) {
	if err := os.Remove(SocketPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove stale socket: %w", err)
	}

	listener, err := net.Listen("unix", SocketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to bind control socket: %w", err)
	}

	log.Info("Control socket listening", "path", SocketPath)
	return &Server{log: log, handler: handler, listener: listener}, nil
}

// Serve accepts connections until the listener is closed.
func (s *Server) Serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			// Closed listener means shutdown.
			s.log.Debug("Control socket accept loop ending", "error", err)
			return
		}
		go s.handleConnection(conn)
	}
}

// Close stops the accept loop and removes the socket file.
func (s *Server) Close() error {
	err := s.listener.Close()
	os.Remove(SocketPath)
	return err
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	var req Request
	if err := json.NewDecoder(conn).Decode(&req); err != nil {
		s.log.Error("Failed to decode control request", err)
		return
	}

	s.log.Info("Control request received", "command", req.Command)

	var resp Response
	switch req.Command {
	case "trigger":
		if err := s.handler.Trigger(); err != nil {
			resp = Response{Status: "error", Message: err.Error()}
		} else {
			resp = Response{Status: "success", Message: "Hotkey pipeline triggered"}
		}
	case "reload":
		count, err := s.handler.ReloadCatalog()
		if err != nil {
			resp = Response{Status: "error", Message: err.Error()}
		} else {
			resp = Response{
				Status:  "success",
				Message: fmt.Sprintf("Game catalog reloaded (%d entries)", count),
			}
		}
	case "rehotkey":
		if err := s.handler.Rehotkey(); err != nil {
			resp = Response{Status: "error", Message: err.Error()}
		} else {
			resp = Response{Status: "success", Message: "Hotkey re-registered"}
		}
	case "status":
		resp = Response{Status: "success", Message: "ok", Detail: s.handler.Status()}
	default:
		s.log.Error("Unknown control command", fmt.Errorf("command: %s", req.Command))
		resp = Response{Status: "error", Message: "Unknown command"}
	}

	if err := json.NewEncoder(conn).Encode(resp); err != nil {
		s.log.Error("Failed to encode control response", err)
	}
}
