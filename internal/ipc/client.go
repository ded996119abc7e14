package ipc

import (
	"encoding/json"
	"fmt"
	"net"
	"time"
)

const clientTimeout = 2 * time.Second

// SendCommand connects to the control socket, sends a single command, and
// returns the daemon's response.
func SendCommand(command string) (*Response, error) {
	conn, err := net.DialTimeout("unix", SocketPath, clientTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon (is it running?): %w", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(clientTimeout))

	if err := json.NewEncoder(conn).Encode(Request{Command: command}); err != nil {
		return nil, fmt.Errorf("failed to send command: %w", err)
	}

	var resp Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}
