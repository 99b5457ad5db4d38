package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

const defaultReadLimit = 1 << 20

type WebSocket struct {
	Upgrader websocket.Upgrader
	// ReadLimit bounds a single incoming grid message in bytes.
	ReadLimit int64
}

func NewWebSocket() (*WebSocket, error) {
	readLimit, err := lookupInt("WS_READ_LIMIT", defaultReadLimit)
	if err != nil {
		return nil, err
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader:  upgrader,
		ReadLimit: int64(readLimit),
	}

	return ws, nil
}
