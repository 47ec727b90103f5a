package httpserver

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"pressboard/internal/platform/broadcast"
)

const (
	boardWriteWait  = 10 * time.Second
	boardPongWait   = 60 * time.Second
	boardPingPeriod = (boardPongWait * 9) / 10
)

var boardUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleBoardSocket streams board events to one websocket client. The
// subscription is dropped when the client disconnects or falls behind.
func (s *Server) handleBoardSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := boardUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("board socket upgrade failed",
			"event", "board.socket_upgrade_failed",
			"error", err,
		)
		return
	}

	sub := s.hub.Subscribe()

	go s.readBoardSocket(conn, sub)
	s.writeBoardSocket(conn, sub)
}

// readBoardSocket drains client frames so pong handlers run and the
// connection close is noticed.
func (s *Server) readBoardSocket(conn *websocket.Conn, sub *broadcast.Subscription) {
	defer sub.Close()
	defer conn.Close()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(boardPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(boardPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) writeBoardSocket(conn *websocket.Conn, sub *broadcast.Subscription) {
	ticker := time.NewTicker(boardPingPeriod)
	defer ticker.Stop()
	defer conn.Close()
	defer sub.Close()

	for {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(boardWriteWait))
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "subscription closed"))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(boardWriteWait))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(boardWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
