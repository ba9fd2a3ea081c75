package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/nguyentantai21042004/textai/internal/highlight"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// syncEvent is a playback event sent by the page's audio element.
type syncEvent struct {
	Event    highlight.Event `json:"event"`
	Time     float64         `json:"time"`
	Duration float64         `json:"duration"`
}

// syncMessage is sent back to the page. Type is "state" or "reattach".
type syncMessage struct {
	Type string `json:"type"`
	highlight.State
}

// handleSync binds one page's audio element to the session's highlight
// controller. When the controller is attached to a new clip the
// subscription ends and the page is told to reattach.
func (s *implServer) handleSync(c *gin.Context) {
	id, _ := c.Cookie(cookieName)
	sess, ok := s.store.Lookup(id)
	if !ok {
		c.String(http.StatusUnauthorized, "no session")
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn(c.Request.Context(), "Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctrl := sess.Controller()
	updates := make(chan highlight.State, 16)
	sub := ctrl.Subscribe(func(st highlight.State) {
		select {
		case updates <- st:
		default:
			// The page will send another tick shortly.
		}
	})
	defer sub.Unsubscribe()

	readerDone := make(chan struct{})
	go s.readSyncEvents(conn, ctrl, sub, readerDone)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case st := <-updates:
			if st.Generation != sub.Generation {
				continue
			}
			if err := writeJSON(conn, syncMessage{Type: "state", State: st}); err != nil {
				return
			}
		case <-sub.Done:
			writeJSON(conn, syncMessage{Type: "reattach", State: ctrl.State()})
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-readerDone:
			return
		}
	}
}

func (s *implServer) readSyncEvents(conn *websocket.Conn, ctrl *highlight.Controller, sub *highlight.Subscription, done chan<- struct{}) {
	defer close(done)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var ev syncEvent
		if err := conn.ReadJSON(&ev); err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		select {
		case <-sub.Done:
			// Stale page; ignore events for the previous clip.
			continue
		default:
		}

		switch ev.Event {
		case highlight.EventPlay, highlight.EventTimeUpdate, highlight.EventPause, highlight.EventEnded:
			ctrl.Handle(ev.Event, ev.Time, ev.Duration)
		}
	}
}

func writeJSON(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}
