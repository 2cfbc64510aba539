package site

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/docsview/internal/markdown"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// previewResponse is the outgoing WebSocket message format.
type previewResponse struct {
	HTML    string `json:"html"`
	Changed bool   `json:"changed"`
	Error   string `json:"error,omitempty"`
}

// handlePreview renders each incoming markdown message. Every connection
// owns a View, so unchanged input is not re-rendered.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("preview: websocket upgrade", "err", err)
		return
	}
	defer conn.Close()

	view := markdown.NewView(s.renderer)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("preview: websocket read", "err", err)
			}
			return
		}

		resp := previewResponse{}
		changed, err := view.SetMarkdown(string(msg))
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.HTML = view.HTML()
			resp.Changed = changed
		}

		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Warn("preview: websocket write", "err", err)
			return
		}
	}
}
