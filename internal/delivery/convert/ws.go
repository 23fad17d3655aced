package convert

import (
	"net/http"

	"github.com/gorilla/websocket"

	convertuc "gib2sgf/internal/usecase/convert"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket converts every text message it receives and answers with
// the SGF as a JSON string, or null when the message is not a valid GIB file.
func (h *ConvertHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(h.cfg.MaxBodyBytes)

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Infow("websocket closed", "error", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err := conn.WriteJSON(convertuc.ConvertOrNil(string(message))); err != nil {
			h.log.Warnw("websocket write failed", "error", err)
			return
		}
	}
}
