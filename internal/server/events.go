package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/responsive-toolbar/internal/ui"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// eventRequest is the incoming WebSocket message format.
type eventRequest struct {
	Type   string `json:"type"`   // "click"
	Target string `json:"target"` // element id
}

// eventResponse is the outgoing WebSocket message format.
type eventResponse struct {
	Type    string `json:"type"` // "ack" or "error"
	Target  string `json:"target,omitempty"`
	Content string `json:"content,omitempty"`
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	viewID := r.URL.Query().Get("view")
	if !s.views.Attach(viewID) {
		http.Error(w, `{"error":"unknown view"}`, http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.views.Detach(viewID)
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	defer s.views.Detach(viewID)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req eventRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendError(conn, "", "invalid message format")
			continue
		}

		switch req.Type {
		case "click":
			s.handleClick(conn, r, viewID, req)
		default:
			s.sendError(conn, req.Target, "unknown message type: "+req.Type)
		}
	}
}

func (s *Server) handleClick(conn *websocket.Conn, r *http.Request, viewID string, req eventRequest) {
	if req.Target == "" {
		s.sendError(conn, "", "target is required")
		return
	}
	prepared, ok := s.views.Get(viewID)
	if !ok {
		s.metrics.events.WithLabelValues("expired").Inc()
		s.sendError(conn, req.Target, "view expired")
		return
	}

	if err := ui.Dispatch(r.Context(), prepared.Root, req.Target); err != nil {
		result := "error"
		switch {
		case errors.Is(err, ui.ErrUnknownTarget):
			result = "unknown_target"
		case errors.Is(err, ui.ErrNoHandler):
			result = "no_handler"
		default:
			log.Printf("server: view %s: %v", viewID, err)
		}
		s.metrics.events.WithLabelValues(result).Inc()
		s.sendError(conn, req.Target, err.Error())
		return
	}

	s.metrics.events.WithLabelValues("ok").Inc()
	s.sendResponse(conn, eventResponse{Type: "ack", Target: req.Target})
}

func (s *Server) sendResponse(conn *websocket.Conn, resp eventResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}

func (s *Server) sendError(conn *websocket.Conn, target, message string) {
	resp := eventResponse{
		Type:    "error",
		Target:  target,
		Content: message,
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write error: %v", err)
	}
}
