package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nihalpictures/studio-api/internal/feed"
)

type EventsHandler struct {
	hub *feed.Hub
}

func NewEventsHandler(hub *feed.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// heartbeat keeps idle proxies from closing the stream.
const heartbeatInterval = 30 * time.Second

// Stream pushes collection-change events to the admin session over SSE.
// The subscription is torn down when the client disconnects.
func (h *EventsHandler) Stream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	sub := h.hub.Subscribe()
	defer sub.Unsubscribe()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	ctx := c.Request.Context()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false

		case ev, ok := <-sub.C:
			if !ok {
				return false
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				return true
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload)
			return true

		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
			return true
		}
	})
}
