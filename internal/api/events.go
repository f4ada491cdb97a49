package api

import (
	"fmt"
	"net/http"

	"kurir/internal/notify"
)

// EventsHandler streams change signals to connected views over server-sent
// events, so separately open views can re-fetch after a mutation. Delivery
// is best-effort: clients must also refresh on their own timers.
type EventsHandler struct {
	Bus *notify.Bus
}

// Stream handles GET /api/events.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		jsonError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Buffered so a slow client drops signals instead of blocking writers;
	// a dropped signal only delays the re-read until the client's own
	// refresh timer.
	signals := make(chan string, 16)
	cancel := h.Bus.SubscribeAll(func(topic string) {
		select {
		case signals <- topic:
		default:
		}
	})
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case topic := <-signals:
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", topic)
			flusher.Flush()
		}
	}
}
