package handlers

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"klusmarkt/internal/bus"
)

const (
	eventBuffer       = 64
	heartbeatInterval = 25 * time.Second
)

// EventSource is the part of the bus the stream needs.
type EventSource interface {
	SubscribeAll(h bus.Handler) func()
}

// EventsHandler streams bus events to HTTP clients as server-sent events.
type EventsHandler struct {
	source    EventSource
	log       *zap.Logger
	heartbeat time.Duration

	done      chan struct{}
	closeOnce sync.Once
}

func NewEventsHandler(source EventSource, log *zap.Logger) *EventsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventsHandler{source: source, log: log, heartbeat: heartbeatInterval, done: make(chan struct{})}
}

// Close ends every open stream. http.Server.Shutdown does not cancel the
// context of active requests, so call Close before it.
func (h *EventsHandler) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Stream godoc
// @Summary  Change notifications (server-sent events)
// @Tags     events
// @Produce  text/event-stream
// @Param    prefix query string false "Only topics starting with this prefix, e.g. jobs."
// @Router   /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	select {
	case <-h.done:
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	default:
	}
	prefix := c.Query("prefix")
	events := make(chan bus.Event, eventBuffer)
	unsubscribe := h.source.SubscribeAll(func(e bus.Event) {
		if prefix != "" && !strings.HasPrefix(string(e.Topic), prefix) {
			return
		}
		select {
		case events <- e:
		default:
			h.log.Warn("event stream client too slow, dropping event", zap.String("topic", string(e.Topic)))
		}
	})
	defer unsubscribe()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-h.done:
			return false
		case e := <-events:
			c.SSEvent(string(e.Topic), e)
			return true
		case <-ticker.C:
			c.SSEvent("heartbeat", time.Now().UTC().Format(time.RFC3339))
			return true
		}
	})
}
