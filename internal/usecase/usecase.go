// Package usecase holds the entity rules: validation, state machines and the
// change events published after every successful commit.
package usecase

import (
	"strings"
	"time"

	"klusmarkt/internal/bus"
	"klusmarkt/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	now   = func() time.Time { return time.Now().UTC() }
	newID = uuid.NewString
)

func emit(events interfaces.IEventPublisher, entity, op, id string, payload any) {
	if events == nil {
		return
	}
	events.Publish(bus.Event{Topic: bus.TopicFor(entity, op), ID: id, Payload: payload})
}

func requireID(field, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", invalid(field, "required")
	}
	return id, nil
}
