package interfaces

import "klusmarkt/internal/bus"

// IEventPublisher is satisfied by *bus.Bus.
type IEventPublisher interface {
	Publish(e bus.Event)
}
