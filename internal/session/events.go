package session

import (
	"netupdate/internal/domain"

	"go.uber.org/zap"
)

// EventType defines the type of event
type EventType string

const (
	EventDeviceUnknown   EventType = "device_unknown"
	EventIPRejected      EventType = "ip_rejected"
	EventDeviceUpdated   EventType = "device_updated"
	EventDeviceAbandoned EventType = "device_abandoned"
	EventInputEnded      EventType = "input_ended"
	EventTerminated      EventType = "session_terminated"
)

// Event represents something that happened during a session
type Event struct {
	Type      EventType
	SessionID string
	Device    string
	Class     domain.DeviceClass
	IP        string
	Err       error
}

// EventBus delivers events to subscribers synchronously, in subscription
// order, on the session goroutine
type EventBus struct {
	subscribers []func(Event)
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]func(Event), 0),
	}
}

// Subscribe adds a subscriber to receive events
func (eb *EventBus) Subscribe(fn func(Event)) {
	eb.subscribers = append(eb.subscribers, fn)
}

// Publish sends an event to all subscribers
func (eb *EventBus) Publish(event Event) {
	for _, fn := range eb.subscribers {
		fn(event)
	}
}

// LogEvents returns a subscriber that writes events to logger
func LogEvents(logger *zap.Logger) func(Event) {
	return func(e Event) {
		fields := []zap.Field{
			zap.String("session", e.SessionID),
			zap.String("event", string(e.Type)),
		}
		if e.Device != "" {
			fields = append(fields, zap.String("device", e.Device))
		}
		if e.Class != "" {
			fields = append(fields, zap.String("class", string(e.Class)))
		}
		if e.IP != "" {
			fields = append(fields, zap.String("ip", e.IP))
		}
		if e.Err != nil {
			fields = append(fields, zap.Error(e.Err))
		}

		switch e.Type {
		case EventIPRejected, EventDeviceUnknown, EventDeviceAbandoned:
			logger.Warn("operator input rejected", fields...)
		case EventDeviceUpdated:
			logger.Info("device updated", fields...)
		default:
			logger.Debug("session event", fields...)
		}
	}
}
