package service

import (
	"context"
	"time"
)

// FaultEvent describes an unhandled error observed at the service boundary.
type FaultEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Service    string    `json:"service"`
	Recipient  string    `json:"recipient,omitempty"` // Mailbox that should hear about the fault
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Error      string    `json:"error"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AlertPublisher delivers fault events to whoever operates the service.
type AlertPublisher interface {
	// PublishFault sends a single fault event.
	PublishFault(ctx context.Context, event *FaultEvent) error

	// Close releases any resources held by the publisher
	Close(ctx context.Context) error
}
