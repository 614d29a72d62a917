package alert

import (
	"context"
	"encoding/json"
	"log/slog"

	"users/internal/domain/service"
	"users/internal/errors"

	"gocloud.dev/pubsub"
)

// TopicPublisher implements AlertPublisher on top of a Go CDK topic
type TopicPublisher struct {
	topic     *pubsub.Topic
	recipient string
	logger    *slog.Logger
}

// NewTopicPublisher wraps an already opened topic. The publisher owns it from now on.
func NewTopicPublisher(topic *pubsub.Topic, recipient string, logger *slog.Logger) *TopicPublisher {
	return &TopicPublisher{
		topic:     topic,
		recipient: recipient,
		logger:    logger,
	}
}

// PublishFault sends the event as JSON. The configured recipient fills an empty one.
func (p *TopicPublisher) PublishFault(ctx context.Context, event *service.FaultEvent) error {
	if event.Recipient == "" {
		event.Recipient = p.recipient
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	metadata := map[string]string{
		"service": event.Service,
		"path":    event.Path,
	}
	if event.RequestID != "" {
		metadata["request_id"] = event.RequestID
	}

	if err := p.topic.Send(ctx, &pubsub.Message{Body: data, Metadata: metadata}); err != nil {
		return errors.Wrap(err, "failed to publish fault alert")
	}

	p.logger.Debug("Fault alert published",
		slog.String("request_id", event.RequestID),
		slog.String("path", event.Path),
	)

	return nil
}

// Close flushes pending sends and releases the topic
func (p *TopicPublisher) Close(ctx context.Context) error {
	return errors.WithStack(p.topic.Shutdown(ctx))
}
