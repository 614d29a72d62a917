// Package alert publishes fault events to a Go CDK pub/sub topic.
package alert

import (
	"context"
	"log/slog"

	"users/config"
	"users/internal/domain/service"
	"users/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/pubsub"
)

// noopPublisher is used when no topic is configured or alerts are muted in debug mode
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishFault(ctx context.Context, event *service.FaultEvent) error {
	p.logger.Debug("Fault alert publishing disabled, skipping",
		slog.String("request_id", event.RequestID),
		slog.String("path", event.Path),
	)

	return nil
}

func (p *noopPublisher) Close(ctx context.Context) error {
	return nil
}

// PublisherParams holds dependencies for AlertPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAlertPublisher opens the configured topic, or returns a no-op publisher.
func NewAlertPublisher(params PublisherParams) (service.AlertPublisher, error) {
	cfg := params.Config.Alerts
	logger := params.Logger

	if cfg == nil || cfg.TopicURL == "" {
		logger.Info("Fault alerts not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	if params.Config.Env.Debug {
		logger.Info("Debug mode, fault alerts muted")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := OpenTopicPublisher(params.Ctx, cfg.TopicURL, cfg.Recipient, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing fault alert publisher")

			return publisher.Close(ctx)
		},
	})

	return publisher, nil
}

// OpenTopicPublisher opens a topic by URL, e.g. "mem://alerts" or
// "gcppubsub://projects/p/topics/t". The scheme's driver must be linked in.
func OpenTopicPublisher(ctx context.Context, topicURL, recipient string, logger *slog.Logger) (*TopicPublisher, error) {
	topic, err := pubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open alert topic %s", topicURL)
	}

	logger.Info("Fault alert publisher initialized", slog.String("topic_url", topicURL))

	return NewTopicPublisher(topic, recipient, logger), nil
}
