package alert

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"users/config"
	"users/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTopicPublisher_PublishFault(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	topic := mempubsub.NewTopic()
	sub := mempubsub.NewSubscription(topic, time.Minute)
	defer sub.Shutdown(ctx)

	publisher := NewTopicPublisher(topic, "ops@example.com", newDiscardLogger())
	defer publisher.Close(ctx)

	occurred := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	err := publisher.PublishFault(ctx, &service.FaultEvent{
		RequestID:  "req-1",
		Service:    "users",
		Method:     "GET",
		Path:       "/list",
		Error:      "boom",
		OccurredAt: occurred,
	})
	require.NoError(t, err)

	msg, err := sub.Receive(ctx)
	require.NoError(t, err)
	msg.Ack()

	assert.Equal(t, "req-1", msg.Metadata["request_id"])
	assert.Equal(t, "/list", msg.Metadata["path"])

	var got service.FaultEvent
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, "ops@example.com", got.Recipient)
	assert.Equal(t, "boom", got.Error)
	assert.True(t, occurred.Equal(got.OccurredAt))
}

func TestTopicPublisher_KeepsExplicitRecipient(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	topic := mempubsub.NewTopic()
	sub := mempubsub.NewSubscription(topic, time.Minute)
	defer sub.Shutdown(ctx)

	publisher := NewTopicPublisher(topic, "ops@example.com", newDiscardLogger())
	defer publisher.Close(ctx)

	require.NoError(t, publisher.PublishFault(ctx, &service.FaultEvent{Recipient: "dev@example.com", Path: "/x"}))

	msg, err := sub.Receive(ctx)
	require.NoError(t, err)
	msg.Ack()

	var got service.FaultEvent
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, "dev@example.com", got.Recipient)
}

func TestNewAlertPublisher_NoopWhenDisabled(t *testing.T) {
	tests := []struct {
		name   string
		alerts *config.AlertsConfig
		debug  bool
	}{
		{name: "not configured", alerts: nil},
		{name: "empty topic", alerts: &config.AlertsConfig{}},
		{name: "debug mutes alerts", alerts: &config.AlertsConfig{TopicURL: "mem://muted"}, debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Alerts: tt.alerts}
			cfg.Env.Debug = tt.debug

			publisher, err := NewAlertPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: cfg,
				Logger: newDiscardLogger(),
			})
			require.NoError(t, err)

			assert.IsType(t, &noopPublisher{}, publisher)
			assert.NoError(t, publisher.PublishFault(context.Background(), &service.FaultEvent{Path: "/health"}))
			assert.NoError(t, publisher.Close(context.Background()))
		})
	}
}

func TestNewAlertPublisher_MemoryTopic(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	const topicURL = "mem://alerts-provider-test"
	cfg := &config.Config{Alerts: &config.AlertsConfig{TopicURL: topicURL, Recipient: "ops@example.com"}}

	lc := fxtest.NewLifecycle(t)
	publisher, err := NewAlertPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    ctx,
		Config: cfg,
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &TopicPublisher{}, publisher)

	lc.RequireStart()

	sub, err := pubsub.OpenSubscription(ctx, topicURL)
	require.NoError(t, err)
	defer sub.Shutdown(ctx)

	require.NoError(t, publisher.PublishFault(ctx, &service.FaultEvent{Service: "users", Path: "/list"}))

	msg, err := sub.Receive(ctx)
	require.NoError(t, err)
	msg.Ack()
	assert.Equal(t, "users", msg.Metadata["service"])

	lc.RequireStop()
}

func TestNewAlertPublisher_UnknownScheme(t *testing.T) {
	cfg := &config.Config{Alerts: &config.AlertsConfig{TopicURL: "bogus://topic"}}

	_, err := NewAlertPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: newDiscardLogger(),
	})
	assert.Error(t, err)
}
