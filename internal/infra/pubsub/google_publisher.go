package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// topicPublisher sends each sync failure as one message on a Pub/Sub topic.
// The JSON event is the payload; attributes repeat the fields the worker routes on.
type topicPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewTopicPublisher connects to projectID and fails fast when topicID does not exist.
func NewTopicPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "sync failure topic %s", topic)
	}

	logger.Info("Sync failures are published to Pub/Sub", slog.String("topic", topic))

	return &topicPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishSyncFailure blocks until Pub/Sub acknowledges the message.
func (p *topicPublisher) PublishSyncFailure(ctx context.Context, event *service.SyncFailureEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	messageID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       payload,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish sync failure %s", event.NotificationID)
	}

	p.logger.Debug("Sync failure published",
		slog.String("notification_id", event.NotificationID),
		slog.String("message_id", messageID),
	)

	return nil
}

// Close flushes pending messages, then closes the client.
func (p *topicPublisher) Close() error {
	p.publisher.Stop()

	return errors.Wrapf(p.client.Close(), "close pubsub client for %s", p.topic)
}
