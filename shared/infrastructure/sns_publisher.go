package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/philippedeb/order-system/shared/events"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var _ events.Publisher = (*SNSPublisher)(nil)

const maxBatchSize = 10

// snsMessage is the wire envelope published to SNS
type snsMessage struct {
	ID        string          `json:"id"`
	Metadata  events.Metadata `json:"metadata"`
	Topic     string          `json:"topic"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// SNSPublisher publishes domain events to an SNS topic
type SNSPublisher struct {
	client   *sns.Client
	topicArn string
}

// NewSNSPublisher creates a publisher using the default AWS config
// (works against LocalStack when AWS_ENDPOINT_URL is set)
func NewSNSPublisher(ctx context.Context, topicArn string) (*SNSPublisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}
	return NewSNSPublisherWithClient(sns.NewFromConfig(cfg), topicArn), nil
}

// NewSNSPublisherWithClient creates a publisher with an existing client
func NewSNSPublisherWithClient(client *sns.Client, topicArn string) *SNSPublisher {
	return &SNSPublisher{
		client:   client,
		topicArn: topicArn,
	}
}

// Publish publishes events in batches of at most maxBatchSize
func (p *SNSPublisher) Publish(ctx context.Context, evts ...*events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	gr, ctx := errgroup.WithContext(ctx)
	for _, batch := range splitToChunks(evts, maxBatchSize) {
		batch := batch
		gr.Go(func() error {
			return p.batchPublish(ctx, batch)
		})
	}
	return gr.Wait()
}

func (p *SNSPublisher) batchPublish(ctx context.Context, evts []*events.Event) error {
	requests := make([]types.PublishBatchRequestEntry, len(evts))

	for i, event := range evts {
		payload, err := event.MarshalPayload()
		if err != nil {
			return errors.Wrap(err, "failed to marshal payload")
		}

		message := &snsMessage{
			ID:        event.ID.String(),
			Metadata:  event.Metadata,
			Topic:     event.Topic.String(),
			Payload:   payload,
			Timestamp: event.Timestamp,
		}

		msgJSON, err := json.Marshal(message)
		if err != nil {
			return errors.Wrap(err, "failed to marshal message")
		}

		attrs := map[string]types.MessageAttributeValue{
			"topic": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.Topic.String()),
			},
		}
		for k, v := range event.Metadata {
			attrs[k] = types.MessageAttributeValue{
				DataType:    aws.String("String"),
				StringValue: aws.String(v),
			}
		}

		requests[i] = types.PublishBatchRequestEntry{
			Id:                aws.String(event.ID.String()),
			Message:           aws.String(string(msgJSON)),
			MessageAttributes: attrs,
		}
	}

	_, err := p.client.PublishBatch(ctx, &sns.PublishBatchInput{
		TopicArn:                   &p.topicArn,
		PublishBatchRequestEntries: requests,
	})
	return errors.Wrap(err, "failed to publish batch to SNS")
}

// Close closes the publisher
func (p *SNSPublisher) Close() error {
	// the SNS client holds no connections that need closing
	return nil
}

func splitToChunks[T any](slice []T, chunkSize int) [][]T {
	var chunks [][]T
	for i := 0; i < len(slice); i += chunkSize {
		end := i + chunkSize
		if end > len(slice) {
			end = len(slice)
		}
		chunks = append(chunks, slice[i:end])
	}
	return chunks
}
