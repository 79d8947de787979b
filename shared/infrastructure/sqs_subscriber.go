package infrastructure

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/philippedeb/order-system/shared/events"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var _ events.Subscriber = (*SQSSubscriber)(nil)

type sqsSubscriberOptions struct {
	workers             int
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	visibilityTimeout   int32
	sleepAfterError     time.Duration
}

// SQSSubscriberOption customizes subscriber behavior
type SQSSubscriberOption func(*sqsSubscriberOptions)

// WithWorkers sets the number of concurrent message handlers
func WithWorkers(workers int) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.workers = workers
	}
}

// WithVisibilityTimeout sets the message visibility timeout in seconds
func WithVisibilityTimeout(timeout int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.visibilityTimeout = timeout
	}
}

// SQSSubscriber consumes domain events from an SQS queue and dispatches
// them to a handler. Messages are deleted only after the handler
// returns nil, so failed messages reappear after the visibility timeout.
type SQSSubscriber struct {
	client   *sqs.Client
	queueURL string
	options  sqsSubscriberOptions

	running atomic.Bool
	cancel  context.CancelFunc
}

// NewSQSSubscriber creates a subscriber using the default AWS config
func NewSQSSubscriber(ctx context.Context, queueURL string, opts ...SQSSubscriberOption) (*SQSSubscriber, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	options := sqsSubscriberOptions{
		workers:             10,
		maxNumberOfMessages: 5,
		waitTimeSeconds:     15,
		visibilityTimeout:   30,
		sleepAfterError:     5 * time.Second,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &SQSSubscriber{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
		options:  options,
	}, nil
}

// Subscribe starts the receive loop and blocks until the context is
// cancelled or Close is called.
func (s *SQSSubscriber) Subscribe(ctx context.Context, handler events.EventHandler) error {
	if !s.running.CompareAndSwap(false, true) {
		return errors.New("subscriber is already running")
	}
	defer s.running.Store(false)

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		out, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(s.queueURL),
			MaxNumberOfMessages: s.options.maxNumberOfMessages,
			WaitTimeSeconds:     s.options.waitTimeSeconds,
			VisibilityTimeout:   s.options.visibilityTimeout,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			time.Sleep(s.options.sleepAfterError)
			continue
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.options.workers)
		for _, msg := range out.Messages {
			msg := msg
			g.Go(func() error {
				s.handleMessage(gctx, msg, handler)
				return nil
			})
		}
		g.Wait() //nolint:errcheck // handler outcomes are per-message
	}
}

func (s *SQSSubscriber) handleMessage(ctx context.Context, msg types.Message, handler events.EventHandler) {
	event, err := s.decodeMessage(msg)
	if err != nil {
		// Malformed messages are dropped; redelivery would never succeed
		s.deleteMessage(ctx, msg)
		return
	}

	if err := handler.Handle(ctx, event); err != nil {
		// Leave the message in flight so it reappears after the
		// visibility timeout.
		return
	}

	s.deleteMessage(ctx, msg)
}

// decodeMessage unwraps the SNS envelope and reconstructs the event
func (s *SQSSubscriber) decodeMessage(msg types.Message) (*events.Event, error) {
	if msg.Body == nil {
		return nil, errors.New("empty message body")
	}

	body := []byte(*msg.Body)

	// SNS -> SQS subscriptions without raw delivery wrap the payload
	var envelope struct {
		Message string `json:"Message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		body = []byte(envelope.Message)
	}

	var wire snsMessage
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal message")
	}

	topic, err := events.NewTopic(wire.Topic)
	if err != nil {
		return nil, err
	}

	return &events.Event{
		ID:        models.ID(wire.ID),
		Topic:     topic,
		Data:      wire.Payload,
		Metadata:  wire.Metadata,
		Timestamp: wire.Timestamp,
	}, nil
}

func (s *SQSSubscriber) deleteMessage(ctx context.Context, msg types.Message) {
	s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{ //nolint:errcheck
		QueueUrl:      aws.String(s.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
}

// Close stops the receive loop
func (s *SQSSubscriber) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}
