package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const BorrowTopic = "library.borrows"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool { return len(c.Addrs) > 0 }

type EventType string

const (
	EventRequested EventType = "REQUESTED"
	EventCancelled EventType = "CANCELLED"
	EventApproved  EventType = "APPROVED"
	EventRejected  EventType = "REJECTED"
	EventReturned  EventType = "RETURNED"
)

// BorrowEvent is one step of a borrow request's lifecycle.
type BorrowEvent struct {
	Timestamp time.Time `json:"timestamp"`
	EventType EventType `json:"event_type"`
	RequestID int64     `json:"request_id,omitempty"`
	UserID    int64     `json:"user_id"`
	BookID    int64     `json:"book_id"`
	ActorID   int64     `json:"actor_id"`
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Errors = true
	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}

type EventLog struct {
	producer sarama.AsyncProducer
	topic    string
	log      *zap.Logger
	done     chan struct{}
}

func NewEventLog(producer sarama.AsyncProducer, topic string, log *zap.Logger) *EventLog {
	l := &EventLog{
		producer: producer,
		topic:    topic,
		log:      log.Named("events"),
		done:     make(chan struct{}),
	}
	go l.drainErrors()
	return l
}

func (l *EventLog) drainErrors() {
	defer close(l.done)
	for perr := range l.producer.Errors() {
		l.log.Warn("produce", zap.String("topic", perr.Msg.Topic), zap.Error(perr.Err))
	}
}

func (l *EventLog) Publish(_ context.Context, ev BorrowEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	l.producer.Input() <- &sarama.ProducerMessage{
		Topic: l.topic,
		Key:   sarama.StringEncoder(ev.EventType),
		Value: sarama.ByteEncoder(data),
	}
	return nil
}

func (l *EventLog) Close() error {
	l.producer.AsyncClose()
	<-l.done
	return nil
}

// Nop drops every event; used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, BorrowEvent) error { return nil }
func (Nop) Close() error                               { return nil }
