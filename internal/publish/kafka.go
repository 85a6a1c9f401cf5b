// Package publish streams generated books to Kafka, one message per book.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"bookstoretester/internal/book"

	gokafka "github.com/segmentio/kafka-go"
)

// NewWriter returns a synchronous writer that hashes keys to partitions, so
// every message for a given seed and index lands on the same partition.
func NewWriter(brokers []string, topic string) *gokafka.Writer {
	return &gokafka.Writer{
		Addr:         gokafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: gokafka.RequireOne,
		Balancer:     &gokafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		BatchSize:    1000,
		BatchBytes:   16 * 1024 * 1024, // 16MB
		Compression:  gokafka.Snappy,
	}
}

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...gokafka.Message) error
}

// Envelope is the JSON value of each message. It carries the generation
// parameters so a consumer can regenerate or verify the book.
type Envelope struct {
	Locale     string    `json:"locale"`
	Seed       int32     `json:"seed"`
	AvgLikes   float64   `json:"likes"`
	AvgReviews float64   `json:"reviews"`
	Book       book.Book `json:"book"`
}

type Publisher struct {
	w MessageWriter
}

func NewPublisher(w MessageWriter) *Publisher {
	return &Publisher{w: w}
}

// Key identifies a book across runs: "{seed}-{index}".
func Key(seed int32, index int) string {
	return strconv.FormatInt(int64(seed), 10) + "-" + strconv.Itoa(index)
}

// Messages builds one message per book, in order.
func Messages(p book.Params, books []book.Book) ([]gokafka.Message, error) {
	tag := p.Locale.Tag()
	msgs := make([]gokafka.Message, 0, len(books))
	for _, b := range books {
		value, err := json.Marshal(Envelope{
			Locale:     tag,
			Seed:       p.Seed,
			AvgLikes:   p.AvgLikes,
			AvgReviews: p.AvgReviews,
			Book:       b,
		})
		if err != nil {
			return nil, fmt.Errorf("encode book %d: %w", b.Index, err)
		}
		msgs = append(msgs, gokafka.Message{
			Key:   []byte(Key(p.Seed, b.Index)),
			Value: value,
			Headers: []gokafka.Header{
				{Key: "locale", Value: []byte(tag)},
			},
		})
	}
	return msgs, nil
}

// Publish writes books generated with p as a single batch.
func (pub *Publisher) Publish(ctx context.Context, p book.Params, books []book.Book) error {
	if len(books) == 0 {
		return nil
	}
	msgs, err := Messages(p, books)
	if err != nil {
		return err
	}
	if err := pub.w.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d messages: %w", len(msgs), err)
	}
	return nil
}
