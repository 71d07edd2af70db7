package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// DefaultSubjectPrefix is the first token of every subject published
const DefaultSubjectPrefix = "ohhell.games"

// NATSConfig holds configuration for the NATS publisher
type NATSConfig struct {
	// Conn is an established NATS connection
	Conn *nats.Conn

	// SubjectPrefix replaces DefaultSubjectPrefix when set
	SubjectPrefix string
}

// NATSPublisher publishes events as JSON on <prefix>.<game id>.<type>
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
}

// NewNATS creates a publisher on an existing connection
func NewNATS(cfg *NATSConfig) (*NATSPublisher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Conn == nil {
		return nil, errors.New("nats connection cannot be nil")
	}

	prefix := strings.Trim(cfg.SubjectPrefix, ". ")
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	return &NATSPublisher{
		conn:   cfg.Conn,
		prefix: prefix,
	}, nil
}

// Connect dials a NATS server with reconnect settings suited to a long-running service
func Connect(url, name string) (*nats.Conn, error) {
	if url == "" {
		url = nats.DefaultURL
	}

	opts := []nats.Option{
		nats.Name(name),
		nats.Timeout(10 * time.Second),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
	}
	return nats.Connect(url, opts...)
}

// Subject returns the subject an event is published on
func Subject(prefix string, event *Event) string {
	return fmt.Sprintf("%s.%s.%s", prefix, event.GameID, event.Type)
}

// Publish sends an event
func (p *NATSPublisher) Publish(ctx context.Context, event *Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.conn.Publish(Subject(p.prefix, event), data); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	return nil
}
