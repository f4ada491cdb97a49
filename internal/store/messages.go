package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kurir/internal/model"
	"kurir/internal/notify"
)

// Messages returns the full message collection (flat, not partitioned by
// request).
func (s *Store) Messages(ctx context.Context) ([]model.Message, error) {
	return loadCollection[model.Message](ctx, s, KeyMessages)
}

// SaveMessages replaces the message collection.
func (s *Store) SaveMessages(ctx context.Context, messages []model.Message) error {
	return saveCollection(ctx, s, KeyMessages, notify.TopicMessages, messages)
}

// AppendMessage appends a new message with Read unset.
func (s *Store) AppendMessage(ctx context.Context, m model.Message) (*model.Message, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	m.Read = false

	messages, err := s.Messages(ctx)
	if err != nil {
		return nil, err
	}
	messages = append(messages, m)
	if err := s.SaveMessages(ctx, messages); err != nil {
		return nil, err
	}
	return &m, nil
}
