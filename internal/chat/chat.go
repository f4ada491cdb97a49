// Package chat is the message exchange between admin and customer for a
// shipping request. There is no push transport: each open conversation
// re-reads the message collection on a fixed period and marks the other
// side's messages read as it goes.
package chat

import (
	"context"
	"sort"
	"time"

	"kurir/internal/model"
	"kurir/internal/store"
)

// Polling periods per view.
const (
	ChatInterval   = 5 * time.Second  // chat view
	StatusInterval = 10 * time.Second // status-tracking view
)

// Read returns the conversation for a request, sorted ascending by creation
// time. As a side effect every unread message authored by the other role is
// marked read; a role never flips its own messages. The collection is only
// persisted when something actually changed.
func Read(ctx context.Context, s *store.Store, requestID, role string) ([]model.Message, error) {
	messages, err := s.Messages(ctx)
	if err != nil {
		return nil, err
	}

	other := model.OtherRole(role)
	changed := false
	var conversation []model.Message
	for i := range messages {
		if messages[i].RequestID != requestID {
			continue
		}
		if messages[i].SenderType == other && !messages[i].Read {
			messages[i].Read = true
			changed = true
		}
		conversation = append(conversation, messages[i])
	}

	if changed {
		if err := s.SaveMessages(ctx, messages); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(conversation, func(i, j int) bool {
		return conversation[i].CreatedAt.Before(conversation[j].CreatedAt)
	})
	return conversation, nil
}

// UnreadCount returns how many messages from the other role are still
// unread, for badge display. Unlike Read it has no side effects.
func UnreadCount(ctx context.Context, s *store.Store, requestID, role string) (int, error) {
	messages, err := s.Messages(ctx)
	if err != nil {
		return 0, err
	}

	other := model.OtherRole(role)
	count := 0
	for _, m := range messages {
		if m.RequestID == requestID && m.SenderType == other && !m.Read {
			count++
		}
	}
	return count, nil
}

// Send appends a message to the conversation and immediately re-reads it
// (the sender's view must not wait for the next poll tick). The returned
// slice is the refreshed conversation.
func Send(ctx context.Context, s *store.Store, requestID, role, senderName, text string) ([]model.Message, error) {
	_, err := s.AppendMessage(ctx, model.Message{
		RequestID:  requestID,
		SenderType: role,
		SenderName: senderName,
		Message:    text,
	})
	if err != nil {
		return nil, err
	}
	return Read(ctx, s, requestID, role)
}
