package store

import (
	"context"
	"encoding/json"
	"fmt"

	"kurir/internal/model"
	"kurir/internal/notify"
)

// CompanyInfo returns the single company record. An absent or malformed
// payload reads as an empty record.
func (s *Store) CompanyInfo(ctx context.Context) (model.CompanyInfo, error) {
	var info model.CompanyInfo

	raw, err := s.kv.Load(ctx, KeyCompanyInfo)
	if err != nil {
		return info, fmt.Errorf("loading %s: %w", KeyCompanyInfo, err)
	}
	if len(raw) == 0 {
		return info, nil
	}
	if err := json.Unmarshal(raw, &info); err != nil {
		return model.CompanyInfo{}, nil
	}
	return info, nil
}

// SetCompanyInfo replaces the company record.
func (s *Store) SetCompanyInfo(ctx context.Context, info model.CompanyInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", KeyCompanyInfo, err)
	}
	if err := s.kv.Save(ctx, KeyCompanyInfo, raw); err != nil {
		return fmt.Errorf("saving %s: %w", KeyCompanyInfo, err)
	}
	s.bus.Publish(notify.TopicCompanyInfo)
	return nil
}
