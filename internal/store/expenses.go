package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kurir/internal/model"
	"kurir/internal/notify"
)

// Expenses returns the expense collection.
func (s *Store) Expenses(ctx context.Context) ([]model.Expense, error) {
	return loadCollection[model.Expense](ctx, s, KeyExpenses)
}

// SaveExpenses replaces the expense collection.
func (s *Store) SaveExpenses(ctx context.Context, expenses []model.Expense) error {
	return saveCollection(ctx, s, KeyExpenses, notify.TopicExpenses, expenses)
}

// AddExpense appends a new expense.
func (s *Store) AddExpense(ctx context.Context, e model.Expense) (*model.Expense, error) {
	if e.Amount < 0 {
		return nil, fmt.Errorf("expense amount cannot be negative")
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	expenses, err := s.Expenses(ctx)
	if err != nil {
		return nil, err
	}
	expenses = append(expenses, e)
	if err := s.SaveExpenses(ctx, expenses); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateExpense loads the collection, applies fn to the matching record and
// saves. Returns nil if no record matches.
func (s *Store) UpdateExpense(ctx context.Context, id string, fn func(*model.Expense)) (*model.Expense, error) {
	expenses, err := s.Expenses(ctx)
	if err != nil {
		return nil, err
	}
	for i := range expenses {
		if expenses[i].ID != id {
			continue
		}
		fn(&expenses[i])
		expenses[i].ID = id
		if expenses[i].Amount < 0 {
			return nil, fmt.Errorf("expense amount cannot be negative")
		}
		if err := s.SaveExpenses(ctx, expenses); err != nil {
			return nil, err
		}
		updated := expenses[i]
		return &updated, nil
	}
	return nil, nil
}

// RemoveExpense deletes an expense. Returns false if no record matches.
func (s *Store) RemoveExpense(ctx context.Context, id string) (bool, error) {
	expenses, err := s.Expenses(ctx)
	if err != nil {
		return false, err
	}
	for i := range expenses {
		if expenses[i].ID != id {
			continue
		}
		expenses = append(expenses[:i], expenses[i+1:]...)
		if err := s.SaveExpenses(ctx, expenses); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
