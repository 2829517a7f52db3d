package store

import (
	"context"
	"time"

	"athena.merchant/go-api/pkg/models"
)

// Provider supplies the store metrics attached to every question.
type Provider interface {
	FetchStoreData(ctx context.Context) (*models.StoreSnapshot, error)
}

// MockProvider serves the demo data set. Now defaults to time.Now and only
// affects the date fields.
type MockProvider struct {
	Now func() time.Time
}

func NewMockProvider() *MockProvider {
	return &MockProvider{Now: time.Now}
}

func (p *MockProvider) FetchStoreData(ctx context.Context) (*models.StoreSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now
	if p != nil && p.Now != nil {
		now = p.Now
	}
	return MockStoreData(now().UTC()), nil
}
