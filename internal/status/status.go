// Package status persists the lightweight "status check" pings clients send
// to verify end-to-end connectivity.
package status

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Check struct {
	ID         uuid.UUID
	ClientName string
	CreatedAt  time.Time
}

type Store interface {
	Insert(ctx context.Context, c Check) error
	ListAll(ctx context.Context) ([]Check, error)
}
