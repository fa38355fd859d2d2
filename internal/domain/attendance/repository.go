package attendance

import (
	"context"
	"time"
)

// RecordRepository defines data access for daily attendance records.
// The (employee_id, date) unique index is the serialization point for
// concurrent check-ins; Create surfaces a duplicate insert as
// ErrRecordExists.
type RecordRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	Update(ctx context.Context, record Record) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter Filter) ([]Record, int64, error)

	// ListByEmployeeAndRange feeds the monthly aggregator.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)
}
