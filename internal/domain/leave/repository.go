package leave

import "context"

type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	Update(ctx context.Context, request Request) error
	List(ctx context.Context, filter Filter) ([]Request, int64, error)
}
