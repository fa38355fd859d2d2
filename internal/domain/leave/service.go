package leave

import "context"

type LeaveService interface {
	CreateRequest(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	Review(ctx context.Context, reviewerID string, req ReviewRequestRequest) (RequestResponse, error)
	GetRequest(ctx context.Context, id string) (RequestResponse, error)
	ListRequests(ctx context.Context, filter Filter) (ListRequestsResponse, error)
}
