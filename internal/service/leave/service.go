package leave

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
	"github.com/staffdesk/backoffice-go/internal/domain/employee"
	"github.com/staffdesk/backoffice-go/internal/domain/leave"
	"github.com/staffdesk/backoffice-go/internal/pkg/validator"
)

// TxRunner executes fn inside a database transaction; repository calls
// made with the inner context share it.
type TxRunner = func(ctx context.Context, fn func(ctx context.Context) error) error

type LeaveServiceImpl struct {
	tx TxRunner
	leave.RequestRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	tx TxRunner,
	requestRepo leave.RequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	if tx == nil {
		tx = func(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }
	}
	return &LeaveServiceImpl{
		tx:                 tx,
		RequestRepository:  requestRepo,
		EmployeeRepository: employeeRepo,
	}
}

// CreateRequest implements leave.LeaveService.
// The balance is checked at request time against the counter the leave
// type targets by default; the reviewer may still redirect the debit
// later. No partial grant happens, a request either fits or fails.
func (l *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	emp, err := l.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsActive {
		return leave.RequestResponse{}, employee.ErrEmployeeInactive
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	days := leave.InclusiveDays(start, end)

	request := leave.Request{
		EmployeeID: emp.ID,
		LeaveType:  attendance.LeaveType(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	if counter, debits := request.DebitCounter(false); debits {
		if available := emp.Balance(counter); available < days {
			return leave.RequestResponse{}, &leave.InsufficientBalanceError{
				Counter:   string(counter),
				Requested: days,
				Available: available,
			}
		}
	}

	created, err := l.RequestRepository.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapRequestToResponse(created), nil
}

// Review implements leave.LeaveService.
// Approval debits the employee's balance; rejection touches nothing.
// A request that has already been reviewed cannot be reviewed again,
// so a debit is applied at most once.
func (l *LeaveServiceImpl) Review(ctx context.Context, reviewerID string, req leave.ReviewRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	request, err := l.RequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, leave.ErrRequestNotFound) {
			return leave.RequestResponse{}, leave.ErrRequestNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := time.Now().UTC()
	request.Status = leave.RequestStatus(req.Status)
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &now
	request.DeductFromEmergency = req.DeductFromEmergency

	// The debit and the status change must land together, otherwise a
	// failed update would leave the balance charged for a pending request.
	err = l.tx(ctx, func(ctx context.Context) error {
		if request.Status == leave.StatusApproved {
			if counter, debits := request.DebitCounter(req.DeductFromEmergency); debits {
				emp, err := l.EmployeeRepository.GetByID(ctx, request.EmployeeID)
				if err != nil {
					return fmt.Errorf("failed to get employee: %w", err)
				}
				if available := emp.Balance(counter); available < request.Days {
					return &leave.InsufficientBalanceError{
						Counter:   string(counter),
						Requested: request.Days,
						Available: available,
					}
				}
				if err := l.EmployeeRepository.DebitLeaveBalance(ctx, request.EmployeeID, counter, request.Days); err != nil {
					return fmt.Errorf("failed to debit leave balance: %w", err)
				}
			}
		}

		if err := l.RequestRepository.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return mapRequestToResponse(request), nil
}

// GetRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetRequest(ctx context.Context, id string) (leave.RequestResponse, error) {
	request, err := l.RequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrRequestNotFound) {
			return leave.RequestResponse{}, leave.ErrRequestNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return mapRequestToResponse(request), nil
}

// ListRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.Filter) (leave.ListRequestsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	requests, total, err := l.RequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListRequestsResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, mapRequestToResponse(r))
	}

	return leave.ListRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Requests:   responses,
	}, nil
}

func mapRequestToResponse(r leave.Request) leave.RequestResponse {
	resp := leave.RequestResponse{
		ID:                  r.ID,
		EmployeeID:          r.EmployeeID,
		EmployeeName:        r.EmployeeName,
		LeaveType:           string(r.LeaveType),
		StartDate:           r.StartDate.Format("2006-01-02"),
		EndDate:             r.EndDate.Format("2006-01-02"),
		Days:                r.Days,
		Reason:              r.Reason,
		Status:              string(r.Status),
		ReviewedBy:          r.ReviewedBy,
		DeductFromEmergency: r.DeductFromEmergency,
	}
	if r.ReviewedAt != nil {
		formatted := r.ReviewedAt.Format("2006-01-02 15:04:05")
		resp.ReviewedAt = &formatted
	}
	return resp
}
