package leave

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/backoffice-go/internal/domain/employee"
	"github.com/staffdesk/backoffice-go/internal/domain/leave"
)

type fakeRequestRepo struct {
	requests map[string]leave.Request
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]leave.Request)}
}

func (f *fakeRequestRepo) Create(_ context.Context, r leave.Request) (leave.Request, error) {
	r.ID = uuid.NewString()
	f.requests[r.ID] = r
	return r, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id string) (leave.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return r, nil
}

func (f *fakeRequestRepo) Update(_ context.Context, r leave.Request) error {
	f.requests[r.ID] = r
	return nil
}

func (f *fakeRequestRepo) List(_ context.Context, _ leave.Filter) ([]leave.Request, int64, error) {
	out := make([]leave.Request, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	debits    []struct {
		Counter employee.LeaveCounter
		Days    int
	}
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		f.employees[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ bool) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) UpdateBaseSalary(_ context.Context, _ string, _ decimal.Decimal, _ string) error {
	return nil
}

func (f *fakeEmployeeRepo) DebitLeaveBalance(_ context.Context, id string, counter employee.LeaveCounter, days int) error {
	e := f.employees[id]
	if counter == employee.CounterEmergency {
		e.EmergencyBalance -= days
	} else {
		e.AnnualBalance -= days
	}
	f.employees[id] = e
	f.debits = append(f.debits, struct {
		Counter employee.LeaveCounter
		Days    int
	}{counter, days})
	return nil
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:               "emp-1",
		AnnualBalance:    21,
		EmergencyBalance: 7,
		IsActive:         true,
	}
}

func TestCreateRequestRejectsOverdraft(t *testing.T) {
	svc := NewLeaveService(nil, newFakeRequestRepo(), newFakeEmployeeRepo(testEmployee()))

	_, err := svc.CreateRequest(context.Background(), leave.CreateRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "annual",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-26",
		Reason:     "extended trip",
	})

	var insufficient *leave.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "annual", insufficient.Counter)
	assert.Equal(t, 25, insufficient.Requested)
	assert.Equal(t, 21, insufficient.Available)
}

func TestCreateRequestUnpaidSkipsBalanceCheck(t *testing.T) {
	emp := testEmployee()
	emp.AnnualBalance = 0
	emp.EmergencyBalance = 0
	svc := NewLeaveService(nil, newFakeRequestRepo(), newFakeEmployeeRepo(emp))

	resp, err := svc.CreateRequest(context.Background(), leave.CreateRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "unpaid",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
		Reason:     "personal matter",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Days)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
}

func TestReviewApprovalDebitsBalance(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	employeeRepo := newFakeEmployeeRepo(testEmployee())
	svc := NewLeaveService(nil, requestRepo, employeeRepo)

	created, err := svc.CreateRequest(context.Background(), leave.CreateRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "annual",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-04",
		Reason:     "family visit",
	})
	require.NoError(t, err)

	resp, err := svc.Review(context.Background(), "manager-1", leave.ReviewRequestRequest{
		ID:     created.ID,
		Status: string(leave.StatusApproved),
	})

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)
	require.Len(t, employeeRepo.debits, 1)
	assert.Equal(t, employee.CounterAnnual, employeeRepo.debits[0].Counter)
	assert.Equal(t, 3, employeeRepo.debits[0].Days)
	assert.Equal(t, 18, employeeRepo.employees["emp-1"].AnnualBalance)
}

func TestReviewEmergencyOverrideRedirectsDebit(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	employeeRepo := newFakeEmployeeRepo(testEmployee())
	svc := NewLeaveService(nil, requestRepo, employeeRepo)

	created, err := svc.CreateRequest(context.Background(), leave.CreateRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "sick",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-03",
		Reason:     "flu",
	})
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), "manager-1", leave.ReviewRequestRequest{
		ID:                  created.ID,
		Status:              string(leave.StatusApproved),
		DeductFromEmergency: true,
	})

	require.NoError(t, err)
	require.Len(t, employeeRepo.debits, 1)
	assert.Equal(t, employee.CounterEmergency, employeeRepo.debits[0].Counter)
	assert.Equal(t, 21, employeeRepo.employees["emp-1"].AnnualBalance)
	assert.Equal(t, 5, employeeRepo.employees["emp-1"].EmergencyBalance)
}

func TestReviewRejectionLeavesBalancesUntouched(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	employeeRepo := newFakeEmployeeRepo(testEmployee())
	svc := NewLeaveService(nil, requestRepo, employeeRepo)

	created, err := svc.CreateRequest(context.Background(), leave.CreateRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "annual",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-04",
		Reason:     "family visit",
	})
	require.NoError(t, err)

	resp, err := svc.Review(context.Background(), "manager-1", leave.ReviewRequestRequest{
		ID:     created.ID,
		Status: string(leave.StatusRejected),
	})

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), resp.Status)
	assert.Empty(t, employeeRepo.debits)
	assert.Equal(t, 21, employeeRepo.employees["emp-1"].AnnualBalance)
}

func TestReviewTwiceFails(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	svc := NewLeaveService(nil, requestRepo, newFakeEmployeeRepo(testEmployee()))

	created, err := svc.CreateRequest(context.Background(), leave.CreateRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "emergency",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-02",
		Reason:     "urgent",
	})
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), "manager-1", leave.ReviewRequestRequest{
		ID:     created.ID,
		Status: string(leave.StatusApproved),
	})
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), "manager-1", leave.ReviewRequestRequest{
		ID:     created.ID,
		Status: string(leave.StatusRejected),
	})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}
