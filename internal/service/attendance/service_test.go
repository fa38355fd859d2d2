package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
	"github.com/staffdesk/backoffice-go/internal/domain/branch"
	"github.com/staffdesk/backoffice-go/internal/domain/company"
	"github.com/staffdesk/backoffice-go/internal/domain/employee"
)

type fakeRecordRepo struct {
	records map[string]attendance.Record

	// createErr forces the next Create to fail, standing in for a
	// concurrent insert losing the unique-index race.
	createErr error
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]attendance.Record)}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func (f *fakeRecordRepo) Create(_ context.Context, r attendance.Record) (attendance.Record, error) {
	if f.createErr != nil {
		return attendance.Record{}, f.createErr
	}
	for _, existing := range f.records {
		if existing.EmployeeID == r.EmployeeID && sameDay(existing.Date, r.Date) {
			return attendance.Record{}, attendance.ErrRecordExists
		}
	}
	r.ID = uuid.NewString()
	f.records[r.ID] = r
	return r, nil
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	r, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRecordRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && sameDay(r.Date, date) {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) Update(_ context.Context, r attendance.Record) error {
	if _, ok := f.records[r.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	f.records[r.ID] = r
	return nil
}

func (f *fakeRecordRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeRecordRepo) List(_ context.Context, _ attendance.Filter) ([]attendance.Record, int64, error) {
	out := make([]attendance.Record, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRecordRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if r.EmployeeID == employeeID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
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

func (f *fakeEmployeeRepo) DebitLeaveBalance(_ context.Context, _ string, _ employee.LeaveCounter, _ int) error {
	return nil
}

type fakeBranchRepo struct {
	branches map[string]branch.Branch
}

func newFakeBranchRepo(branches ...branch.Branch) *fakeBranchRepo {
	f := &fakeBranchRepo{branches: make(map[string]branch.Branch)}
	for _, b := range branches {
		f.branches[b.ID] = b
	}
	return f
}

func (f *fakeBranchRepo) Create(_ context.Context, b branch.Branch) (branch.Branch, error) {
	f.branches[b.ID] = b
	return b, nil
}

func (f *fakeBranchRepo) GetByID(_ context.Context, id string) (branch.Branch, error) {
	b, ok := f.branches[id]
	if !ok {
		return branch.Branch{}, branch.ErrBranchNotFound
	}
	return b, nil
}

func (f *fakeBranchRepo) List(_ context.Context) ([]branch.Branch, error) {
	out := make([]branch.Branch, 0, len(f.branches))
	for _, b := range f.branches {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBranchRepo) Update(_ context.Context, b branch.Branch) error {
	f.branches[b.ID] = b
	return nil
}

func (f *fakeBranchRepo) Delete(_ context.Context, id string) error {
	delete(f.branches, id)
	return nil
}

type fakeCompanyRepo struct {
	company company.Company
	err     error
}

func (f *fakeCompanyRepo) Get(_ context.Context) (company.Company, error) {
	if f.err != nil {
		return company.Company{}, f.err
	}
	return f.company, nil
}

func (f *fakeCompanyRepo) UpdateLocation(_ context.Context, _ string, _, _, _ float64) error {
	return nil
}

func activeEmployee() employee.Employee {
	e := employeeWithWorkLocation()
	e.IsActive = true
	return e
}

func newTestAttendanceService(t *testing.T, recordRepo *fakeRecordRepo, emps ...employee.Employee) attendance.AttendanceService {
	t.Helper()
	return NewAttendanceService(
		testPolicy(t),
		recordRepo,
		newFakeEmployeeRepo(emps...),
		newFakeBranchRepo(),
		&fakeCompanyRepo{err: company.ErrCompanyNotFound},
	)
}

func insideWorkFence(emp employee.Employee) (float64, float64) {
	return *emp.WorkLatitude, *emp.WorkLongitude
}

func strPtr(s string) *string { return &s }

func TestCheckInCreatesDayRecord(t *testing.T) {
	emp := activeEmployee()
	recordRepo := newFakeRecordRepo()
	svc := newTestAttendanceService(t, recordRepo, emp)

	lat, lon := insideWorkFence(emp)
	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID:      emp.ID,
		Latitude:        lat,
		Longitude:       lon,
		ClientTimestamp: strPtr("2026-03-02T09:05:00Z"),
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, 5, resp.LateMinutes)
	assert.Equal(t, attendance.AuthLocation, resp.AuthMethod)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "2026-03-02", resp.Date)
}

func TestCheckInTwiceSameDayConflicts(t *testing.T) {
	emp := activeEmployee()
	recordRepo := newFakeRecordRepo()
	svc := newTestAttendanceService(t, recordRepo, emp)

	lat, lon := insideWorkFence(emp)
	req := attendance.CheckInRequest{
		EmployeeID:      emp.ID,
		Latitude:        lat,
		Longitude:       lon,
		ClientTimestamp: strPtr("2026-03-02T09:05:00Z"),
	}

	_, err := svc.CheckIn(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.Len(t, recordRepo.records, 1)
}

func TestCheckInConcurrentInsertConflicts(t *testing.T) {
	// The day lookup sees no record, but the insert loses the
	// unique-index race to a concurrent check-in.
	emp := activeEmployee()
	recordRepo := newFakeRecordRepo()
	recordRepo.createErr = attendance.ErrRecordExists
	svc := newTestAttendanceService(t, recordRepo, emp)

	lat, lon := insideWorkFence(emp)
	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID:      emp.ID,
		Latitude:        lat,
		Longitude:       lon,
		ClientTimestamp: strPtr("2026-03-02T09:05:00Z"),
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInMergesIntoRecordWithoutClockIn(t *testing.T) {
	emp := activeEmployee()
	recordRepo := newFakeRecordRepo()
	svc := newTestAttendanceService(t, recordRepo, emp)

	leaveType := attendance.LeaveAnnual
	stub, err := recordRepo.Create(context.Background(), attendance.Record{
		EmployeeID: emp.ID,
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusLeave,
		LeaveType:  &leaveType,
	})
	require.NoError(t, err)

	lat, lon := insideWorkFence(emp)
	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID:      emp.ID,
		Latitude:        lat,
		Longitude:       lon,
		ClientTimestamp: strPtr("2026-03-02T09:05:00Z"),
	})
	require.NoError(t, err)

	assert.Equal(t, stub.ID, resp.ID)
	require.NotNil(t, resp.LeaveType)
	assert.Equal(t, attendance.LeaveAnnual, *resp.LeaveType)
	assert.Len(t, recordRepo.records, 1)
}

func TestCheckInInactiveEmployeeRejected(t *testing.T) {
	emp := activeEmployee()
	emp.IsActive = false
	svc := newTestAttendanceService(t, newFakeRecordRepo(), emp)

	lat, lon := insideWorkFence(emp)
	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		Latitude:   lat,
		Longitude:  lon,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestCheckOutWithoutCheckInFails(t *testing.T) {
	emp := activeEmployee()
	svc := newTestAttendanceService(t, newFakeRecordRepo(), emp)

	lat, lon := insideWorkFence(emp)
	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: emp.ID,
		Latitude:   lat,
		Longitude:  lon,
	})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutTwiceFails(t *testing.T) {
	emp := activeEmployee()
	recordRepo := newFakeRecordRepo()
	svc := newTestAttendanceService(t, recordRepo, emp)

	now := time.Now().UTC()
	checkIn := now.Add(-8 * time.Hour)
	checkOut := now.Add(-time.Hour)
	_, err := recordRepo.Create(context.Background(), attendance.Record{
		EmployeeID: emp.ID,
		Date:       dayOf(now),
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	lat, lon := insideWorkFence(emp)
	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: emp.ID,
		Latitude:   lat,
		Longitude:  lon,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOutClosesOpenSession(t *testing.T) {
	emp := activeEmployee()
	recordRepo := newFakeRecordRepo()
	svc := newTestAttendanceService(t, recordRepo, emp)

	now := time.Now().UTC()
	checkIn := now.Add(-8 * time.Hour)
	_, err := recordRepo.Create(context.Background(), attendance.Record{
		EmployeeID: emp.ID,
		Date:       dayOf(now),
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	lat, lon := insideWorkFence(emp)
	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: emp.ID,
		Latitude:   lat,
		Longitude:  lon,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CheckOut)
	require.NotNil(t, resp.WorkHours)
	assert.InDelta(t, 8.0, *resp.WorkHours, 0.01)
	require.NotNil(t, resp.OvertimeHours)
	assert.InDelta(t, 0.0, *resp.OvertimeHours, 0.01)
}

func TestManualEntryConflictsWithExistingRecord(t *testing.T) {
	emp := activeEmployee()
	recordRepo := newFakeRecordRepo()
	svc := newTestAttendanceService(t, recordRepo, emp)

	_, err := recordRepo.Create(context.Background(), attendance.Record{
		EmployeeID: emp.ID,
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusAbsent,
	})
	require.NoError(t, err)

	_, err = svc.ManualEntry(context.Background(), attendance.ManualEntryRequest{
		EmployeeID: emp.ID,
		Date:       "2026-03-02",
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("17:00"),
		Status:     string(attendance.StatusPresent),
	})
	assert.ErrorIs(t, err, attendance.ErrRecordExists)
	assert.Len(t, recordRepo.records, 1)
}
