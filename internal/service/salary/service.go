package salary

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
	"github.com/staffdesk/backoffice-go/internal/domain/employee"
	"github.com/staffdesk/backoffice-go/internal/domain/salary"
)

// Rates are the attendance-derived deduction rates applied when a
// month's late and absence deductions are rebuilt from records.
type Rates struct {
	LatePerMinute decimal.Decimal
	AbsencePerDay decimal.Decimal
}

// TxRunner executes fn inside a database transaction; repository calls
// made with the inner context share it.
type TxRunner = func(ctx context.Context, fn func(ctx context.Context) error) error

type SalaryServiceImpl struct {
	rates Rates
	tx    TxRunner
	salary.SalaryRepository
	employee.EmployeeRepository
	recordRepo attendance.RecordRepository
}

func NewSalaryService(
	rates Rates,
	tx TxRunner,
	salaryRepo salary.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	recordRepo attendance.RecordRepository,
) salary.SalaryService {
	if tx == nil {
		tx = func(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }
	}
	return &SalaryServiceImpl{
		rates:              rates,
		tx:                 tx,
		SalaryRepository:   salaryRepo,
		EmployeeRepository: employeeRepo,
		recordRepo:         recordRepo,
	}
}

// GenerateMonthly implements salary.SalaryService.
// Seeds one snapshot per active employee from the employee's base
// salary. Generation is idempotent: an existing period is skipped, and
// a failing employee is reported without aborting the batch.
func (s *SalaryServiceImpl) GenerateMonthly(ctx context.Context, req salary.GenerateRequest) (salary.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.GenerateResponse{}, err
	}

	employees, err := s.EmployeeRepository.List(ctx, true)
	if err != nil {
		return salary.GenerateResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	if len(req.EmployeeIDs) > 0 {
		wanted := make(map[string]struct{}, len(req.EmployeeIDs))
		for _, id := range req.EmployeeIDs {
			wanted[id] = struct{}{}
		}
		filtered := employees[:0]
		for _, e := range employees {
			if _, ok := wanted[e.ID]; ok {
				filtered = append(filtered, e)
			}
		}
		employees = filtered
	}

	var resp salary.GenerateResponse
	for _, emp := range employees {
		_, err := s.SalaryRepository.GetByEmployeePeriod(ctx, emp.ID, req.Month, req.Year)
		if err == nil {
			resp.Skipped++
			continue
		}
		if !errors.Is(err, salary.ErrSalaryNotFound) {
			resp.Failed = append(resp.Failed, emp.ID)
			continue
		}

		record := salary.MonthlySalary{
			EmployeeID: emp.ID,
			Month:      req.Month,
			Year:       req.Year,
			BaseSalary: emp.BaseSalary,
			Currency:   emp.SalaryCurrency,
		}
		record.Recompute()

		if _, err := s.SalaryRepository.Create(ctx, record); err != nil {
			if errors.Is(err, salary.ErrSalaryAlreadyExists) {
				resp.Skipped++
				continue
			}
			resp.Failed = append(resp.Failed, emp.ID)
			continue
		}
		resp.Created++
	}

	return resp, nil
}

// Upsert implements salary.SalaryService.
// Creates the snapshot when no ID is given, otherwise patches the
// existing one. Every write recomputes the totals and net salary from
// the line lists; totals in the request body are ignored. A changed
// base salary propagates back to the employee record.
func (s *SalaryServiceImpl) Upsert(ctx context.Context, req salary.UpsertRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	if req.ID == "" {
		return s.create(ctx, req)
	}
	return s.update(ctx, req)
}

func (s *SalaryServiceImpl) create(ctx context.Context, req salary.UpsertRequest) (salary.SalaryResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	record := salary.MonthlySalary{
		EmployeeID: emp.ID,
		Month:      req.Month,
		Year:       req.Year,
		BaseSalary: emp.BaseSalary,
		Currency:   emp.SalaryCurrency,
	}
	applyLists(&record, req)

	if req.BaseSalary != nil {
		record.BaseSalary = *req.BaseSalary
	}
	if req.Currency != nil {
		record.Currency = *req.Currency
	}
	record.Recompute()

	var created salary.MonthlySalary
	err = s.tx(ctx, func(ctx context.Context) error {
		created, err = s.SalaryRepository.Create(ctx, record)
		if err != nil {
			if errors.Is(err, salary.ErrSalaryAlreadyExists) {
				return salary.ErrSalaryAlreadyExists
			}
			return fmt.Errorf("failed to create salary record: %w", err)
		}
		return s.propagateBaseSalary(ctx, emp, created)
	})
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	return mapSalaryToResponse(created), nil
}

func (s *SalaryServiceImpl) update(ctx context.Context, req salary.UpsertRequest) (salary.SalaryResponse, error) {
	record, err := s.SalaryRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.SalaryResponse{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	applyLists(&record, req)
	if req.BaseSalary != nil {
		record.BaseSalary = *req.BaseSalary
	}
	if req.Currency != nil {
		record.Currency = *req.Currency
	}
	record.Recompute()

	err = s.tx(ctx, func(ctx context.Context) error {
		if err := s.SalaryRepository.Update(ctx, record); err != nil {
			return fmt.Errorf("failed to update salary record: %w", err)
		}

		emp, err := s.EmployeeRepository.GetByID(ctx, record.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}
		return s.propagateBaseSalary(ctx, emp, record)
	})
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	return mapSalaryToResponse(record), nil
}

// propagateBaseSalary keeps the employee record in sync when a monthly
// snapshot's base salary diverges from it. The sync is an explicit
// named repository operation so the cross-entity write stays visible.
func (s *SalaryServiceImpl) propagateBaseSalary(ctx context.Context, emp employee.Employee, record salary.MonthlySalary) error {
	if emp.BaseSalary.Equal(record.BaseSalary) && emp.SalaryCurrency == record.Currency {
		return nil
	}
	if err := s.EmployeeRepository.UpdateBaseSalary(ctx, emp.ID, record.BaseSalary, record.Currency); err != nil {
		return fmt.Errorf("failed to sync employee base salary: %w", err)
	}
	return nil
}

func applyLists(record *salary.MonthlySalary, req salary.UpsertRequest) {
	if req.Bonuses != nil {
		record.Bonuses = *req.Bonuses
	}
	if req.Allowances != nil {
		record.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		record.Deductions = *req.Deductions
	}
	if req.LateDeductions != nil {
		record.LateDeductions = *req.LateDeductions
	}
	if req.AbsenceDeductions != nil {
		record.AbsenceDeductions = *req.AbsenceDeductions
	}
}

// TogglePayment implements salary.SalaryService.
// Paying stamps who and when (plus optional method and reference);
// unpaying clears the whole payment sub-state.
func (s *SalaryServiceImpl) TogglePayment(ctx context.Context, payerUserID string, req salary.TogglePaymentRequest) (salary.SalaryResponse, error) {
	record, err := s.SalaryRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.SalaryResponse{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	if record.IsPaid {
		record.IsPaid = false
		record.PaidAt = nil
		record.PaidBy = nil
		record.PaymentMethod = nil
		record.PaymentReference = nil
	} else {
		now := time.Now().UTC()
		record.IsPaid = true
		record.PaidAt = &now
		record.PaidBy = &payerUserID
		record.PaymentMethod = req.PaymentMethod
		record.PaymentReference = req.PaymentReference
	}

	if err := s.SalaryRepository.Update(ctx, record); err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to update salary record: %w", err)
	}

	return mapSalaryToResponse(record), nil
}

// SyncDeductions implements salary.SalaryService.
// Rebuilds the month's late and absence deduction lists from the
// attendance records at the configured rates, replacing whatever the
// lists held before, then recomputes the totals.
func (s *SalaryServiceImpl) SyncDeductions(ctx context.Context, req salary.SyncDeductionsRequest) (salary.SalaryResponse, error) {
	record, err := s.SalaryRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.SalaryResponse{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	from := time.Date(record.Year, time.Month(record.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := s.recordRepo.ListByEmployeeAndRange(ctx, record.EmployeeID, from, to)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	record.LateDeductions, record.AbsenceDeductions = DeriveDeductions(records, s.rates)
	record.Recompute()

	if err := s.SalaryRepository.Update(ctx, record); err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to update salary record: %w", err)
	}

	return mapSalaryToResponse(record), nil
}

// GetSalary implements salary.SalaryService.
func (s *SalaryServiceImpl) GetSalary(ctx context.Context, id string) (salary.SalaryResponse, error) {
	record, err := s.SalaryRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.SalaryResponse{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get salary record: %w", err)
	}
	return mapSalaryToResponse(record), nil
}

// ListSalaries implements salary.SalaryService.
func (s *SalaryServiceImpl) ListSalaries(ctx context.Context, filter salary.Filter) (salary.ListSalariesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := s.SalaryRepository.List(ctx, filter)
	if err != nil {
		return salary.ListSalariesResponse{}, fmt.Errorf("failed to list salary records: %w", err)
	}

	responses := make([]salary.SalaryResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, mapSalaryToResponse(r))
	}

	return salary.ListSalariesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Salaries:   responses,
	}, nil
}

func mapSalaryToResponse(m salary.MonthlySalary) salary.SalaryResponse {
	resp := salary.SalaryResponse{
		ID:           m.ID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		Month:        m.Month,
		Year:         m.Year,
		BaseSalary:   m.BaseSalary,
		Currency:     m.Currency,

		Bonuses:           emptyIfNilLines(m.Bonuses),
		Allowances:        emptyIfNilLines(m.Allowances),
		Deductions:        emptyIfNilLines(m.Deductions),
		LateDeductions:    m.LateDeductions,
		AbsenceDeductions: m.AbsenceDeductions,

		TotalBonuses:           m.TotalBonuses,
		TotalAllowances:        m.TotalAllowances,
		TotalDeductions:        m.TotalDeductions,
		TotalLateDeductions:    m.TotalLateDeductions,
		TotalAbsenceDeductions: m.TotalAbsenceDeductions,
		NetSalary:              m.NetSalary,

		IsPaid:           m.IsPaid,
		PaidBy:           m.PaidBy,
		PaymentMethod:    m.PaymentMethod,
		PaymentReference: m.PaymentReference,
	}
	if m.LateDeductions == nil {
		resp.LateDeductions = []salary.LateDeduction{}
	}
	if m.AbsenceDeductions == nil {
		resp.AbsenceDeductions = []salary.AbsenceDeduction{}
	}
	if m.PaidAt != nil {
		formatted := m.PaidAt.Format("2006-01-02 15:04:05")
		resp.PaidAt = &formatted
	}
	return resp
}

func emptyIfNilLines(lines []salary.Line) []salary.Line {
	if lines == nil {
		return []salary.Line{}
	}
	return lines
}
