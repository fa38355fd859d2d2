package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/backoffice-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}

// Create implements employee.EmployeeService.
// New employees start active with the default leave balances.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FullName:         req.FullName,
		Email:            req.Email,
		Position:         req.Position,
		BranchID:         req.BranchID,
		BaseSalary:       decimal.Zero,
		SalaryCurrency:   req.SalaryCurrency,
		AnnualBalance:    employee.DefaultAnnualBalance,
		EmergencyBalance: employee.DefaultEmergencyBalance,
		WorkLatitude:     req.WorkLatitude,
		WorkLongitude:    req.WorkLongitude,
		WorkRadius:       req.WorkRadius,
		IsActive:         true,
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = *req.BaseSalary
	}
	if emp.SalaryCurrency == "" {
		emp.SalaryCurrency = "EGP"
	}

	created, err := e.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.BranchID != nil {
		emp.BranchID = req.BranchID
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = *req.BaseSalary
	}
	if req.SalaryCurrency != nil {
		emp.SalaryCurrency = *req.SalaryCurrency
	}
	if req.WorkLatitude != nil {
		emp.WorkLatitude = req.WorkLatitude
	}
	if req.WorkLongitude != nil {
		emp.WorkLongitude = req.WorkLongitude
	}
	if req.WorkRadius != nil {
		emp.WorkRadius = req.WorkRadius
	}
	if req.AnnualBalance != nil {
		emp.AnnualBalance = *req.AnnualBalance
	}
	if req.EmergencyBalance != nil {
		emp.EmergencyBalance = *req.EmergencyBalance
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := e.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

func mapEmployeeToResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               e.ID,
		FullName:         e.FullName,
		Email:            e.Email,
		Position:         e.Position,
		BranchID:         e.BranchID,
		BaseSalary:       e.BaseSalary,
		SalaryCurrency:   e.SalaryCurrency,
		AnnualBalance:    e.AnnualBalance,
		EmergencyBalance: e.EmergencyBalance,
		WorkLatitude:     e.WorkLatitude,
		WorkLongitude:    e.WorkLongitude,
		WorkRadius:       e.WorkRadius,
		IsActive:         e.IsActive,
	}
}
