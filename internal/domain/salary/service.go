package salary

import "context"

type SalaryService interface {
	GenerateMonthly(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Upsert(ctx context.Context, req UpsertRequest) (SalaryResponse, error)
	TogglePayment(ctx context.Context, payerUserID string, req TogglePaymentRequest) (SalaryResponse, error)
	SyncDeductions(ctx context.Context, req SyncDeductionsRequest) (SalaryResponse, error)
	GetSalary(ctx context.Context, id string) (SalaryResponse, error)
	ListSalaries(ctx context.Context, filter Filter) (ListSalariesResponse, error)
}
