package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/backoffice-go/internal/config"
	appHTTP "github.com/staffdesk/backoffice-go/internal/handler/http"
	"github.com/staffdesk/backoffice-go/internal/pkg/database"
	"github.com/staffdesk/backoffice-go/internal/pkg/jwt"
	"github.com/staffdesk/backoffice-go/internal/pkg/validator"
	"github.com/staffdesk/backoffice-go/internal/repository/postgresql"
	attendanceService "github.com/staffdesk/backoffice-go/internal/service/attendance"
	authService "github.com/staffdesk/backoffice-go/internal/service/auth"
	branchService "github.com/staffdesk/backoffice-go/internal/service/branch"
	employeeService "github.com/staffdesk/backoffice-go/internal/service/employee"
	leaveService "github.com/staffdesk/backoffice-go/internal/service/leave"
	salaryService "github.com/staffdesk/backoffice-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	workStart, err := validator.ParseWallClock(cfg.Attendance.WorkStart)
	if err != nil {
		log.Fatal("Invalid work start time: ", err)
	}
	policy := attendanceService.Policy{
		WorkStart:            workStart,
		LateThresholdMinutes: cfg.Attendance.LateThresholdMinutes,
		BaselineWorkHours:    cfg.Attendance.BaselineWorkHours,
	}

	latePerMinute, err := decimal.NewFromString(cfg.Payroll.LateDeductionPerMinute)
	if err != nil {
		log.Fatal("Invalid late deduction rate: ", err)
	}
	absencePerDay, err := decimal.NewFromString(cfg.Payroll.AbsenceDeductionPerDay)
	if err != nil {
		log.Fatal("Invalid absence deduction rate: ", err)
	}
	rates := salaryService.Rates{
		LatePerMinute: latePerMinute,
		AbsencePerDay: absencePerDay,
	}

	tx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}

	auth := authService.NewAuthService(userRepo, jwtService)
	attendance := attendanceService.NewAttendanceService(policy, attendanceRepo, employeeRepo, branchRepo, companyRepo)
	leave := leaveService.NewLeaveService(tx, leaveRequestRepo, employeeRepo)
	salary := salaryService.NewSalaryService(rates, tx, salaryRepo, employeeRepo, attendanceRepo)
	branch := branchService.NewBranchService(branchRepo)
	employee := employeeService.NewEmployeeService(employeeRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(auth, jwtService),
		Attendance: appHTTP.NewAttendanceHandler(attendance),
		Leave:      appHTTP.NewLeaveHandler(leave),
		Salary:     appHTTP.NewSalaryHandler(salary),
		Branch:     appHTTP.NewBranchHandler(branch),
		Employee:   appHTTP.NewEmployeeHandler(employee),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Printf("Listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
