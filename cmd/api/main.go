package main

import (
	"fmt"
	"net/http"

	"github.com/autopay-hq/autopay-backend-go/internal/config"
	appHTTP "github.com/autopay-hq/autopay-backend-go/internal/handler/http"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/cron"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/database"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/narrative"
	"github.com/autopay-hq/autopay-backend-go/internal/repository/postgresql"
	attendanceService "github.com/autopay-hq/autopay-backend-go/internal/service/attendance"
	employeeService "github.com/autopay-hq/autopay-backend-go/internal/service/employee"
	payrollService "github.com/autopay-hq/autopay-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	// nil generator means the summary feature is off for this deployment;
	// payslips fall back to the fixed placeholder text.
	var generator narrative.Generator
	if client := narrative.NewGeminiClient(cfg.Gemini); client != nil {
		generator = client
	}

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payslipRepo, attendanceRepo, employeeRepo, generator, cfg.Gemini)

	authHandler := appHTTP.NewAuthHandler(employeeSvc, attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payrollSvc)

	if cfg.Payroll.AutoRefresh {
		scheduler := cron.NewScheduler()
		cron.RegisterPayrollRefresh(scheduler, payrollSvc, cfg.Payroll.RefreshInterval)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(
		cfg.App.Env,
		employeeRepo,
		authHandler,
		employeeHandler,
		attendanceHandler,
		payslipHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
