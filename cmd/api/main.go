package main

import (
	"fmt"
	"net/http"

	"github.com/workshophq/workforce-backend-go/internal/config"
	appHTTP "github.com/workshophq/workforce-backend-go/internal/handler/http"
	"github.com/workshophq/workforce-backend-go/internal/pkg/database"
	"github.com/workshophq/workforce-backend-go/internal/pkg/jwt"
	"github.com/workshophq/workforce-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/workshophq/workforce-backend-go/internal/service/adjustment"
	attendanceService "github.com/workshophq/workforce-backend-go/internal/service/attendance"
	authService "github.com/workshophq/workforce-backend-go/internal/service/auth"
	employeeService "github.com/workshophq/workforce-backend-go/internal/service/employee"
	payrollService "github.com/workshophq/workforce-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	accountRepo := postgresql.NewAccountRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(accountRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		employeeRepo,
		attendanceRepo,
		adjustmentRepo,
		payrollService.EngineOptions{},
		cfg.App.PayslipDir,
	)
	adjustmentSvc := adjustmentService.NewAdjustmentService(adjustmentRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		jwtSvc,
		authHandler,
		employeeHandler,
		attendanceHandler,
		adjustmentHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
