package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workshophq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workshophq/workforce-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	adjustmentHandler AdjustmentHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.SaveDay)
				r.Get("/daily-report", attendanceHandler.DailyReport)
				r.Get("/{date}", attendanceHandler.GetDay)
				r.Put("/{date}/{empID}", attendanceHandler.UpdateRecord)
				r.Delete("/{date}/{empID}", attendanceHandler.DeleteRecord)
			})

			r.Route("/adjustments", func(r chi.Router) {
				r.Get("/", adjustmentHandler.List)
				r.Post("/", adjustmentHandler.Create)
				r.Put("/{id}", adjustmentHandler.Update)
				r.Delete("/{id}", adjustmentHandler.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/report", payrollHandler.PeriodReport)
				r.Get("/report/{month}", payrollHandler.MonthlyReport)
				r.Get("/payslip/{month}/{empID}", payrollHandler.Payslip)
			})
		})
	})

	return r
}
