package http

import (
	"log/slog"
	"os"

	"github.com/autopay-hq/autopay-backend-go/internal/domain/employee"
	"github.com/autopay-hq/autopay-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	employeeRepo employee.EmployeeRepository,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payslipHandler PayslipHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "autopay"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.ActorHeader},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	clerkOrAbove := middleware.RequireRole(employeeRepo, employee.RoleClerk)
	adminOnly := middleware.RequireRole(employeeRepo, employee.RoleAdmin)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/setup", authHandler.Setup)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Get("/{id}/attendance", attendanceHandler.ListForEmployee)
			r.Get("/{id}/payslips", payslipHandler.ListForEmployee)
			r.Post("/{id}/payslips", payslipHandler.Generate)

			// Clerks can see the directory; only admins change it
			r.Group(func(r chi.Router) {
				r.Use(clerkOrAbove)
				r.Get("/", employeeHandler.ListEmployees)
			})

			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Patch("/{id}/salary", employeeHandler.UpdateSalary)
				r.Delete("/{id}", employeeHandler.DeleteEmployee)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/clock", attendanceHandler.Clock)

			r.Group(func(r chi.Router) {
				r.Use(clerkOrAbove)
				r.Get("/today", attendanceHandler.ListToday)
			})
		})
	})

	return r
}
