package http

import (
	"log/slog"
	"os"

	"github.com/emscorp/ems-backend-go/internal/handler/http/middleware"
	"github.com/emscorp/ems-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AppName        string
	Environment    string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	departmentHandler DepartmentHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	performanceHandler PerformanceHandler,
	salaryHandler SalaryHandler,
	analyticsHandler AnalyticsHandler,
	exportHandler ExportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("env", cfg.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", departmentHandler.List)
				r.Post("/", departmentHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", departmentHandler.GetByID)
					r.Put("/", departmentHandler.Update)
					r.Delete("/", departmentHandler.Delete)
					r.Get("/employees", departmentHandler.ListEmployees)
					r.Get("/statistics", departmentHandler.Statistics)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetByID)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)
					r.Get("/attendance-summary", employeeHandler.AttendanceSummary)
					r.Get("/performance-history", employeeHandler.PerformanceHistory)
					r.Get("/salary-history", employeeHandler.SalaryHistory)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Post("/", attendanceHandler.Create)
				r.Get("/daily-report", attendanceHandler.DailyReport)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", attendanceHandler.GetByID)
					r.Put("/", attendanceHandler.Update)
					r.Delete("/", attendanceHandler.Delete)
				})
			})

			r.Route("/performance", func(r chi.Router) {
				r.Get("/", performanceHandler.List)
				r.Post("/", performanceHandler.Create)
				r.Get("/analytics", performanceHandler.Analytics)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", performanceHandler.GetByID)
					r.Put("/", performanceHandler.Update)
					r.Delete("/", performanceHandler.Delete)
				})
			})

			r.Route("/salary", func(r chi.Router) {
				r.Get("/", salaryHandler.List)
				r.Post("/", salaryHandler.Create)
				r.Get("/trends", salaryHandler.Trends)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", salaryHandler.GetByID)
					r.Put("/", salaryHandler.Update)
					r.Delete("/", salaryHandler.Delete)
				})
			})

			r.Get("/analytics", analyticsHandler.Overview)
			r.Get("/dashboard", analyticsHandler.Dashboard)
			r.Get("/export", exportHandler.Export)
		})
	})

	return r
}
