package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emscorp/ems-backend-go/internal/config"
	appHTTP "github.com/emscorp/ems-backend-go/internal/handler/http"
	"github.com/emscorp/ems-backend-go/internal/pkg/database"
	"github.com/emscorp/ems-backend-go/internal/pkg/jwt"
	"github.com/emscorp/ems-backend-go/internal/repository/postgresql"
	analyticsService "github.com/emscorp/ems-backend-go/internal/service/analytics"
	attendanceService "github.com/emscorp/ems-backend-go/internal/service/attendance"
	authService "github.com/emscorp/ems-backend-go/internal/service/auth"
	departmentService "github.com/emscorp/ems-backend-go/internal/service/department"
	employeeService "github.com/emscorp/ems-backend-go/internal/service/employee"
	exportService "github.com/emscorp/ems-backend-go/internal/service/export"
	performanceService "github.com/emscorp/ems-backend-go/internal/service/performance"
	salaryService "github.com/emscorp/ems-backend-go/internal/service/salary"
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

	if err := postgresql.Migrate(context.Background(), db, cfg.Database.MigrationsDir); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	departmentSvc := departmentService.NewDepartmentService(db, departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, attendanceRepo, performanceRepo, salaryRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, employeeRepo)
	salarySvc := salaryService.NewSalaryService(salaryRepo, employeeRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(analyticsRepo, attendanceRepo, departmentRepo)
	exportSvc := exportService.NewExportService(employeeRepo, attendanceRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc, employeeSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, performanceSvc, salarySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)
	exportHandler := appHTTP.NewExportHandler(exportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			Environment:    cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtService,
		authHandler,
		departmentHandler,
		employeeHandler,
		attendanceHandler,
		performanceHandler,
		salaryHandler,
		analyticsHandler,
		exportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
