package main

import (
	"fmt"
	"net/http"

	"github.com/staffhub/ems-backend-go/internal/config"
	appHTTP "github.com/staffhub/ems-backend-go/internal/handler/http"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
	"github.com/staffhub/ems-backend-go/internal/pkg/jwt"
	"github.com/staffhub/ems-backend-go/internal/pkg/oauth"
	"github.com/staffhub/ems-backend-go/internal/repository/postgresql"
	activitylogService "github.com/staffhub/ems-backend-go/internal/service/activitylog"
	attendanceService "github.com/staffhub/ems-backend-go/internal/service/attendance"
	authService "github.com/staffhub/ems-backend-go/internal/service/auth"
	departmentService "github.com/staffhub/ems-backend-go/internal/service/department"
	employeeService "github.com/staffhub/ems-backend-go/internal/service/employee"
	leaveService "github.com/staffhub/ems-backend-go/internal/service/leave"
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
	departmentRepo := postgresql.NewDepartmentRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	activityLogRepo := postgresql.NewActivityLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	activitySvc := activitylogService.NewActivityLogService(activityLogRepo)
	authSvc := authService.NewAuthService(db, accountRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, accountRepo, activitySvc)
	departmentSvc := departmentService.NewDepartmentService(db, departmentRepo, activitySvc)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, activitySvc)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)

	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc, googleService),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Department:  appHTTP.NewDepartmentHandler(departmentSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		ActivityLog: appHTTP.NewActivityLogHandler(activitySvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Error starting server:", err)
	}
}
