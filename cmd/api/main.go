package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"
	"github.com/peoplehq/hrm-backend-go/internal/config"
	appHTTP "github.com/peoplehq/hrm-backend-go/internal/handler/http"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/database"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/email"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/oauth"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/storage"
	"github.com/peoplehq/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peoplehq/hrm-backend-go/internal/service/attendance"
	authService "github.com/peoplehq/hrm-backend-go/internal/service/auth"
	departmentService "github.com/peoplehq/hrm-backend-go/internal/service/department"
	employeeService "github.com/peoplehq/hrm-backend-go/internal/service/employee"
	leaveService "github.com/peoplehq/hrm-backend-go/internal/service/leave"
	overtimeService "github.com/peoplehq/hrm-backend-go/internal/service/overtime"
	shiftService "github.com/peoplehq/hrm-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrm-backend"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	tokenRepo := postgresql.NewTokenRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiration,
		cfg.JWT.RefreshExpiration,
		cfg.JWT.ResetPasswordExpiration,
		cfg.JWT.VerifyEmailExpiration,
	)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		cfg.OAuth2Google.Scopes,
	)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, shiftRepo, fileStorage)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo, employeeRepo, txManager)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, shiftRepo, departmentRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, txManager, emailService, logger)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, employeeRepo, emailService, logger)
	authSvc := authService.NewAuthService(tokenRepo, employeeRepo, jwtService, googleService, emailService, logger, cfg.App.FrontendURL)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService, googleService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Department: appHTTP.NewDepartmentHandler(departmentSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Overtime:   appHTTP.NewOvertimeHandler(overtimeSvc),
	}

	router := appHTTP.NewRouter(jwtService, logger, cfg.App.FrontendURL, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
