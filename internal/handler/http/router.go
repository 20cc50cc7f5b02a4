package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/peoplehq/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Department DepartmentHandler
	Shift      ShiftHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Overtime   OvertimeHandler
}

func NewRouter(jwtService jwt.Service, logger *slog.Logger, frontendURL string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password", h.Auth.ResetPassword)
			r.Get("/verify-email", h.Auth.VerifyEmail)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.GoogleRedirect)
				r.Get("/google/callback", h.Auth.GoogleCallback)
			})

			// Requires a valid session
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/send-verification", h.Auth.SendVerification)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionCreateAccount, user.PermissionManageEmployees)).
					Post("/", h.Employee.Create)
				r.With(middleware.RequirePermission(user.PermissionManageUsers)).
					Get("/", h.Employee.List)

				r.Route("/{employeeId}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionViewProfile)).
						Get("/", h.Employee.Get)
					r.With(middleware.RequirePermission(user.PermissionUpdateProfile)).
						Patch("/", h.Employee.Update)
					r.With(middleware.RequirePermission(user.PermissionDeleteProfile)).
						Delete("/", h.Employee.Delete)
					r.With(middleware.RequirePermission(user.PermissionManageEmployees)).
						Put("/shift", h.Employee.AssignShift)
					r.With(middleware.RequirePermission(user.PermissionManageEmployees)).
						Post("/documents/{field}", h.Employee.UploadDocument)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionManageEmployees))
				r.Post("/", h.Department.Create)
				r.Get("/", h.Department.List)
				r.Get("/report", h.Department.Report)
				r.Route("/{code}", func(r chi.Router) {
					r.Get("/", h.Department.Get)
					r.Patch("/", h.Department.Update)
					r.Delete("/", h.Department.Delete)
					r.Put("/employees", h.Department.AssignEmployees)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionManageEmployees))
				r.Post("/", h.Shift.Create)
				r.Get("/", h.Shift.List)
				r.Put("/{id}", h.Shift.Update)
			})

			r.Route("/attendance", func(r chi.Router) {
				// Any authenticated employee can mark their own day; the
				// service enforces the ownership rule.
				r.Post("/", h.Attendance.Mark)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionManageUsers))
					r.Get("/report", h.Attendance.Report)
					r.Get("/date/{date}", h.Attendance.ByDate)
					r.Get("/summary/{employeeId}", h.Attendance.Summary)
					r.Get("/employee/{employeeId}", h.Attendance.EmployeeDetail)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/my", h.Leave.ListOwn)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionManageUsers))
					r.Get("/", h.Leave.List)
					r.Put("/{leaveId}/approve", h.Leave.Approve)
					r.Put("/{leaveId}/reject", h.Leave.Reject)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/", h.Overtime.Submit)
				r.Get("/my", h.Overtime.ListOwn)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionManageUsers))
					r.Get("/", h.Overtime.List)
					r.Put("/{overtimeId}/approve", h.Overtime.Approve)
					r.Put("/{overtimeId}/reject", h.Overtime.Reject)
				})
			})
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
