package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub/ems-backend-go/internal/config"
	"github.com/staffhub/ems-backend-go/internal/domain/account"
	"github.com/staffhub/ems-backend-go/internal/handler/http/middleware"
	"github.com/staffhub/ems-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Employee    EmployeeHandler
	Department  DepartmentHandler
	Leave       LeaveHandler
	Attendance  AttendanceHandler
	ActivityLog ActivityLogHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.CORSOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.Require(account.OperationEmployeeRead)).
					Get("/", h.Employee.List)
				r.With(middleware.Require(account.OperationEmployeeRead)).
					Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.Require(account.OperationEmployeeManage))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})

				r.With(middleware.Require(account.OperationEmployeePasswordReset)).
					Patch("/{id}/password", h.Employee.ResetPassword)
			})

			r.Route("/departments", func(r chi.Router) {
				r.With(middleware.Require(account.OperationDepartmentRead)).
					Get("/", h.Department.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.Require(account.OperationDepartmentManage))
					r.Post("/", h.Department.Create)
					r.Put("/{id}", h.Department.Update)
					r.Delete("/{id}", h.Department.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.Require(account.OperationLeaveCreate)).
					Post("/", h.Leave.Create)
				r.With(middleware.Require(account.OperationLeaveViewOwn)).
					Get("/my", h.Leave.My)

				r.Group(func(r chi.Router) {
					r.Use(middleware.Require(account.OperationLeaveModerate))
					r.Get("/pending", h.Leave.Pending)
					r.Patch("/{id}/approve", h.Leave.Approve)
					r.Patch("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.Require(account.OperationAttendanceSelf))
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/my", h.Attendance.My)
			})

			r.With(middleware.Require(account.OperationActivityLogRead)).
				Get("/activity-logs", h.ActivityLog.List)
		})
	})

	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
