package http

import (
	"log/slog"
	"os"

	"github.com/dawami-hr/dawami-backend-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dawami-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/clock-in", attendanceHandler.ClockIn)
			r.Post("/clock-out", attendanceHandler.ClockOut)
			r.Get("/", attendanceHandler.List)
			r.Get("/{employeeID}/open", attendanceHandler.GetOpenSession)
		})

		r.Route("/leave", func(r chi.Router) {
			r.Route("/types", func(r chi.Router) {
				r.Get("/", leaveHandler.ListLeaveTypes)
				r.Post("/", leaveHandler.CreateLeaveType)
			})

			r.Route("/balances", func(r chi.Router) {
				r.Get("/", leaveHandler.GetBalance)
				r.Post("/delta", leaveHandler.ApplyDelta)
			})

			r.Route("/requests", func(r chi.Router) {
				r.Get("/", leaveHandler.List)
				r.Post("/", leaveHandler.Apply)
				r.Post("/{requestID}/approve", leaveHandler.Approve)
				r.Post("/{requestID}/reject", leaveHandler.Reject)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/attendance/daily", reportHandler.DailyAttendance)
			r.Get("/attendance/summary", reportHandler.AttendanceSummary)
			r.Get("/leave", reportHandler.Leave)
			r.Get("/absentees", reportHandler.Absentees)
		})
	})

	return r
}
