package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/payroll-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	logger         *slog.Logger
	allowedOrigins []string
	empHandler     *EmployeeHandler
	logHandler     *WorkLogHandler
	payHandler     *PayrollHandler
}

func NewRouter(
	empHandler *EmployeeHandler,
	logHandler *WorkLogHandler,
	payHandler *PayrollHandler,
	allowedOrigins []string,
	logger *slog.Logger,
) *Router {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return &Router{
		logger:         logger,
		allowedOrigins: allowedOrigins,
		empHandler:     empHandler,
		logHandler:     logHandler,
		payHandler:     payHandler,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", IdempotencyKeyHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.ContentType)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not found"}` + "\n"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"message":"Method not allowed"}` + "\n"))
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", rt.empHandler.List)
		r.Post("/", rt.empHandler.Create)
		r.Get("/{id}", rt.empHandler.GetByID)
		r.Put("/{id}", rt.empHandler.Update)
		r.Delete("/{id}", rt.empHandler.Delete)
	})

	r.Post("/worklogs", rt.logHandler.Create)
	r.Get("/worklogs/{employeeId}", rt.logHandler.ListByEmployee)

	r.Get("/preview-pay/{id}", rt.payHandler.Preview)
	r.Post("/disburse-pay/{id}", rt.payHandler.Disburse)
	r.Get("/payrolls/{employeeId}", rt.payHandler.History)
	r.Get("/reports/monthly", rt.payHandler.MonthlyReport)

	return r
}
