package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/payroll-api/internal/config"
	"github.com/payroll-api/internal/database"
	"github.com/payroll-api/internal/handler"
	"github.com/payroll-api/internal/repository"
	"github.com/payroll-api/internal/service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// Подключение к БД и миграции
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("driver", cfg.Database.Driver), slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Инициализация репозиториев
	empRepo := repository.NewEmployeeRepository(db)
	logRepo := repository.NewWorkLogRepository(db)
	payRepo := repository.NewPayrollRepository(db)
	tx := repository.NewTransactor(db)

	// Инициализация сервисов
	empService := service.NewEmployeeService(empRepo)
	logService := service.NewWorkLogService(logRepo)
	payService := service.NewPayrollService(empRepo, logRepo, payRepo, tx, cfg.Payroll, logger)

	// Инициализация хендлеров
	router := handler.NewRouter(
		handler.NewEmployeeHandler(empService, logger),
		handler.NewWorkLogHandler(logService, logger),
		handler.NewPayrollHandler(payService, logger),
		cfg.Server.AllowedOrigins,
		logger,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		logger.Info("server is shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting",
		slog.String("port", cfg.Server.Port),
		slog.String("driver", cfg.Database.Driver),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}
