package repository

import (
	"context"

	"github.com/payroll-api/internal/domain"
	"gorm.io/gorm"
)

// WorkLogRepository определяет интерфейс для работы с записями о работе
type WorkLogRepository interface {
	Create(ctx context.Context, log *domain.WorkLog) error
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.WorkLog, error)
	ListByEmployeeInWindow(ctx context.Context, employeeID string, window domain.Window) ([]domain.WorkLog, error)
}

type workLogRepository struct {
	db *gorm.DB
}

// NewWorkLogRepository создаёт новый экземпляр репозитория
func NewWorkLogRepository(db *gorm.DB) WorkLogRepository {
	return &workLogRepository{db: db}
}

func (r *workLogRepository) Create(ctx context.Context, log *domain.WorkLog) error {
	return conn(ctx, r.db).Create(log).Error
}

func (r *workLogRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.WorkLog, error) {
	logs := []domain.WorkLog{}
	err := conn(ctx, r.db).
		Where("employee_id = ?", employeeID).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

func (r *workLogRepository) ListByEmployeeInWindow(ctx context.Context, employeeID string, window domain.Window) ([]domain.WorkLog, error) {
	query := conn(ctx, r.db).Where("employee_id = ?", employeeID)

	if window.StartInclusive {
		query = query.Where("date >= ?", window.Start)
	} else {
		query = query.Where("date > ?", window.Start)
	}
	if !window.End.IsZero() {
		query = query.Where("date <= ?", window.End)
	}

	logs := []domain.WorkLog{}
	err := query.Order("date ASC").Find(&logs).Error
	return logs, err
}
