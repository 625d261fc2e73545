package repository

import (
	"context"

	"github.com/payroll-api/internal/domain"
	"gorm.io/gorm"
)

// PayrollRepository определяет интерфейс для работы с выплатами.
// Записи только добавляются
type PayrollRepository interface {
	Create(ctx context.Context, p *domain.Payroll) error
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Payroll, error)
	// FindByIdempotencyKey возвращает nil, nil, если выплаты с ключом нет
	FindByIdempotencyKey(ctx context.Context, employeeID, key string) (*domain.Payroll, error)
}

type payrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository создаёт новый экземпляр репозитория
func NewPayrollRepository(db *gorm.DB) PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) Create(ctx context.Context, p *domain.Payroll) error {
	return conn(ctx, r.db).Create(p).Error
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Payroll, error) {
	payrolls := []domain.Payroll{}
	err := conn(ctx, r.db).
		Where("employee_id = ?", employeeID).
		Order("pay_date DESC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *payrollRepository) FindByIdempotencyKey(ctx context.Context, employeeID, key string) (*domain.Payroll, error) {
	var found []domain.Payroll
	err := conn(ctx, r.db).
		Where("employee_id = ? AND idempotency_key = ?", employeeID, key).
		Limit(1).
		Find(&found).Error
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return &found[0], nil
}
