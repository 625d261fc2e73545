package repository

import (
	"context"
	"errors"
	"time"

	"github.com/payroll-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	// Update пишет только переданные колонки. Если строки с id нет,
	// возвращает domain.ErrEmployeeNotFound
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	// AdvanceLastPayrollDate переносит last_payroll_date с `from` на `to`, только
	// если в базе всё ещё `from`. Иначе возвращает domain.ErrPayrollConflict
	AdvanceLastPayrollDate(ctx context.Context, id string, from *time.Time, to time.Time) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return conn(ctx, r.db).Create(emp).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	var emp domain.Employee
	err := conn(ctx, r.db).First(&emp, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	employees := []domain.Employee{}
	err := conn(ctx, r.db).
		Order("created_at ASC").
		Order("id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	result := conn(ctx, r.db).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	result := conn(ctx, r.db).Delete(&domain.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) AdvanceLastPayrollDate(ctx context.Context, id string, from *time.Time, to time.Time) error {
	query := conn(ctx, r.db).Model(&domain.Employee{}).Where("id = ?", id)
	if from == nil {
		query = query.Where("last_payroll_date IS NULL")
	} else {
		query = query.Where("last_payroll_date = ?", *from)
	}

	result := query.Updates(map[string]any{
		"last_payroll_date": to,
		"updated_at":        to,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPayrollConflict
	}
	return nil
}
