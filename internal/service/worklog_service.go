package service

import (
	"context"

	"github.com/payroll-api/internal/domain"
	"github.com/payroll-api/internal/dto"
	"github.com/payroll-api/internal/repository"
)

// WorkLogService определяет интерфейс бизнес-логики для записей о работе.
// Записи после создания не меняются
type WorkLogService interface {
	Create(ctx context.Context, req *dto.CreateWorkLogRequest) (*domain.WorkLog, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.WorkLog, error)
}

type workLogService struct {
	logRepo repository.WorkLogRepository
}

// NewWorkLogService создаёт новый экземпляр сервиса
func NewWorkLogService(logRepo repository.WorkLogRepository) WorkLogService {
	return &workLogService{logRepo: logRepo}
}

// Create сохраняет запись без проверки сотрудника: внешних ключей нет,
// а расчёт считает неизвестный id отсутствующим сотрудником
func (s *workLogService) Create(ctx context.Context, req *dto.CreateWorkLogRequest) (*domain.WorkLog, error) {
	date, err := dto.ParseTimestamp(req.Date)
	if err != nil {
		return nil, domain.NewValidationError("date", err.Error())
	}

	log := &domain.WorkLog{
		EmployeeID:    req.EmployeeID,
		Date:          date,
		HoursPayRate1: rate(req.HoursPayRate1),
		HoursPayRate2: rate(req.HoursPayRate2),
		Deduction:     rate(req.Deduction),
	}

	if err := s.logRepo.Create(ctx, log); err != nil {
		return nil, domain.WrapStore("create work log", err)
	}
	return log, nil
}

func (s *workLogService) ListByEmployee(ctx context.Context, employeeID string) ([]domain.WorkLog, error) {
	logs, err := s.logRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, domain.WrapStore("list work logs", err)
	}
	return logs, nil
}
