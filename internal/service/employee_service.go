package service

import (
	"context"
	"errors"
	"strings"

	"github.com/payroll-api/internal/domain"
	"github.com/payroll-api/internal/dto"
	"github.com/payroll-api/internal/repository"
	"github.com/shopspring/decimal"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	// Update возвращает nil, nil, если сотрудника нет
	Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	// Delete удаляет только сотрудника, записи и история выплат остаются
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	empRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{empRepo: empRepo}
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.empRepo.List(ctx)
	if err != nil {
		return nil, domain.WrapStore("list employees", err)
	}
	return employees, nil
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.WrapStore("get employee", err)
	}
	return emp, nil
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	emp := &domain.Employee{
		Name:     strings.TrimSpace(req.Name),
		Role:     strings.TrimSpace(req.Role),
		PayRate1: rate(req.PayRate1),
		PayRate2: rate(req.PayRate2),
	}

	if req.LastPayrollDate != nil {
		paid, err := dto.ParseTimestamp(*req.LastPayrollDate)
		if err != nil {
			return nil, domain.NewValidationError("last_payroll_date", err.Error())
		}
		emp.LastPayrollDate = &paid
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, domain.WrapStore("create employee", err)
	}
	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.WrapStore("get employee", err)
	}

	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		fields["role"] = strings.TrimSpace(*req.Role)
	}
	if req.PayRate1 != nil {
		fields["pay_rate1"] = rate(req.PayRate1)
	}
	if req.PayRate2 != nil {
		fields["pay_rate2"] = rate(req.PayRate2)
	}
	// last_payroll_date также двигает выплата; пишем его только по явному запросу
	if req.LastPayrollDate != nil {
		paid, err := dto.ParseTimestamp(*req.LastPayrollDate)
		if err != nil {
			return nil, domain.NewValidationError("last_payroll_date", err.Error())
		}
		fields["last_payroll_date"] = paid
	}
	if len(fields) == 0 {
		return emp, nil
	}

	err = s.empRepo.Update(ctx, id, fields)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.WrapStore("update employee", err)
	}

	emp, err = s.empRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.WrapStore("get employee", err)
	}
	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	err := s.empRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil
	}
	return domain.WrapStore("delete employee", err)
}

// rate заменяет отсутствующую ставку нулём
func rate(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NewNullDecimal(decimal.Zero)
	}
	return decimal.NewNullDecimal(*d)
}
