package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/payroll-api/internal/config"
	"github.com/payroll-api/internal/domain"
	"github.com/payroll-api/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// AllEmployees выбирает всех сотрудников в месячном отчёте
const AllEmployees = "all"

// Clock отдаёт текущее время
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// PreviewResult - сумма к выплате за неоплаченный период, без записи в БД
type PreviewResult struct {
	EmployeeID  string
	Period      PeriodResult
	LastPayDate time.Time
	PreviewDate time.Time
}

// ReportQuery задаёт месяц и сотрудников отчёта. Нулевые месяц или год
// означают текущие; пустой EmployeeID или AllEmployees выбирает всех
type ReportQuery struct {
	Month      int
	Year       int
	EmployeeID string
}

// ReportRow - итоги сотрудника за месяц
type ReportRow struct {
	Employee domain.Employee
	Month    int
	Year     int
	Period   PeriodResult
}

// MonthlyReport - строки отчёта за месяц. В Skipped попадают сотрудники,
// чьи записи не удалось прочитать
type MonthlyReport struct {
	Month        int
	Year         int
	Results      []ReportRow
	TotalExpense decimal.Decimal
	Skipped      []string
}

// PayrollService определяет интерфейс расчёта и выплаты зарплаты
type PayrollService interface {
	Preview(ctx context.Context, employeeID string) (*PreviewResult, error)
	Disburse(ctx context.Context, employeeID, idempotencyKey string) (*domain.Payroll, error)
	MonthlyReport(ctx context.Context, query ReportQuery) (*MonthlyReport, error)
	History(ctx context.Context, employeeID string) ([]domain.Payroll, error)
}

type payrollService struct {
	employees repository.EmployeeRepository
	workLogs  repository.WorkLogRepository
	payrolls  repository.PayrollRepository
	tx        repository.Transactor
	cfg       config.PayrollConfig
	clock     Clock
	logger    *slog.Logger
	inflight  singleflight.Group
}

// PayrollOption настраивает PayrollService
type PayrollOption func(*payrollService)

// WithClock подменяет часы
func WithClock(c Clock) PayrollOption {
	return func(s *payrollService) {
		s.clock = c
	}
}

// NewPayrollService создаёт новый экземпляр сервиса
func NewPayrollService(
	employees repository.EmployeeRepository,
	workLogs repository.WorkLogRepository,
	payrolls repository.PayrollRepository,
	tx repository.Transactor,
	cfg config.PayrollConfig,
	logger *slog.Logger,
	opts ...PayrollOption,
) PayrollService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.ReportWorkers < 1 {
		cfg.ReportWorkers = 1
	}

	s := &payrollService{
		employees: employees,
		workLogs:  workLogs,
		payrolls:  payrolls,
		tx:        tx,
		cfg:       cfg,
		clock:     realClock{},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *payrollService) Preview(ctx context.Context, employeeID string) (*PreviewResult, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, domain.WrapStore("get employee", err)
	}

	now := s.clock.Now()
	window := UnpaidWindow(*emp, s.cfg.Epoch, now)

	logs, err := s.workLogs.ListByEmployeeInWindow(ctx, emp.ID, window)
	if err != nil {
		return nil, domain.WrapStore("list work logs", err)
	}

	return &PreviewResult{
		EmployeeID:  emp.ID,
		Period:      ComputePeriod(*emp, logs),
		LastPayDate: window.Start,
		PreviewDate: now,
	}, nil
}

// Disburse закрывает неоплаченный период сотрудника. Одновременные вызовы с
// тем же сотрудником и ключом внутри процесса выполняются один раз; между
// процессами выигрывает только один благодаря CAS на last_payroll_date.
// Общее выполнение не зависит от отмены контекста первого вызывающего
func (s *payrollService) Disburse(ctx context.Context, employeeID, idempotencyKey string) (*domain.Payroll, error) {
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.inflight.Do(employeeID+"|"+idempotencyKey, func() (any, error) {
		return s.disburse(shared, employeeID, idempotencyKey)
	})
	if err != nil {
		return nil, err
	}

	payroll := *v.(*domain.Payroll)
	return &payroll, nil
}

func (s *payrollService) disburse(ctx context.Context, employeeID, idempotencyKey string) (*domain.Payroll, error) {
	var (
		payroll *domain.Payroll
		replay  bool
	)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if idempotencyKey != "" {
			existing, err := s.payrolls.FindByIdempotencyKey(ctx, employeeID, idempotencyKey)
			if err != nil {
				return domain.WrapStore("find payroll by idempotency key", err)
			}
			if existing != nil {
				payroll, replay = existing, true
				return nil
			}
		}

		emp, err := s.employees.GetByID(ctx, employeeID)
		if err != nil {
			return domain.WrapStore("get employee", err)
		}

		now := s.clock.Now()
		window := UnpaidWindow(*emp, s.cfg.Epoch, now)

		logs, err := s.workLogs.ListByEmployeeInWindow(ctx, emp.ID, window)
		if err != nil {
			return domain.WrapStore("list work logs", err)
		}
		result := ComputePeriod(*emp, logs)

		if err := s.employees.AdvanceLastPayrollDate(ctx, emp.ID, emp.LastPayrollDate, now); err != nil {
			return domain.WrapStore("advance last payroll date", err)
		}

		p := &domain.Payroll{
			EmployeeID:  emp.ID,
			TotalHours:  result.TotalHours,
			TotalPay:    result.TotalPay,
			Deductions:  result.Deductions,
			NetPay:      result.NetPay,
			PeriodStart: window.Start,
			PayDate:     now,
		}
		if idempotencyKey != "" {
			p.IdempotencyKey = &idempotencyKey
		}
		if err := s.payrolls.Create(ctx, p); err != nil {
			return domain.WrapStore("create payroll", err)
		}

		payroll = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if replay {
		s.logger.Info("payroll replayed for idempotency key",
			slog.String("employee_id", employeeID),
			slog.String("payroll_id", payroll.ID),
		)
	} else {
		s.logger.Info("payroll disbursed",
			slog.String("employee_id", employeeID),
			slog.String("payroll_id", payroll.ID),
			slog.String("net_pay", payroll.NetPay.String()),
			slog.Time("period_start", payroll.PeriodStart),
		)
	}

	return payroll, nil
}

func (s *payrollService) MonthlyReport(ctx context.Context, query ReportQuery) (*MonthlyReport, error) {
	now := s.clock.Now().In(s.cfg.Location)

	month, year := query.Month, query.Year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return nil, domain.NewValidationError("month", "must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return nil, domain.NewValidationError("year", "must be between 1 and 9999")
	}

	report := &MonthlyReport{
		Month:        month,
		Year:         year,
		Results:      []ReportRow{},
		TotalExpense: decimal.Zero,
	}

	employees, err := s.reportEmployees(ctx, query.EmployeeID)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return report, nil
	}

	window := MonthWindow(year, time.Month(month), s.cfg.Location)
	rows := make([]*ReportRow, len(employees))
	errs := make([]error, len(employees))

	var g errgroup.Group
	g.SetLimit(s.cfg.ReportWorkers)
	for i := range employees {
		emp := employees[i]
		g.Go(func() error {
			logs, err := s.workLogs.ListByEmployeeInWindow(ctx, emp.ID, window)
			if err != nil {
				errs[i] = err
				return nil
			}
			rows[i] = &ReportRow{
				Employee: emp,
				Month:    month,
				Year:     year,
				Period:   ComputePeriod(emp, logs),
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, row := range rows {
		if row == nil {
			s.logger.Warn("monthly report skipped employee",
				slog.String("employee_id", employees[i].ID),
				slog.Any("error", errs[i]),
			)
			report.Skipped = append(report.Skipped, employees[i].ID)
			continue
		}
		report.Results = append(report.Results, *row)
		report.TotalExpense = report.TotalExpense.Add(row.Period.NetPay)
	}

	if len(report.Results) == 0 {
		return nil, domain.WrapStore("list work logs", errors.Join(errs...))
	}

	return report, nil
}

func (s *payrollService) reportEmployees(ctx context.Context, employeeID string) ([]domain.Employee, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" || strings.EqualFold(employeeID, AllEmployees) {
		employees, err := s.employees.List(ctx)
		if err != nil {
			return nil, domain.WrapStore("list employees", err)
		}
		return employees, nil
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.WrapStore("get employee", err)
	}
	return []domain.Employee{*emp}, nil
}

func (s *payrollService) History(ctx context.Context, employeeID string) ([]domain.Payroll, error) {
	payrolls, err := s.payrolls.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, domain.WrapStore("list payrolls", err)
	}
	return payrolls, nil
}
