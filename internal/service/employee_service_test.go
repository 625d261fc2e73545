package service

import (
	"context"
	"testing"
	"time"

	"github.com/payroll-api/internal/domain"
	"github.com/payroll-api/internal/dto"
	"github.com/payroll-api/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

// hookedEmployees запускает afterGet один раз сразу после первого чтения
type hookedEmployees struct {
	repository.EmployeeRepository
	afterGet func()
}

func (h *hookedEmployees) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := h.EmployeeRepository.GetByID(ctx, id)
	if hook := h.afterGet; hook != nil {
		h.afterGet = nil
		hook()
	}
	return emp, err
}

func TestEmployeeService(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewEmployeeService(repository.NewEmployeeRepository(db))

	emp, err := svc.Create(ctx, &dto.CreateEmployeeRequest{
		Name:     "  Alice ",
		Role:     "Cashier",
		PayRate1: ptr(dec("12.5")),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", emp.Name)
	assert.True(t, emp.PayRate1.Decimal.Equal(dec("12.5")))
	assert.True(t, emp.PayRate2.Valid, "absent rate is stored as zero")
	assert.True(t, emp.PayRate2.Decimal.IsZero())
	assert.Nil(t, emp.LastPayrollDate)

	updated, err := svc.Update(ctx, emp.ID, &dto.UpdateEmployeeRequest{
		Role:            ptr("Manager"),
		PayRate2:        ptr(decimal.NewFromInt(20)),
		LastPayrollDate: ptr("2025-02-28"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "Manager", updated.Role)
	assert.True(t, updated.PayRate2.Decimal.Equal(decimal.NewFromInt(20)))
	require.NotNil(t, updated.LastPayrollDate)
	assert.True(t, updated.LastPayrollDate.Equal(time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)))

	got, err := svc.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Manager", got.Role)

	renamed, err := svc.Update(ctx, emp.ID, &dto.UpdateEmployeeRequest{Name: ptr("Alice B.")})
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", renamed.Name)
	assert.Equal(t, "Manager", renamed.Role)
	assert.True(t, renamed.PayRate1.Decimal.Equal(dec("12.5")))
	require.NotNil(t, renamed.LastPayrollDate, "edit without last_payroll_date keeps it")
	assert.True(t, renamed.LastPayrollDate.Equal(time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, emp.ID))
	_, err = svc.GetByID(ctx, emp.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeService_MissingEmployee(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(repository.NewEmployeeRepository(newTestDB(t)))

	updated, err := svc.Update(ctx, "8d3e4f40-1111-4222-8333-444455556666", &dto.UpdateEmployeeRequest{Name: ptr("Ghost")})
	require.NoError(t, err)
	assert.Nil(t, updated)

	assert.NoError(t, svc.Delete(ctx, "8d3e4f40-1111-4222-8333-444455556666"))
}

func TestEmployeeService_InvalidLastPayrollDate(t *testing.T) {
	svc := NewEmployeeService(repository.NewEmployeeRepository(newTestDB(t)))

	_, err := svc.Create(context.Background(), &dto.CreateEmployeeRequest{
		Name:            "Bob",
		LastPayrollDate: ptr("yesterday"),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "last_payroll_date", verr.Field)
}

func TestWorkLogService(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkLogService(repository.NewWorkLogRepository(newTestDB(t)))

	log, err := svc.Create(ctx, &dto.CreateWorkLogRequest{
		EmployeeID:    "8d3e4f40-1111-4222-8333-444455556666",
		Date:          "2025-03-04T08:00:00Z",
		HoursPayRate1: ptr(dec("7.5")),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, log.ID)
	assert.True(t, log.Date.Equal(time.Date(2025, time.March, 4, 8, 0, 0, 0, time.UTC)))
	assert.True(t, log.HoursPayRate2.Valid)
	assert.True(t, log.HoursPayRate2.Decimal.IsZero())
	assert.True(t, log.Deduction.Decimal.IsZero())

	logs, err := svc.ListByEmployee(ctx, "8d3e4f40-1111-4222-8333-444455556666")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.True(t, logs[0].HoursPayRate1.Decimal.Equal(dec("7.5")))

	_, err = svc.Create(ctx, &dto.CreateWorkLogRequest{EmployeeID: log.EmployeeID, Date: "someday"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)
}

func TestEmployeeService_RenameDuringDisburseKeepsCheckpoint(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	emp := f.employee(t, "Gina", "10", "0")
	f.log(t, emp.ID, march(6), "8", "0", "0")

	hooked := &hookedEmployees{EmployeeRepository: f.employees}
	hooked.afterGet = func() {
		payroll, err := f.svc.Disburse(ctx, emp.ID, "")
		require.NoError(t, err)
		assertDecimal(t, "80", payroll.NetPay)
	}

	updated, err := NewEmployeeService(hooked).Update(ctx, emp.ID, &dto.UpdateEmployeeRequest{Name: ptr("Gina R.")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Gina R.", updated.Name)
	require.NotNil(t, updated.LastPayrollDate)
	assert.True(t, updated.LastPayrollDate.Equal(f.clock.Now()))

	preview, err := f.svc.Preview(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, preview.Period.NetPay.IsZero())
	assert.True(t, preview.Period.TotalHours.IsZero())

	again, err := f.svc.Disburse(ctx, emp.ID, "")
	require.NoError(t, err)
	assert.True(t, again.NetPay.IsZero())
}
