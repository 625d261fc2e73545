package service

import (
	"github.com/payroll-api/internal/domain"
	"github.com/shopspring/decimal"
)

// PeriodResult - итоги по набору записей одного сотрудника
type PeriodResult struct {
	HoursPayRate1 decimal.Decimal
	HoursPayRate2 decimal.Decimal
	TotalHours    decimal.Decimal
	TotalPay      decimal.Decimal
	Deductions    decimal.Decimal
	NetPay        decimal.Decimal
}

// ComputePeriod суммирует записи, уже отобранные по emp и периоду. Пустые
// ставки и поля считаются нулём. Net pay может быть отрицательным, если
// удержания больше начислений
func ComputePeriod(emp domain.Employee, logs []domain.WorkLog) PeriodResult {
	var hours1, hours2, deductions decimal.Decimal
	for _, log := range logs {
		hours1 = hours1.Add(orZero(log.HoursPayRate1))
		hours2 = hours2.Add(orZero(log.HoursPayRate2))
		deductions = deductions.Add(orZero(log.Deduction))
	}

	totalPay := hours1.Mul(orZero(emp.PayRate1)).Add(hours2.Mul(orZero(emp.PayRate2)))

	return PeriodResult{
		HoursPayRate1: hours1,
		HoursPayRate2: hours2,
		TotalHours:    hours1.Add(hours2),
		TotalPay:      totalPay,
		Deductions:    deductions,
		NetPay:        totalPay.Sub(deductions),
	}
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
