package service

import (
	"time"

	"github.com/payroll-api/internal/domain"
)

// UnpaidWindow охватывает записи после последней выплаты и до now. Для тех,
// кому ещё не платили, началом служит epoch
func UnpaidWindow(emp domain.Employee, epoch, now time.Time) domain.Window {
	start := epoch
	if emp.LastPayrollDate != nil {
		start = *emp.LastPayrollDate
	}
	return domain.Window{Start: start, End: now}
}

// MonthWindow охватывает календарный месяц в loc, обе границы включены
func MonthWindow(year int, month time.Month, loc *time.Location) domain.Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return domain.Window{
		Start:          start.UTC(),
		StartInclusive: true,
		End:            start.AddDate(0, 1, 0).Add(-time.Microsecond).UTC(),
	}
}
