package service

import (
	"testing"
	"time"

	"github.com/payroll-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestComputePeriod(t *testing.T) {
	tests := []struct {
		name       string
		emp        domain.Employee
		logs       []domain.WorkLog
		wantHours  string
		wantPay    string
		wantDeduct string
		wantNet    string
	}{
		{
			name: "two tiers",
			emp:  domain.Employee{PayRate1: nullDec("10"), PayRate2: nullDec("15")},
			logs: []domain.WorkLog{
				{HoursPayRate1: nullDec("5"), HoursPayRate2: nullDec("0"), Deduction: nullDec("2")},
				{HoursPayRate1: nullDec("0"), HoursPayRate2: nullDec("4"), Deduction: nullDec("0")},
			},
			wantHours: "9", wantPay: "110", wantDeduct: "2", wantNet: "108",
		},
		{
			name:      "no logs",
			emp:       domain.Employee{PayRate1: nullDec("10"), PayRate2: nullDec("15")},
			wantHours: "0", wantPay: "0", wantDeduct: "0", wantNet: "0",
		},
		{
			name: "missing rates count as zero",
			emp:  domain.Employee{PayRate2: nullDec("20")},
			logs: []domain.WorkLog{
				{HoursPayRate1: nullDec("8"), HoursPayRate2: nullDec("1")},
			},
			wantHours: "9", wantPay: "20", wantDeduct: "0", wantNet: "20",
		},
		{
			name: "one malformed log does not poison the sums",
			emp:  domain.Employee{PayRate1: nullDec("12.5"), PayRate2: nullDec("18")},
			logs: []domain.WorkLog{
				{HoursPayRate1: nullDec("4")},
				{HoursPayRate2: nullDec("2.5"), Deduction: nullDec("1.25")},
				{},
			},
			wantHours: "6.5", wantPay: "95", wantDeduct: "1.25", wantNet: "93.75",
		},
		{
			name: "negative net pay is kept",
			emp:  domain.Employee{PayRate1: nullDec("10")},
			logs: []domain.WorkLog{
				{HoursPayRate1: nullDec("1"), Deduction: nullDec("25")},
			},
			wantHours: "1", wantPay: "10", wantDeduct: "25", wantNet: "-15",
		},
		{
			name: "decimal rates stay exact",
			emp:  domain.Employee{PayRate1: nullDec("0.1"), PayRate2: nullDec("0.2")},
			logs: []domain.WorkLog{
				{HoursPayRate1: nullDec("3"), HoursPayRate2: nullDec("3")},
			},
			wantHours: "6", wantPay: "0.9", wantDeduct: "0", wantNet: "0.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePeriod(tt.emp, tt.logs)
			assertDecimal(t, tt.wantHours, got.TotalHours)
			assertDecimal(t, tt.wantPay, got.TotalPay)
			assertDecimal(t, tt.wantDeduct, got.Deductions)
			assertDecimal(t, tt.wantNet, got.NetPay)
			assert.True(t, got.HoursPayRate1.Add(got.HoursPayRate2).Equal(got.TotalHours))
		})
	}
}

func TestComputePeriod_Idempotent(t *testing.T) {
	emp := domain.Employee{PayRate1: nullDec("11"), PayRate2: nullDec("17")}
	logs := []domain.WorkLog{
		{HoursPayRate1: nullDec("3"), HoursPayRate2: nullDec("2"), Deduction: nullDec("4")},
	}

	first := ComputePeriod(emp, logs)
	second := ComputePeriod(emp, logs)
	assert.Equal(t, first, second)
}

func TestUnpaidWindow(t *testing.T) {
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	w := UnpaidWindow(domain.Employee{}, epoch, now)
	assert.Equal(t, epoch, w.Start)
	assert.False(t, w.StartInclusive)
	assert.Equal(t, now, w.End)
	assert.False(t, w.Contains(epoch))
	assert.True(t, w.Contains(epoch.Add(time.Second)))
	assert.True(t, w.Contains(now))
	assert.False(t, w.Contains(now.Add(time.Second)))

	paid := time.Date(2025, 2, 28, 17, 0, 0, 0, time.UTC)
	w = UnpaidWindow(domain.Employee{LastPayrollDate: &paid}, epoch, now)
	assert.Equal(t, paid, w.Start)
}

func TestMonthWindow(t *testing.T) {
	w := MonthWindow(2024, time.February, time.UTC)
	assert.True(t, w.StartInclusive)
	assert.True(t, w.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2024, 2, 29, 23, 59, 59, 999_000_000, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)))

	december := MonthWindow(2024, time.December, time.UTC)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 999_999_000, time.UTC), december.End)

	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}
	local := MonthWindow(2024, time.June, berlin)
	assert.Equal(t, time.Date(2024, 5, 31, 22, 0, 0, 0, time.UTC), local.Start)
}
