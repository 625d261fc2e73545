package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Суммы передаются как JSON-числа
	decimal.MarshalJSONWithoutQuotes = true
}

// CreateEmployeeRequest - запрос на создание сотрудника (POST /employees)
type CreateEmployeeRequest struct {
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	Role            string           `json:"role" validate:"max=200"`
	PayRate1        *decimal.Decimal `json:"pay_rate1" validate:"omitempty,gte=0"`
	PayRate2        *decimal.Decimal `json:"pay_rate2" validate:"omitempty,gte=0"`
	LastPayrollDate *string          `json:"last_payroll_date" validate:"omitempty,timestamp"`
}

// UpdateEmployeeRequest - запрос на обновление сотрудника (PUT /employees/{id}).
// Непереданные поля сохраняют текущее значение
type UpdateEmployeeRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Role            *string          `json:"role" validate:"omitempty,max=200"`
	PayRate1        *decimal.Decimal `json:"pay_rate1" validate:"omitempty,gte=0"`
	PayRate2        *decimal.Decimal `json:"pay_rate2" validate:"omitempty,gte=0"`
	LastPayrollDate *string          `json:"last_payroll_date" validate:"omitempty,timestamp"`
}

// CreateWorkLogRequest - запрос на создание записи о работе (POST /worklogs)
type CreateWorkLogRequest struct {
	EmployeeID    string           `json:"employeeId" validate:"required,uuid"`
	Date          string           `json:"date" validate:"required,timestamp"`
	HoursPayRate1 *decimal.Decimal `json:"hours_payrate1" validate:"omitempty,gte=0"`
	HoursPayRate2 *decimal.Decimal `json:"hours_payrate2" validate:"omitempty,gte=0"`
	Deduction     *decimal.Decimal `json:"deduction" validate:"omitempty,gte=0"`
}

// PreviewResponse - ответ GET /preview-pay/{id}
type PreviewResponse struct {
	EmployeeID  string          `json:"employeeId"`
	TotalHours  decimal.Decimal `json:"totalHours"`
	TotalPay    decimal.Decimal `json:"totalPay"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetPay      decimal.Decimal `json:"netPay"`
	LastPayDate time.Time       `json:"lastPayDate"`
	PreviewDate time.Time       `json:"previewDate"`
}

// ReportRowResponse - строка месячного отчёта по одному сотруднику
type ReportRowResponse struct {
	EmployeeID      string          `json:"employeeId"`
	Name            string          `json:"name"`
	Role            string          `json:"role"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	TotalHours      decimal.Decimal `json:"totalHours"`
	TotalPay        decimal.Decimal `json:"totalPay"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetPay          decimal.Decimal `json:"netPay"`
}

// MonthlyReportResponse - ответ GET /reports/monthly
type MonthlyReportResponse struct {
	Results      []ReportRowResponse `json:"results"`
	TotalExpense decimal.Decimal     `json:"totalExpense"`
	Skipped      []string            `json:"skipped,omitempty"`
}

// MessageResponse - ответ с подтверждением или ошибкой
type MessageResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
