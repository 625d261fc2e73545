package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee - сотрудник. Пустая ставка считается нулём
type Employee struct {
	ID              string              `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name            string              `json:"name" gorm:"type:varchar(200);not null"`
	Role            string              `json:"role" gorm:"type:varchar(200);not null"`
	PayRate1        decimal.NullDecimal `json:"pay_rate1" gorm:"type:numeric(14,4)"`
	PayRate2        decimal.NullDecimal `json:"pay_rate2" gorm:"type:numeric(14,4)"`
	LastPayrollDate *time.Time          `json:"last_payroll_date"`
	CreatedAt       time.Time           `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time           `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName задаёт имя таблицы
func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// WorkLog - часы за день по двум ставкам и удержание. Пустые значения
// считаются нулём
type WorkLog struct {
	ID            string              `json:"id" gorm:"primaryKey;type:varchar(36)"`
	EmployeeID    string              `json:"employeeId" gorm:"type:varchar(36);not null;index:idx_work_logs_employee_date"`
	Date          time.Time           `json:"date" gorm:"not null;index:idx_work_logs_employee_date"`
	HoursPayRate1 decimal.NullDecimal `json:"hours_payrate1" gorm:"column:hours_payrate1;type:numeric(10,2)"`
	HoursPayRate2 decimal.NullDecimal `json:"hours_payrate2" gorm:"column:hours_payrate2;type:numeric(10,2)"`
	Deduction     decimal.NullDecimal `json:"deduction" gorm:"type:numeric(14,2)"`
	CreatedAt     time.Time           `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы
func (WorkLog) TableName() string {
	return "work_logs"
}

func (w *WorkLog) BeforeCreate(*gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// Payroll - проведённая выплата, после вставки не меняется
type Payroll struct {
	ID             string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	EmployeeID     string          `json:"employeeId" gorm:"type:varchar(36);not null;index"`
	TotalHours     decimal.Decimal `json:"totalHours" gorm:"type:numeric(12,2);not null"`
	TotalPay       decimal.Decimal `json:"totalPay" gorm:"type:numeric(16,4);not null"`
	Deductions     decimal.Decimal `json:"deductions" gorm:"type:numeric(16,4);not null"`
	NetPay         decimal.Decimal `json:"netPay" gorm:"type:numeric(16,4);not null"`
	PeriodStart    time.Time       `json:"periodStart" gorm:"not null"`
	PayDate        time.Time       `json:"payDate" gorm:"not null"`
	IdempotencyKey *string         `json:"idempotencyKey,omitempty" gorm:"type:varchar(128)"`
}

// TableName задаёт имя таблицы
func (Payroll) TableName() string {
	return "payrolls"
}

func (p *Payroll) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
