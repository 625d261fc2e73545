package dto

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/payroll-api/internal/domain"
	"github.com/shopspring/decimal"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp разбирает метки RFC 3339 и даты без времени. Значения без
// зоны считаются UTC. Результат в UTC с точностью до микросекунды
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Truncate(time.Microsecond), nil
		}
	}
	return time.Time{}, errors.New("must be an RFC 3339 timestamp or a YYYY-MM-DD date")
}

// NewValidator создаёт валидатор: поля называются по JSON-именам, decimal
// сравнивается как число, поддерживается тег "timestamp"
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		f, _ := d.Float64()
		return f
	}, decimal.Decimal{})

	_ = v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		_, err := ParseTimestamp(fl.Field().String())
		return err == nil
	})

	return v
}

// ToValidationError превращает ошибку валидатора в domain.ValidationError
// по первому невалидному полю
func ToValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("", err.Error())
	}

	fe := verrs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "gte":
		msg = "must be greater than or equal to " + fe.Param()
	case "lte":
		msg = "must be less than or equal to " + fe.Param()
	case "min", "max":
		msg = "length must satisfy " + fe.Tag() + "=" + fe.Param()
	case "uuid":
		msg = "must be a valid id"
	case "timestamp":
		msg = "must be an RFC 3339 timestamp or a YYYY-MM-DD date"
	default:
		msg = "is invalid"
	}
	return domain.NewValidationError(fe.Field(), msg)
}
