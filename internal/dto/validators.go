package dto

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of date-only fields.
const DateLayout = "2006-01-02"

var (
	hundred      = decimal.NewFromInt(100)
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the decimal validation tags to v:
//
//	dgt0    value > 0
//	dgte0   value >= 0
//	dlte100 value <= 100
func RegisterValidators(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"dgt0":    decimalRule(func(d decimal.Decimal) bool { return d.IsPositive() }),
		"dgte0":   decimalRule(func(d decimal.Decimal) bool { return !d.IsNegative() }),
		"dlte100": decimalRule(func(d decimal.Decimal) bool { return d.LessThanOrEqual(hundred) }),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register validation %s: %w", tag, err)
		}
	}
	return nil
}

// RegisterBindingValidators registers the decimal tags on gin's default validator once.
func RegisterBindingValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = RegisterValidators(v)
	})
	return registerErr
}

func decimalRule(check func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		return check(d)
	}
}

// ParseDate parses a yyyy-mm-dd string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseOptionalDate parses s when it is set and non-empty.
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders t as yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatOptionalDate renders t as yyyy-mm-dd, or nil.
func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}
