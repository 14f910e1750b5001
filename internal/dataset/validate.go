package dataset

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/janakalyan/loanwatch/internal/model"
)

// Rule names reported in ValidationError.
const (
	RuleField           = "field"
	RuleDuplicateID     = "duplicate-id"
	RuleUnknownCustomer = "unknown-customer"
)

// ValidationError describes one problem in a dataset.
type ValidationError struct {
	Rule        string
	Record      string // "customer 3", "transaction 12"
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Rule, e.Record, e.Description)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Validate checks field rules, unique IDs and customer references.
// It never stops at the first problem.
func Validate(customers []model.Customer, txns []model.Transaction) []ValidationError {
	var errs []ValidationError

	known := make(map[string]bool, len(customers))
	for _, c := range customers {
		record := "customer " + c.ID
		errs = append(errs, fieldErrors(record, c)...)
		if known[c.ID] {
			errs = append(errs, ValidationError{
				Rule:        RuleDuplicateID,
				Record:      record,
				Description: fmt.Sprintf("customer ID %q appears more than once", c.ID),
			})
		}
		known[c.ID] = true
	}

	seen := make(map[string]bool, len(txns))
	for _, t := range txns {
		record := "transaction " + t.ID
		errs = append(errs, fieldErrors(record, t)...)
		if seen[t.ID] {
			errs = append(errs, ValidationError{
				Rule:        RuleDuplicateID,
				Record:      record,
				Description: fmt.Sprintf("transaction ID %q appears more than once", t.ID),
			})
		}
		seen[t.ID] = true

		if t.CustomerID != "" && !known[t.CustomerID] {
			errs = append(errs, ValidationError{
				Rule:        RuleUnknownCustomer,
				Record:      record,
				Description: fmt.Sprintf("references unknown customer %q", t.CustomerID),
			})
		}
	}

	return errs
}

func fieldErrors(record string, v any) []ValidationError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Rule: RuleField, Record: record, Description: err.Error()}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out = append(out, ValidationError{
			Rule:        RuleField,
			Record:      record,
			Description: fmt.Sprintf("%s fails %s", fe.Field(), rule),
		})
	}
	return out
}
