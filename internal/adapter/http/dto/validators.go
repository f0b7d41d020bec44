package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"pod-seller-ledger/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs the ledger validators on v. Decimal fields are validated
// through their string form.
func Register(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("decimal_gt0", validateDecimalPositive)
	_ = v.RegisterValidation("advance_type", validateAdvanceType)
	_ = v.RegisterValidation("txn_type", validateTxnType)
	_ = v.RegisterValidation("repayment_method", validateRepaymentMethod)
	_ = v.RegisterValidation("safe_id", validateSafeID)
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func validateDecimalPositive(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && domain.ValidateAmount(d) == nil
}

func validateAdvanceType(fl validator.FieldLevel) bool {
	return domain.AdvanceType(fl.Field().String()).IsValid()
}

// validateTxnType accepts the types that may be posted manually.
func validateTxnType(fl validator.FieldLevel) bool {
	switch domain.TransactionType(fl.Field().String()) {
	case domain.TransactionTypeCredit, domain.TransactionTypeDebit,
		domain.TransactionTypeProfitShare, domain.TransactionTypeHold,
		domain.TransactionTypeRelease:
		return true
	}
	return false
}

func validateRepaymentMethod(fl validator.FieldLevel) bool {
	return domain.RepaymentMethod(fl.Field().String()).IsValid()
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			if elem := f.Elem(); elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
