package usecase

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"ongeo_api/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// Violation codes.
const (
	codeRequired       = "required"
	codeInvalid        = "invalid"
	codeMustBePositive = "must_be_positive"
	codeMustNotBeNeg   = "must_not_be_negative"
)

// ValidationError maps field names to violation codes. It is produced
// before any network call so callers can render the problems inline.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

const (
	minSlugLen = 3
	maxSlugLen = 100

	slugRule = "min=3,max=100,slug"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(JSONFieldName)
	// slug is a lowercase, hyphen separated identifier.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

// JSONFieldName reports a struct field by its json name so violations are
// keyed the way clients send them.
func JSONFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// FieldErrors converts validator failures into a *ValidationError. Other
// errors are returned unchanged.
func FieldErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = violationCode(fe.Tag())
	}
	return &ValidationError{Fields: fields}
}

func violationCode(tag string) string {
	switch tag {
	case "required":
		return codeRequired
	case "gt":
		return codeMustBePositive
	case "gte":
		return codeMustNotBeNeg
	default:
		return codeInvalid
	}
}

func validateStruct(s any) error {
	return FieldErrors(validate.Struct(s))
}

func validSlug(s string) bool {
	return validate.Var(s, slugRule) == nil
}

// normalizeBudgetRequest trims free text and canonicalises e-mail and state.
func normalizeBudgetRequest(r entities.BudgetRequest) entities.BudgetRequest {
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.ClientEmail = strings.ToLower(strings.TrimSpace(r.ClientEmail))
	r.ClientPhone = strings.TrimSpace(r.ClientPhone)
	r.PropertyName = strings.TrimSpace(r.PropertyName)
	r.PropertyType = strings.TrimSpace(r.PropertyType)
	r.State = strings.ToUpper(strings.TrimSpace(r.State))
	r.City = strings.TrimSpace(r.City)
	r.ServiceType = strings.TrimSpace(r.ServiceType)
	r.AdditionalNotes = strings.TrimSpace(r.AdditionalNotes)
	if r.ClientType == "" {
		r.ClientType = entities.ClientTypePessoaFisica
	}
	return r
}

func validateBudgetRequest(r entities.BudgetRequest) error {
	return validateStruct(r)
}
