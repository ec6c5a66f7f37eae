package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/amekhanov/drill-journal/models"
)

// RecordValidator implements the Validator interface for journal records:
// models.Well and models.Layer, in both value and pointer form.
//
// The rules themselves live on the model structs as `validate` tags; this
// type owns the validator instance and translates tag failures into
// user-readable messages wrapped in ErrValidation.
type RecordValidator struct {
	validate *validator.Validate
}

// NewRecordValidator constructs a new RecordValidator and returns it as the
// Validator interface. Field names in error messages follow the json tags of
// the model, matching what the server would report for the same record.
func NewRecordValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &RecordValidator{validate: v}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.Well / *models.Well
//   - models.Layer / *models.Layer
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset of Go struct
// fields; when omitted, every tagged field is validated.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Well:
		return v.check(ctx, value, fields...)
	case *models.Well:
		return v.check(ctx, *value, fields...)

	case models.Layer:
		return v.check(ctx, value, fields...)
	case *models.Layer:
		return v.check(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) check(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), snakeCase(fe.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// snakeCase converts a Go field name (gtfield params keep the struct form)
// to the json naming used everywhere else in messages.
func snakeCase(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
