package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/til-client/models"
)

const (
	FieldShort    = "short"
	FieldLong     = "long"
	FieldName     = "name"
	FieldUsername = "username"
	FieldPassword = "password"
)

// maxShortLength bounds an acronym's short form.
const maxShortLength = 32

type TILValidator struct {
}

func NewTILValidator() Validator {
	return &TILValidator{}
}

func (v *TILValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateAcronymData:
		return v.validateAcronym(ctx, value, fields...)
	case *models.CreateAcronymData:
		return v.validateAcronym(ctx, *value, fields...)

	case models.CreateCategoryData:
		return v.validateCategory(ctx, value, fields...)
	case *models.CreateCategoryData:
		return v.validateCategory(ctx, *value, fields...)

	case models.CreateUserData:
		return v.validateUser(ctx, value, fields...)
	case *models.CreateUserData:
		return v.validateUser(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *TILValidator) validateAcronym(_ context.Context, data models.CreateAcronymData, fields ...string) error {
	return check(map[string]func() error{
		FieldShort: func() error {
			if blank(data.Short) {
				return ErrEmptyShort
			}
			if utf8.RuneCountInString(data.Short) > maxShortLength {
				return ErrShortTooLong
			}
			return nil
		},
		FieldLong: func() error {
			if blank(data.Long) {
				return ErrEmptyLong
			}
			return nil
		},
	}, []string{FieldShort, FieldLong}, fields)
}

func (v *TILValidator) validateCategory(_ context.Context, data models.CreateCategoryData, fields ...string) error {
	return check(map[string]func() error{
		FieldName: func() error {
			if blank(data.Name) {
				return ErrEmptyName
			}
			return nil
		},
	}, []string{FieldName}, fields)
}

func (v *TILValidator) validateUser(_ context.Context, data models.CreateUserData, fields ...string) error {
	return check(map[string]func() error{
		FieldName: func() error {
			if blank(data.Name) {
				return ErrEmptyName
			}
			return nil
		},
		FieldUsername: func() error {
			if blank(data.Username) {
				return ErrEmptyUsername
			}
			if strings.IndexFunc(data.Username, unicode.IsSpace) >= 0 {
				return ErrInvalidUsername
			}
			return nil
		},
		FieldPassword: func() error {
			if data.Password == "" {
				return ErrEmptyPassword
			}
			return nil
		},
	}, []string{FieldName, FieldUsername, FieldPassword}, fields)
}

// check runs the rules named in fields, or all rules in order when fields
// is empty, and returns the first violation.
func check(rules map[string]func() error, order []string, fields []string) error {
	if len(fields) == 0 {
		fields = order
	}

	for _, field := range fields {
		rule, ok := rules[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := rule(); err != nil {
			return err
		}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
