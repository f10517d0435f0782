package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/til-client/models"
)

func TestTILValidator_Validate(t *testing.T) {
	v := NewTILValidator()
	ctx := context.Background()

	validUser := models.CreateUserData{Name: "Tim", Username: "tim", Password: "secret"}

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid acronym", obj: models.CreateAcronymData{Short: "OMG", Long: "Oh My God"}},
		{name: "valid acronym pointer", obj: &models.CreateAcronymData{Short: "OMG", Long: "Oh My God"}},
		{name: "empty short", obj: models.CreateAcronymData{Long: "Oh My God"}, wantErr: ErrEmptyShort},
		{name: "blank long", obj: models.CreateAcronymData{Short: "OMG", Long: "  "}, wantErr: ErrEmptyLong},
		{name: "short too long", obj: models.CreateAcronymData{Short: strings.Repeat("A", maxShortLength+1), Long: "x"}, wantErr: ErrShortTooLong},
		{name: "only long checked", obj: models.CreateAcronymData{Long: "Oh My God"}, fields: []string{FieldLong}},
		{name: "valid category", obj: models.CreateCategoryData{Name: "Funny"}},
		{name: "empty category", obj: &models.CreateCategoryData{}, wantErr: ErrEmptyName},
		{name: "valid user", obj: validUser},
		{name: "user without password", obj: models.CreateUserData{Name: "Tim", Username: "tim"}, wantErr: ErrEmptyPassword},
		{name: "username with space", obj: models.CreateUserData{Name: "Tim", Username: "tim cook", Password: "x"}, wantErr: ErrInvalidUsername},
		{name: "unknown field", obj: validUser, fields: []string{"email"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: models.Acronym{}, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRuleErrorsMatchInvalidField(t *testing.T) {
	for _, err := range []error{ErrEmptyShort, ErrEmptyLong, ErrEmptyName, ErrEmptyUsername, ErrInvalidUsername, ErrEmptyPassword, ErrShortTooLong} {
		assert.ErrorIs(t, err, ErrInvalidField, err.Error())
	}
	assert.NotErrorIs(t, ErrUnknownField, ErrInvalidField)
}
