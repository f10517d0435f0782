package client

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/til-client/models"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatTable},
		{in: "table", want: FormatTable},
		{in: "JSON", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, errUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender(t *testing.T) {
	id := uuid.MustParse("0190c9a4-0000-7000-8000-000000000001")
	categories := []models.Category{{ID: &id, Name: "Funny"}}
	v := categoriesView(categories...).withData(categories)

	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{
			name:   "table",
			format: FormatTable,
			want:   "ID                                    NAME\n0190c9a4-0000-7000-8000-000000000001  Funny\n",
		},
		{
			name:   "json",
			format: FormatJSON,
			want:   "[\n  {\n    \"id\": \"0190c9a4-0000-7000-8000-000000000001\",\n    \"name\": \"Funny\"\n  }\n]\n",
		},
		{
			name:   "yaml",
			format: FormatYAML,
			want:   "- id: 0190c9a4-0000-7000-8000-000000000001\n  name: Funny\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render(&buf, tt.format, v))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestAcronymsView_MissingFields(t *testing.T) {
	v := acronymsView(models.Acronym{Short: "A", Long: "B"})
	assert.Equal(t, [][]string{{"-", "A", "B", "-"}}, v.rows)
}
