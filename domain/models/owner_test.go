package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOwner(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Owner
	}{
		{"bare mexican number", "6621234567", Owner{OwnerKindPhone, "+526621234567"}},
		{"already e164", "+16621234567", Owner{OwnerKindPhone, "+16621234567"}},
		{"formatted number", "(662) 123-45.67", Owner{OwnerKindPhone, "+526621234567"}},
		{"long number without plus", "526621234567", Owner{OwnerKindPhone, "+526621234567"}},
		{"email", "a@x.com", Owner{OwnerKindEmail, "a@x.com"}},
		{"email is lowercased", "  Ana.Lopez@UES.mx ", Owner{OwnerKindEmail, "ana.lopez@ues.mx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOwner(tt.raw, "52")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOwnerIsDeterministic(t *testing.T) {
	first, err := ParseOwner("6621234567", "52")
	require.NoError(t, err)

	second, err := ParseOwner(first.Value, "52")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseOwnerRejects(t *testing.T) {
	for _, raw := range []string{"", "   ", "@ues.mx", "ana@", "12345", "662-abc-4567", "66+21234567"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseOwner(raw, "52")
			assert.ErrorIs(t, err, ErrInvalidOwner)
		})
	}
}
