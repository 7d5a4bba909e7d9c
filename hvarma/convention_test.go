package hvarma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignConvention(t *testing.T) {
	tests := []struct {
		input   string
		want    SignConvention
		wantErr bool
	}{
		{"symmetric", Symmetric, false},
		{"Symmetric", Symmetric, false},
		{" reference ", Reference, false},
		{"REFERENCE", Reference, false},
		{"", 0, true},
		{"hermitian", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSignConvention(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignConventionString(t *testing.T) {
	assert.Equal(t, "symmetric", Symmetric.String())
	assert.Equal(t, "reference", Reference.String())
	assert.Equal(t, "SignConvention(7)", SignConvention(7).String())

	for _, c := range []SignConvention{Symmetric, Reference} {
		parsed, err := ParseSignConvention(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestSymmetricIsDefault(t *testing.T) {
	var c SignConvention
	assert.Equal(t, Symmetric, c)
	assert.Equal(t, Symmetric, DefaultConfig().Params.Convention)
}
