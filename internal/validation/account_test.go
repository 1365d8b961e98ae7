package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "a@b.com"},
		{name: "valid with plus", email: "ana+chat@example.org"},
		{name: "empty", email: "", wantErr: true},
		{name: "spaces", email: "   ", wantErr: true},
		{name: "no at", email: "ana.example.com", wantErr: true},
		{name: "no dot in domain", email: "ana@localhost", wantErr: true},
		{name: "display name", email: "Ana <ana@example.com>", wantErr: true},
		{name: "two addresses", email: "a@b.com,c@d.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
		errMsg   string
	}{
		{name: "valid - min length", password: "secret"},
		{name: "valid - unicode counted by runes", password: "ñandú1"},
		{name: "invalid - empty", password: "", wantErr: true, errMsg: "obligatoria"},
		{name: "invalid - too short", password: "abc12", wantErr: true, errMsg: "al menos 6 caracteres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePasswordConfirmation(t *testing.T) {
	assert.NoError(t, ValidatePasswordConfirmation("secret1", "secret1"))
	assert.ErrorIs(t, ValidatePasswordConfirmation("secret1", "secret2"), ErrPasswordMismatch)
	assert.Error(t, ValidatePasswordConfirmation("abc", "abc"))
}

func TestValidateNombre(t *testing.T) {
	assert.NoError(t, ValidateNombre("Ana"))
	assert.Error(t, ValidateNombre("  "))
	assert.NoError(t, ValidateNombre(strings.Repeat("ñ", MaxNombreLen)))
	assert.Error(t, ValidateNombre(strings.Repeat("a", MaxNombreLen+1)))
}
