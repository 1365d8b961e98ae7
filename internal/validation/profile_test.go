package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEdad(t *testing.T) {
	tests := []struct {
		edad    int
		wantErr bool
	}{
		{edad: 0, wantErr: true},
		{edad: 12, wantErr: true},
		{edad: 13},
		{edad: 100},
		{edad: 101, wantErr: true},
	}

	for _, tt := range tests {
		err := ValidateEdad(tt.edad)
		if tt.wantErr {
			assert.Error(t, err, "edad %d", tt.edad)
		} else {
			assert.NoError(t, err, "edad %d", tt.edad)
		}
	}
}

func TestValidateNivel(t *testing.T) {
	for _, nivel := range Levels {
		assert.NoError(t, ValidateNivel(nivel))
	}
	assert.Error(t, ValidateNivel(""))
	assert.Error(t, ValidateNivel("experto"))
}

func TestValidateGenderPreference(t *testing.T) {
	for _, pref := range []string{"A", "F", "M"} {
		assert.NoError(t, ValidateGenderPreference(pref))
	}
	assert.Error(t, ValidateGenderPreference("X"))
	assert.Error(t, ValidateGenderPreference(""))
}

func TestValidateCharacterGender(t *testing.T) {
	assert.NoError(t, ValidateCharacterGender("F"))
	assert.NoError(t, ValidateCharacterGender("M"))
	assert.Error(t, ValidateCharacterGender("A"))
}
