package validation

import (
	"fmt"
	"slices"
)

// Границы возраста в профиле
const (
	MinEdad = 13
	MaxEdad = 100
)

// Levels допустимые уровни владения языком
var Levels = []string{"principiante", "intermedio", "avanzado"}

// GenderPreferences допустимые предпочтения пола собеседника: A без предпочтения
var GenderPreferences = []string{"A", "F", "M"}

// ValidateEdad проверяет возраст пользователя
func ValidateEdad(edad int) error {
	if edad < MinEdad || edad > MaxEdad {
		return fmt.Errorf("la edad debe estar entre %d y %d", MinEdad, MaxEdad)
	}
	return nil
}

// ValidateNivel проверяет уровень языка
func ValidateNivel(nivel string) error {
	if !slices.Contains(Levels, nivel) {
		return fmt.Errorf("nivel de idioma desconocido: %q", nivel)
	}
	return nil
}

// ValidateGenderPreference проверяет предпочтение пола собеседника
func ValidateGenderPreference(pref string) error {
	if !slices.Contains(GenderPreferences, pref) {
		return fmt.Errorf("preferencia de género desconocida: %q", pref)
	}
	return nil
}

// ValidateCharacterGender проверяет фильтр пола персонажа (M или F)
func ValidateCharacterGender(genero string) error {
	if genero != "M" && genero != "F" {
		return fmt.Errorf("género de personaje desconocido: %q", genero)
	}
	return nil
}
