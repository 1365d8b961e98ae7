package validation

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// MaxNombreLen максимальная длина отображаемого имени
	MaxNombreLen = 64
)

// ErrPasswordMismatch возвращается, когда пароль и подтверждение различаются
var ErrPasswordMismatch = errors.New("las contraseñas no coinciden")

// ValidateEmail проверяет, что строка является одиночным адресом вида user@host
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("el email es obligatorio")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("el email %q no es válido", email)
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	if !strings.Contains(domain, ".") {
		return fmt.Errorf("el email %q no es válido", email)
	}
	return nil
}

// ValidatePassword проверяет минимальную длину пароля
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("la contraseña es obligatoria")
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fmt.Errorf("la contraseña debe tener al menos %d caracteres", MinPasswordLen)
	}
	return nil
}

// ValidatePasswordConfirmation проверяет пароль и его повтор при регистрации
func ValidatePasswordConfirmation(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	return ValidatePassword(password)
}

// ValidateNombre проверяет отображаемое имя
func ValidateNombre(nombre string) error {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return errors.New("el nombre es obligatorio")
	}
	if utf8.RuneCountInString(nombre) > MaxNombreLen {
		return fmt.Errorf("el nombre no puede superar %d caracteres", MaxNombreLen)
	}
	return nil
}
