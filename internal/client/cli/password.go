package cli

import (
	"fmt"
	"os"
	"strings"
)

// PasswordEnv переменная окружения с паролем для неинтерактивного входа
const PasswordEnv = "CHAT_PASSWORD"

// passwordSources источники пароля, кроме интерактивного ввода
type passwordSources struct {
	FromFile string
	FromArgs string
}

// readPassword retrieves the password from various sources with priority:
// 1. Environment variable CHAT_PASSWORD
// 2. File given by --password-file
// 3. Command-line flag --password
// 4. Interactive prompt (fallback)
func (a *App) readPassword(sources passwordSources, prompt string) (string, error) {
	// Priority 1: Environment variable
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	// Priority 2: File
	if sources.FromFile != "" {
		content, err := os.ReadFile(sources.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: CLI parameter
	if sources.FromArgs != "" {
		return sources.FromArgs, nil
	}

	// Priority 4: Interactive prompt
	password, err := a.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

func passwordFromEnv() bool {
	return os.Getenv(PasswordEnv) != ""
}

// promptIfEmpty возвращает value или спрашивает его у пользователя
func (a *App) promptIfEmpty(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	input, err := a.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return input, nil
}
