package cli

import (
	"strconv"
	"strings"
)

// backInput возвращает мастер на предыдущий шаг
const backInput = "<"

// choose prints numbered options and reads a choice by number or by name.
// Empty input keeps current. back is true when the user typed "<".
func (a *App) choose(prompt string, options []string, current string) (value string, back bool, err error) {
	for i, opt := range options {
		a.io.Printf("  %2d) %s\n", i+1, opt)
	}
	for {
		p := prompt
		if current != "" {
			p += "[" + current + "] "
		}
		input, err := a.io.ReadInput(p)
		if err != nil {
			return "", false, err
		}
		switch {
		case input == backInput:
			return "", true, nil
		case input == "":
			return current, false, nil
		}
		if v, ok := pick(options, input); ok {
			return v, false, nil
		}
		a.io.Printf("Unknown option %q, enter a number from 1 to %d\n", input, len(options))
	}
}

// pick resolves a 1-based index or a case-insensitive option name
func pick(options []string, input string) (string, bool) {
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}
	for _, opt := range options {
		if strings.EqualFold(opt, input) {
			return opt, true
		}
	}
	return "", false
}

// pickMany resolves a comma separated list of choices; unknown entries are returned separately
func pickMany(options []string, input string) (picked, unknown []string) {
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if v, ok := pick(options, part); ok {
			picked = append(picked, v)
		} else {
			unknown = append(unknown, part)
		}
	}
	return picked, unknown
}
