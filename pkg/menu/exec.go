package menu

import (
	"os/exec"
	"strings"
)

// runDmenuStyle изпълнява dmenu-подобна програма: options на stdin,
// избор на stdout, exit status 1 при ESC
func runDmenuStyle(bin string, args []string, options []string) (string, error) {
	cmd := exec.Command(bin, args...)
	cmd.Stdin = strings.NewReader(strings.Join(options, "\n"))

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "", ErrCancelled
		}
		return "", err
	}

	result := strings.TrimSpace(string(output))
	if result == "" {
		return "", ErrCancelled
	}

	return result, nil
}

// runInputStyle изпълнява dmenu-подобна програма без options за free text
// вход. Празен вход с Enter връща default-а; ESC е cancel.
func runInputStyle(bin string, args []string, def string) (string, error) {
	cmd := exec.Command(bin, args...)
	cmd.Stdin = strings.NewReader("")

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "", ErrCancelled
		}
		return "", err
	}

	result := strings.TrimSpace(string(output))
	if result == "" {
		return def, nil
	}

	return result, nil
}
