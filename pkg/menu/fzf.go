package menu

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type Fzf struct {
	args []string
}

func NewFzf(args []string) *Fzf {
	return &Fzf{args: args}
}

func (f *Fzf) Name() string {
	return "fzf"
}

func (f *Fzf) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, f.args...)
	args = append(args, "--prompt", prompt+"> ")

	cmd := exec.Command("fzf", args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", fmt.Errorf("failed to create stdin pipe: %w", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start fzf: %w", err)
	}

	// Write options to stdin
	for _, option := range options {
		fmt.Fprintln(stdin, option)
	}
	stdin.Close()

	// Read selection
	scanner := bufio.NewScanner(stdout)
	var choice string
	if scanner.Scan() {
		choice = strings.TrimSpace(scanner.Text())
	}

	if err := cmd.Wait(); err != nil {
		// fzf излиза с 130 при ESC/Ctrl-C
		if exitErr, ok := err.(*exec.ExitError); ok {
			code := exitErr.ExitCode()
			if code == 1 || code == 130 {
				return "", ErrCancelled
			}
		}
		return "", fmt.Errorf("fzf exited with error: %w", err)
	}

	if choice == "" {
		return "", ErrCancelled
	}

	return choice, nil
}

func (f *Fzf) Input(prompt, def string) (string, error) {
	args := append([]string{}, f.args...)
	// --print-query печата въведения текст на първия ред
	args = append(args, "--prompt", prompt+"> ", "--print-query")

	cmd := exec.Command("fzf", args...)
	cmd.Stderr = os.Stderr
	cmd.Stdin = strings.NewReader("")

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			code := exitErr.ExitCode()
			if code == 130 {
				return "", ErrCancelled
			}
			// Exit 1 означава no match; query-то е вече в output
			if code != 1 {
				return "", fmt.Errorf("fzf exited with error: %w", err)
			}
		} else {
			return "", err
		}
	}

	query := ""
	if scanner := bufio.NewScanner(strings.NewReader(string(output))); scanner.Scan() {
		query = strings.TrimSpace(scanner.Text())
	}

	if query == "" {
		return def, nil
	}

	return query, nil
}
