// Package vars resolves typed variables to concrete string values at
// launch time. Each variable type has one resolution path: pickers and
// text input go through the prompt capability, datetime and timestamp
// through the clock, clipboard through the clipboard reader.
package vars

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lvim-tech/qlaunch/pkg/app"
	"github.com/lvim-tech/qlaunch/pkg/log"
)

var (
	// ErrCancelled се връща когато потребителят отмени prompt диалог.
	// Отменя целия launch, не замества празен string.
	ErrCancelled = errors.New("cancelled by user")

	// ErrInvalidFormat се връща при непознат datetime directive
	ErrInvalidFormat = errors.New("invalid datetime format")

	// ErrClipboardUnavailable се връща когато clipboard не може да се прочете
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// IsCancelled проверява дали грешката е от отказ
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// Prompter asks the user for values through dialog-style interactions.
type Prompter interface {
	AskText(prompt, def string) (string, error)
	AskFile(prompt, def string) (string, error)
	AskFolder(prompt, def string) (string, error)
}

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// Clipboard reads the current clipboard text. An unset clipboard reads as
// an empty string, not an error.
type Clipboard interface {
	ReadText() (string, error)
}

// Capabilities bundles everything resolution may need.
type Capabilities struct {
	Prompt    Prompter
	Clock     Clock
	Clipboard Clipboard
}

// ResolutionError reports which variable failed and why.
type ResolutionError struct {
	Var string
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("variable $%s: %v", e.Var, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Resolve produces the concrete string value for one variable.
func Resolve(name string, spec app.VariableSpec, caps Capabilities) (string, error) {
	switch spec.Type {
	case app.VarFilePicker:
		return resolvePrompted(name, caps.Prompt.AskFile, spec, "Select a file")

	case app.VarFolderPicker:
		return resolvePrompted(name, caps.Prompt.AskFolder, spec, "Select a folder")

	case app.VarInput:
		return resolvePrompted(name, caps.Prompt.AskText, spec, "Enter value")

	case app.VarDatetime:
		return formatDatetime(name, spec.Format, caps.Clock.Now())

	case app.VarTimestamp:
		// Ignores prompt/default/format entirely
		return strconv.FormatInt(caps.Clock.Now().Unix(), 10), nil

	case app.VarClipboard:
		text, err := caps.Clipboard.ReadText()
		if err != nil {
			return "", &ResolutionError{Var: name, Err: fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)}
		}
		return text, nil

	default:
		return "", &ResolutionError{Var: name, Err: fmt.Errorf("unknown variable type %q", spec.Type)}
	}
}

// ResolveAll resolves every referenced variable for one launch attempt.
// Each variable resolves once per attempt; nothing is cached across
// attempts. A referenced name with no declaration is left out of the map
// with a warning, so template expansion substitutes the empty string.
func ResolveAll(names []string, specs map[string]app.VariableSpec, caps Capabilities) (map[string]string, error) {
	values := make(map[string]string, len(names))

	for _, name := range names {
		spec, ok := specs[name]
		if !ok {
			log.Warn("undeclared variable in template, substituting empty string", "variable", name)
			continue
		}
		value, err := Resolve(name, spec, caps)
		if err != nil {
			return nil, err
		}
		values[name] = value
	}

	return values, nil
}

// resolvePrompted пита потребителя през подадената dialog функция
func resolvePrompted(name string, ask func(string, string) (string, error), spec app.VariableSpec, defaultPrompt string) (string, error) {
	prompt := spec.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}

	value, err := ask(prompt, spec.Default)
	if err != nil {
		if IsCancelled(err) {
			return "", err
		}
		return "", &ResolutionError{Var: name, Err: err}
	}
	return value, nil
}
