package vars

import (
	"errors"
	"testing"
	"time"

	"github.com/lvim-tech/qlaunch/pkg/app"
)

type fakePrompter struct {
	text      string
	file      string
	folder    string
	err       error
	lastAsked string
	lastDef   string
}

func (f *fakePrompter) AskText(prompt, def string) (string, error) {
	f.lastAsked, f.lastDef = prompt, def
	return f.text, f.err
}

func (f *fakePrompter) AskFile(prompt, def string) (string, error) {
	f.lastAsked, f.lastDef = prompt, def
	return f.file, f.err
}

func (f *fakePrompter) AskFolder(prompt, def string) (string, error) {
	f.lastAsked, f.lastDef = prompt, def
	return f.folder, f.err
}

type fixedClock struct {
	instant time.Time
}

func (c fixedClock) Now() time.Time {
	return c.instant
}

type fakeClipboard struct {
	text string
	err  error
}

func (c fakeClipboard) ReadText() (string, error) {
	return c.text, c.err
}

func caps(p Prompter, c Clock, cb Clipboard) Capabilities {
	return Capabilities{Prompt: p, Clock: c, Clipboard: cb}
}

func TestResolveDatetime(t *testing.T) {
	instant := time.Date(2025, 11, 10, 14, 30, 22, 0, time.UTC)

	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{
			name:     "explicit date format",
			format:   "%Y-%m-%d",
			expected: "2025-11-10",
		},
		{
			name:     "default format when absent",
			format:   "",
			expected: "2025-11-10",
		},
		{
			name:     "datetime with time",
			format:   "%Y-%m-%d_%H-%M-%S",
			expected: "2025-11-10_14-30-22",
		},
		{
			name:     "escaped percent",
			format:   "%d%%",
			expected: "10%",
		},
		{
			name:     "two digit year and month names",
			format:   "%b %y",
			expected: "Nov 25",
		},
		{
			name:     "literal digit stays verbatim",
			format:   "v2-%Y",
			expected: "v2-2025",
		},
		{
			name:     "literal digit between directives",
			format:   "run 1 %Y",
			expected: "run 1 2025",
		},
		{
			name:     "literal month name stays verbatim",
			format:   "%Y Jan",
			expected: "2025 Jan",
		},
		{
			name:     "literal reference-time tokens",
			format:   "15:04 is %H:%M",
			expected: "15:04 is 14:30",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := app.VariableSpec{Type: app.VarDatetime, Format: tc.format}
			got, err := Resolve("when", spec, caps(nil, fixedClock{instant}, nil))
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Resolve() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestResolveDatetimeInvalidFormat(t *testing.T) {
	spec := app.VariableSpec{Type: app.VarDatetime, Format: "%Y-%Q"}
	_, err := Resolve("when", spec, caps(nil, fixedClock{time.Now()}, nil))
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("Resolve() error = %v, want ErrInvalidFormat", err)
	}

	var resErr *ResolutionError
	if !errors.As(err, &resErr) || resErr.Var != "when" {
		t.Errorf("error does not name the offending variable: %v", err)
	}
}

func TestResolveDatetimeTrailingPercent(t *testing.T) {
	spec := app.VariableSpec{Type: app.VarDatetime, Format: "%Y-%"}
	if _, err := Resolve("when", spec, caps(nil, fixedClock{time.Now()}, nil)); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("Resolve() error = %v, want ErrInvalidFormat", err)
	}
}

func TestResolveTimestamp(t *testing.T) {
	instant := time.Date(2025, 11, 10, 14, 30, 22, 0, time.UTC)
	// Prompt, default и format се игнорират изцяло
	spec := app.VariableSpec{Type: app.VarTimestamp, Prompt: "x", Default: "y", Format: "%Q"}

	got, err := Resolve("ts", spec, caps(nil, fixedClock{instant}, nil))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got != "1762785022" {
		t.Errorf("Resolve() = %q, want %q", got, "1762785022")
	}
}

func TestResolveClipboard(t *testing.T) {
	t.Run("clipboard text", func(t *testing.T) {
		spec := app.VariableSpec{Type: app.VarClipboard}
		got, err := Resolve("clip", spec, caps(nil, nil, fakeClipboard{text: "copied"}))
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if got != "copied" {
			t.Errorf("Resolve() = %q, want %q", got, "copied")
		}
	})

	t.Run("empty clipboard is empty string, not an error", func(t *testing.T) {
		spec := app.VariableSpec{Type: app.VarClipboard}
		got, err := Resolve("clip", spec, caps(nil, nil, fakeClipboard{text: ""}))
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if got != "" {
			t.Errorf("Resolve() = %q, want empty string", got)
		}
	})

	t.Run("unavailable clipboard is an error", func(t *testing.T) {
		spec := app.VariableSpec{Type: app.VarClipboard}
		_, err := Resolve("clip", spec, caps(nil, nil, fakeClipboard{err: errors.New("no tool")}))
		if !errors.Is(err, ErrClipboardUnavailable) {
			t.Fatalf("Resolve() error = %v, want ErrClipboardUnavailable", err)
		}
	})
}

func TestResolvePrompted(t *testing.T) {
	t.Run("text input passes prompt and default", func(t *testing.T) {
		p := &fakePrompter{text: "typed"}
		spec := app.VariableSpec{Type: app.VarInput, Prompt: "Give me a value", Default: "dflt"}

		got, err := Resolve("v", spec, caps(p, nil, nil))
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if got != "typed" {
			t.Errorf("Resolve() = %q, want %q", got, "typed")
		}
		if p.lastAsked != "Give me a value" || p.lastDef != "dflt" {
			t.Errorf("prompt capability got (%q, %q)", p.lastAsked, p.lastDef)
		}
	})

	t.Run("file picker default prompt", func(t *testing.T) {
		p := &fakePrompter{file: "/tmp/f"}
		spec := app.VariableSpec{Type: app.VarFilePicker}

		got, err := Resolve("f", spec, caps(p, nil, nil))
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if got != "/tmp/f" {
			t.Errorf("Resolve() = %q, want %q", got, "/tmp/f")
		}
		if p.lastAsked != "Select a file" {
			t.Errorf("default prompt = %q, want %q", p.lastAsked, "Select a file")
		}
	})

	t.Run("folder picker", func(t *testing.T) {
		p := &fakePrompter{folder: "/srv/data"}
		spec := app.VariableSpec{Type: app.VarFolderPicker}

		got, err := Resolve("d", spec, caps(p, nil, nil))
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if got != "/srv/data" {
			t.Errorf("Resolve() = %q, want %q", got, "/srv/data")
		}
	})

	t.Run("cancel propagates as ErrCancelled", func(t *testing.T) {
		p := &fakePrompter{err: ErrCancelled}
		spec := app.VariableSpec{Type: app.VarInput}

		_, err := Resolve("v", spec, caps(p, nil, nil))
		if !IsCancelled(err) {
			t.Fatalf("Resolve() error = %v, want cancellation", err)
		}
	})
}

func TestResolveAll(t *testing.T) {
	specs := map[string]app.VariableSpec{
		"when": {Type: app.VarDatetime, Format: "%Y"},
		"who":  {Type: app.VarInput},
	}
	instant := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("resolves declared, skips undeclared", func(t *testing.T) {
		p := &fakePrompter{text: "me"}
		values, err := ResolveAll([]string{"when", "who", "ghost"}, specs, caps(p, fixedClock{instant}, nil))
		if err != nil {
			t.Fatalf("ResolveAll() error: %v", err)
		}
		if values["when"] != "2025" || values["who"] != "me" {
			t.Errorf("values = %v", values)
		}
		if _, ok := values["ghost"]; ok {
			t.Errorf("undeclared variable should be absent from the map")
		}
	})

	t.Run("cancel aborts resolution", func(t *testing.T) {
		p := &fakePrompter{err: ErrCancelled}
		_, err := ResolveAll([]string{"who"}, specs, caps(p, fixedClock{instant}, nil))
		if !IsCancelled(err) {
			t.Fatalf("ResolveAll() error = %v, want cancellation", err)
		}
	})
}
