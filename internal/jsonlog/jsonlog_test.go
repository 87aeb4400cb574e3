package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"
)

func TestJSONLogger(t *testing.T) {
	type entry struct {
		Level      string            `json:"level"`
		Time       string            `json:"time"`
		Message    string            `json:"message"`
		Properties map[string]string `json:"properties"`
		Trace      string            `json:"trace"`
	}

	t.Run("writes INFO entries with properties", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		l.PrintInfo("library ready", map[string]string{"name": "Demo"})
		var e entry
		if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
			t.Fatal(err)
		}
		if e.Level != "INFO" {
			t.Errorf("expected level INFO; got %s", e.Level)
		}
		if e.Message != "library ready" {
			t.Errorf("expected message %q; got %q", "library ready", e.Message)
		}
		if e.Properties["name"] != "Demo" {
			t.Errorf("expected property name=Demo; got %q", e.Properties["name"])
		}
		if e.Time == "" {
			t.Error("expected a timestamp")
		}
	})

	t.Run("suppresses entries below the minimum level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelError)
		l.PrintDebug("noise", nil)
		l.PrintInfo("more noise", nil)
		if buf.Len() != 0 {
			t.Errorf("expected no output; got %q", buf.String())
		}
	})

	t.Run("terminates the process at FATAL level", func(t *testing.T) {
		code := -1
		exit = func(c int) { code = c }
		defer func() { exit = os.Exit }()

		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		l.PrintFatal(errors.New("boom"), nil)
		if code != 1 {
			t.Errorf("expected exit status 1; got %d", code)
		}
		var e entry
		if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
			t.Fatal(err)
		}
		if e.Level != "FATAL" {
			t.Errorf("expected level FATAL; got %s", e.Level)
		}
	})

	t.Run("includes a stack trace at ERROR level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		l.PrintError(errors.New("boom"), nil)
		var e entry
		if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
			t.Fatal(err)
		}
		if e.Level != "ERROR" {
			t.Errorf("expected level ERROR; got %s", e.Level)
		}
		if e.Trace == "" {
			t.Error("expected a stack trace")
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"ERROR", LevelError},
		{"fatal", LevelFatal},
		{"off", LevelOff},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.name); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.name, got, tt.want)
		}
	}
}
