package main

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestRunDoctor(t *testing.T) {
	t.Run("reports system info", func(t *testing.T) {
		result := runDoctor()

		if result.System.OS != runtime.GOOS {
			t.Errorf("OS = %q, want %q", result.System.OS, runtime.GOOS)
		}
		if result.System.Arch != runtime.GOARCH {
			t.Errorf("Arch = %q, want %q", result.System.Arch, runtime.GOARCH)
		}
		if !result.System.TempWritable {
			t.Error("TempWritable = false, want true")
		}
	})

	t.Run("checks expected tools", func(t *testing.T) {
		result := runDoctor()

		names := make(map[string]bool)
		for _, tool := range result.Tools {
			names[tool.Name] = true
		}
		for _, want := range []string{"weasyprint", "lp", "chrome"} {
			if !names[want] {
				t.Errorf("missing tool check for %q", want)
			}
		}
	})

	t.Run("status is a known value", func(t *testing.T) {
		result := runDoctor()

		switch result.Status {
		case "ready", "warnings", "errors":
		default:
			t.Errorf("Status = %q, want ready, warnings, or errors", result.Status)
		}
	})

	t.Run("missing ROD_BROWSER_BIN file is an error", func(t *testing.T) {
		t.Setenv("ROD_BROWSER_BIN", "/nonexistent/chrome-binary")

		result := runDoctor()
		if result.Status != "errors" {
			t.Errorf("Status = %q, want errors", result.Status)
		}
		if len(result.Errors) == 0 {
			t.Fatal("Errors is empty, want ROD_BROWSER_BIN error")
		}
		if !strings.Contains(result.Errors[0], "ROD_BROWSER_BIN") {
			t.Errorf("error = %q, want ROD_BROWSER_BIN mention", result.Errors[0])
		}
	})
}

func TestRunDoctorCmd(t *testing.T) {
	t.Run("json output decodes", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		deps := &Dependencies{Stdout: stdout, Stderr: &bytes.Buffer{}}

		runDoctorCmd([]string{"--json"}, deps)

		var result doctorResult
		if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(result.Tools) == 0 {
			t.Error("Tools is empty")
		}
	})

	t.Run("human output contains status", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		deps := &Dependencies{Stdout: stdout, Stderr: &bytes.Buffer{}}

		runDoctorCmd(nil, deps)

		if !strings.Contains(stdout.String(), "Status: ") {
			t.Errorf("output = %q, want Status line", stdout.String())
		}
		if !strings.Contains(stdout.String(), "worksheet-generator doctor") {
			t.Errorf("output = %q, want header", stdout.String())
		}
	})

	t.Run("exit code reflects errors", func(t *testing.T) {
		t.Setenv("ROD_BROWSER_BIN", "/nonexistent/chrome-binary")
		deps := &Dependencies{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

		if code := runDoctorCmd(nil, deps); code != ExitGeneral {
			t.Errorf("exit code = %d, want %d", code, ExitGeneral)
		}
	})
}
