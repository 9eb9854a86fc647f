package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Tools    []toolInfo `json:"tools"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// toolInfo holds detection results for one external tool.
type toolInfo struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	TempWritable bool   `json:"temp_writable"`
}

// chromeCandidates are binary names tried when ROD_BROWSER_BIN is unset.
var chromeCandidates = []string{"google-chrome", "chromium", "chromium-browser", "chrome"}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, deps *Dependencies) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(deps.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkTool(result, "weasyprint",
		"weasyprint not found in PATH; the default PDF engine needs it (use --engine chrome otherwise)")
	checkTool(result, "lp",
		"lp not found in PATH; printing (--print/--printer) will not work")
	checkChrome(result)
	checkTempDir(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkTool looks up a binary on PATH, recording a warning when missing.
func checkTool(result *doctorResult, name, warning string) {
	info := toolInfo{Name: name}
	if path, err := exec.LookPath(name); err == nil {
		info.Found = true
		info.Path = path
	} else {
		result.Warnings = append(result.Warnings, warning)
	}
	result.Tools = append(result.Tools, info)
}

// checkChrome looks for a usable Chrome/Chromium binary.
// Missing Chrome is only a warning: rod downloads a managed Chromium on
// first run when the chrome engine is selected.
func checkChrome(result *doctorResult) {
	info := toolInfo{Name: "chrome"}

	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		if _, err := os.Stat(bin); err == nil {
			info.Found = true
			info.Path = bin
		} else {
			result.Errors = append(result.Errors,
				fmt.Sprintf("ROD_BROWSER_BIN is set to %s but the file does not exist", bin))
		}
		result.Tools = append(result.Tools, info)
		return
	}

	for _, candidate := range chromeCandidates {
		if path, err := exec.LookPath(candidate); err == nil {
			info.Found = true
			info.Path = path
			break
		}
	}
	if !info.Found {
		result.Warnings = append(result.Warnings,
			"no Chrome/Chromium found in PATH; the chrome engine will download a managed Chromium on first use")
	}
	result.Tools = append(result.Tools, info)
}

// checkTempDir verifies the temp directory is writable; the pipeline stages
// all go through temp files.
func checkTempDir(result *doctorResult) {
	probe := filepath.Join(os.TempDir(), "worksheet-doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("temp directory %s is not writable: %v", os.TempDir(), err))
		return
	}
	_ = os.Remove(probe)
	result.System.TempWritable = true
}

// printDoctorResult writes a human-readable report.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintf(w, "worksheet-generator doctor (%s/%s)\n\n", result.System.OS, result.System.Arch)

	for _, tool := range result.Tools {
		if tool.Found {
			fmt.Fprintf(w, "  [ok] %-12s %s\n", tool.Name, tool.Path)
		} else {
			fmt.Fprintf(w, "  [--] %-12s not found\n", tool.Name)
		}
	}

	if result.System.TempWritable {
		fmt.Fprintf(w, "  [ok] %-12s writable\n", "temp dir")
	} else {
		fmt.Fprintf(w, "  [!!] %-12s not writable\n", "temp dir")
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "\nWarning: %s\n", warning)
	}
	for _, errMsg := range result.Errors {
		fmt.Fprintf(w, "\nError: %s\n", errMsg)
	}

	fmt.Fprintf(w, "\nStatus: %s\n", result.Status)
}
