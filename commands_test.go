package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"elevatorcar/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestReplay(t *testing.T) {
	script := writeFile(t, "sweep.txt", "hall 6\nhall 3\nadvance\nstatus\n")

	out, err := execute(t, "", "replay", script)
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}
	if !strings.Contains(out, "moved up from 1st to 3rd floor") {
		t.Errorf("expected move line in output, got: %s", out)
	}
	if !strings.Contains(out, "at 3rd floor, heading up, pending: 6th(hall)") {
		t.Errorf("expected status line in output, got: %s", out)
	}
}

func TestReplay_ConfigFileAndOverride(t *testing.T) {
	cfg := writeFile(t, "car.yaml", "lowest_floor: 0\nhighest_floor: 3\n")
	script := writeFile(t, "script.txt", "hall 5\nstatus\n")

	out, err := execute(t, "", "--config", cfg, "replay", script)
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}
	if !strings.Contains(out, "rejected: invalid floor 5") || !strings.Contains(out, "at 0th floor") {
		t.Errorf("expected floor 5 rejected on a 0-3 car, got: %s", out)
	}

	out, err = execute(t, "", "--config", cfg, "--highest", "8", "--start", "2", "replay", script)
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}
	if !strings.Contains(out, "hall call at 5th floor queued") || !strings.Contains(out, "at 2nd floor") {
		t.Errorf("expected overrides to apply, got: %s", out)
	}
}

func TestReplay_InvalidRange(t *testing.T) {
	script := writeFile(t, "script.txt", "next\n")

	_, err := execute(t, "", "--lowest", "9", "--highest", "2", "replay", script)
	var cfgErr *config.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected configuration error, got: %v", err)
	}
}

func TestReplay_MissingFile(t *testing.T) {
	_, err := execute(t, "", "replay", filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got: %v", err)
	}
}

func TestShell(t *testing.T) {
	out, err := execute(t, "car 4\nlist\nadvance\nnext\n", "shell")
	if err != nil {
		t.Fatalf("shell error: %v", err)
	}
	expected := "destination at 4th floor queued\n" +
		"destinations: 4th\n" +
		"moved up from 1st to 4th floor\n" +
		"next stop: none\n"
	if out != expected {
		t.Errorf("unexpected shell output.\nExpected: %q\nWas: %q", expected, out)
	}
}
