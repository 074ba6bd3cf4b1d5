package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "NAME") {
		t.Error("expected header row")
	}
	for _, name := range []string{"strategy", "singleton", "flyweight"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected %q in listing", name)
		}
	}
}

func TestListCommandCategoryFilter(t *testing.T) {
	out, err := execute(t, "list", "--category", "creational")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "builder") {
		t.Error("expected builder in creational listing")
	}
	if strings.Contains(out, "adapter") {
		t.Error("adapter is structural, should be filtered out")
	}
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "strategy")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "=== strategy ===") {
		t.Error("expected demo header")
	}
	if !strings.Contains(out, "Quick Sort") {
		t.Error("expected strategy demo output")
	}
}

func TestRunCommandMultiple(t *testing.T) {
	out, err := execute(t, "run", "builder", "bridge")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "=== builder ===") || !strings.Contains(out, "=== bridge ===") {
		t.Errorf("expected both demo headers, got:\n%s", out)
	}
}

func TestRunCommandUnknown(t *testing.T) {
	_, err := execute(t, "run", "nosuch")
	if err == nil {
		t.Fatal("expected error for unknown demo")
	}
}

func TestRunCommandNoArgs(t *testing.T) {
	_, err := execute(t, "run")
	if err == nil {
		t.Fatal("expected error when no names given")
	}
}

func TestRunCommandAllWithNames(t *testing.T) {
	_, err := execute(t, "run", "--all", "strategy")
	if err == nil {
		t.Fatal("expected error combining --all with names")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "patterns ") {
		t.Errorf("unexpected version output: %q", out)
	}
}
