package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	out, err := runCommand(t, "eval", "E = FC * EF * OF",
		"--set", "FC=1000", "--set", "EF=2.5", "--set", "OF=0.98")
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if got := strings.TrimSpace(out); got != "2450" {
		t.Errorf("eval output = %q, want 2450", got)
	}
}

func TestEvalCommandMissingBinding(t *testing.T) {
	_, err := runCommand(t, "eval", "a * b", "--set", "a=10")
	if err == nil {
		t.Fatal("eval should fail when a variable is unbound")
	}
}

func TestEvalCommandBadBinding(t *testing.T) {
	_, err := runCommand(t, "eval", "a", "--set", "a")
	if err == nil || !strings.Contains(err.Error(), "name=value") {
		t.Errorf("expected name=value flag error, got %v", err)
	}
}

func TestVarsCommand(t *testing.T) {
	out, err := runCommand(t, "vars", "FC_j_y * EF_CO2_j_y")
	if err != nil {
		t.Fatalf("vars failed: %v", err)
	}
	want := "EF_CO2_j_y\nFC_j_y\n"
	if out != want {
		t.Errorf("vars output = %q, want %q", out, want)
	}
}

func TestSumCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terms.yaml")
	terms := `- FC_1: 10
  EF_1: 2
- FC_2: 15
  EF_2: 3
- FC_3: 20
  EF_3: 1
`
	if err := os.WriteFile(path, []byte(terms), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "sum", "FC_j * EF_j", "--terms", path)
	if err != nil {
		t.Fatalf("sum failed: %v", err)
	}
	if got := strings.TrimSpace(out); got != "85" {
		t.Errorf("sum output = %q, want 85", got)
	}
}

func TestSumCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, "sum", "FC_j * EF_j", "--terms", "no-such-file.yaml")
	if err == nil {
		t.Fatal("sum should fail for a missing terms file")
	}
}
