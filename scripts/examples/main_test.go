package main

import (
	"bytes"
	"errors"
	"sort"
	"strings"
	"testing"

	"gemini-playground/config"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	sort.Strings(names)

	want := []string{"basic", "chat", "stream", "system", "thinking"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("expected subcommands %v, got %v", want, names)
	}
}

func TestRootCommand_MissingAPIKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(config.APIKeyEnv, "")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"basic"})

	if err := root.Execute(); !errors.Is(err, config.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestExecute_MissingAPIKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(config.APIKeyEnv, "")

	for _, args := range [][]string{{}, {"stream"}} {
		root := newRootCmd()
		var stdout, stderr bytes.Buffer
		root.SetOut(&stdout)
		root.SetErr(&stderr)
		root.SetArgs(args)

		if code := execute(root); code != 1 {
			t.Errorf("args %v: expected exit code 1, got %d", args, code)
		}
		if got, want := stderr.String(), config.MissingAPIKeyMessage+"\n"; got != want {
			t.Errorf("args %v: expected stderr %q, got %q", args, want, got)
		}
		if stdout.Len() != 0 {
			t.Errorf("args %v: expected empty stdout, got %q", args, stdout.String())
		}
	}
}
