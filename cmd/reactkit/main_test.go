package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// run executes the CLI with a config pointing at dir and returns stdout.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := &app{out: &out, errOut: io.Discard}
	cmd := newRootCmd(a)
	cmd.SetArgs(append([]string{"--config", filepath.Join(dir, "reactkit.json")}, args...))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func setupDir(t *testing.T) string {
	t.Helper()
	t.Setenv("REACTKIT_LOG_LEVEL", "")
	t.Setenv("REACTKIT_INSPECT_ADDR", "")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "reactkit.json"), `{"snapshot": {"driver": "bolt", "path": "snap.db"}}`)
	writeFile(t, filepath.Join(dir, "state.json"), `{"user": {"name": "ada", "age": 36}, "count": 1}`)
	writeFile(t, filepath.Join(dir, "ops.yaml"), `steps:
  - op: set
    path: user.name
    value: grace
  - op: set
    path: count
    value: 2
  - op: delete
    path: user.name
`)
	return dir
}

func TestReplay(t *testing.T) {
	dir := setupDir(t)

	out, err := run(t, dir, "replay",
		"--state", filepath.Join(dir, "state.json"),
		"--script", filepath.Join(dir, "ops.yaml"),
		"--watch", "user.name",
		"--save", "final",
	)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}

	want := []string{
		`user.name: "grace" (was "ada")`,
		`user.name: null (was "grace")`,
		`✓ Applied 3 steps`,
		`✓ Saved snapshot final`,
	}
	got := strings.Split(strings.TrimSpace(out), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	out, err = run(t, dir, "snapshot", "list")
	if err != nil {
		t.Fatalf("snapshot list: %v", err)
	}
	if strings.TrimSpace(out) != "final" {
		t.Errorf("snapshot list = %q, want final", out)
	}

	out, err = run(t, dir, "snapshot", "show", "final")
	if err != nil {
		t.Fatalf("snapshot show: %v", err)
	}
	if !strings.Contains(out, `"count": 2`) || strings.Contains(out, `"name"`) {
		t.Errorf("snapshot show = %s", out)
	}

	if _, err := run(t, dir, "snapshot", "delete", "final"); err != nil {
		t.Fatalf("snapshot delete: %v", err)
	}
	if _, err := run(t, dir, "snapshot", "show", "final"); err == nil {
		t.Error("snapshot show after delete expected error")
	}
}

func TestReplayRootWatcher(t *testing.T) {
	dir := setupDir(t)
	writeFile(t, filepath.Join(dir, "one.yaml"), "steps:\n  - op: set\n    path: count\n    value: 5\n")

	out, err := run(t, dir, "replay",
		"--state", filepath.Join(dir, "state.json"),
		"--script", filepath.Join(dir, "one.yaml"),
	)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	line := strings.Split(out, "\n")[0]
	want := `(root): {"count":5,"user":{"age":36,"name":"ada"}} (was {"count":5,"user":{"age":36,"name":"ada"}})`
	if line != want {
		t.Errorf("first line = %q, want %q", line, want)
	}
}

func TestReplayErrors(t *testing.T) {
	dir := setupDir(t)
	writeFile(t, filepath.Join(dir, "bad.yaml"), "steps:\n  - op: rename\n    path: x\n")
	writeFile(t, filepath.Join(dir, "missing.yaml"), "steps:\n  - op: delete\n    path: nope.deeper\n")

	tests := []struct {
		name   string
		script string
	}{
		{"unknown op", "bad.yaml"},
		{"missing path", "missing.yaml"},
		{"missing file", "absent.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, dir, "replay",
				"--state", filepath.Join(dir, "state.json"),
				"--script", filepath.Join(dir, tt.script),
			)
			if err == nil || !strings.Contains(err.Error(), "X001") {
				t.Errorf("error = %v, want X001", err)
			}
		})
	}
}

func TestStructures(t *testing.T) {
	dir := setupDir(t)
	out, err := run(t, dir, "structures", "--size", "3", "--remove", "b", "c", "a", "b")
	if err != nil {
		t.Fatalf("structures: %v", err)
	}
	for _, want := range []string{
		"sorted list: a,c\n",
		"stack:       b,a,c\n",
		"queue:       c,a,b\n",
		"search tree: a,c (height 1)\n",
		"trie:        a,c\n",
		"hash table:  3 buckets\n",
		"  [1] a=1\n",
		"  [0] c=0\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestVersionShort(t *testing.T) {
	dir := setupDir(t)
	out, err := run(t, dir, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", out, version)
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := setupDir(t)
	writeFile(t, filepath.Join(dir, "reactkit.json"), `{"logLevel": "loud"}`)
	_, err := run(t, dir, "version")
	if err == nil || !strings.Contains(err.Error(), "C003") {
		t.Errorf("error = %v, want C003", err)
	}
}
