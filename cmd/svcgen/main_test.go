package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/electwix/svcgen/internal/catalog"
)

func TestRunDefaultPrintsReportToStderr(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run(context.Background(), []string{"-c", writeConfig(t, "")}, stdout, stderr)
	if exitCode != 0 {
		t.Fatalf("exit code = %d, want 0; stderr=%q", exitCode, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("unexpected stdout output: %q", stdout.String())
	}

	var want strings.Builder
	services := catalog.Services()
	for _, entry := range services {
		want.WriteString("import " + entry.TypeName + "\n")
	}
	for _, entry := range services {
		want.WriteString("fun Context." + entry.AccessorName() + "()=\n")
		want.WriteString("getSystemService(Context." + entry.Constant + ") as " + entry.SimpleName() + "\n")
	}
	if diff := cmp.Diff(want.String(), stderr.String()); diff != "" {
		t.Fatalf("stderr mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMalformedCatalog(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "services.txt"), "A, x.y.Foo, B")
	configPath := filepath.Join(dir, "svcgen.toml")
	writeFile(t, configPath, "use_builtin = false\n\n[[source]]\npath = \"services.txt\"\n")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run(context.Background(), []string{"--config", configPath}, stdout, stderr)
	if exitCode != 1 {
		t.Fatalf("exit code = %d, want 1", exitCode)
	}
	if strings.Contains(stderr.String(), "import x.y.Foo") {
		t.Fatalf("partial output written for malformed input: %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "odd token count 3") || !strings.Contains(stderr.String(), "[error]") {
		t.Fatalf("stderr %q missing malformed input diagnostic", stderr.String())
	}
}

func TestRunMissingNamedConfig(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	missing := filepath.Join(t.TempDir(), "nope.toml")
	exitCode := run(context.Background(), []string{"--config", missing}, stdout, stderr)
	if exitCode != 1 {
		t.Fatalf("exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(stderr.String(), "nope.toml") {
		t.Fatalf("stderr %q missing config path", stderr.String())
	}
}

func TestRunDryRun(t *testing.T) {
	configPath := writeConfig(t, "out = \"gen/Services.kt\"\n")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run(context.Background(), []string{"--config", configPath, "--dry-run"}, stdout, stderr)
	if exitCode != 0 {
		t.Fatalf("exit code = %d, want 0; stderr=%q", exitCode, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr output: %q", stderr.String())
	}

	expected := filepath.Join(filepath.Dir(configPath), "gen", "Services.kt")
	if !strings.Contains(stdout.String(), expected) {
		t.Fatalf("stdout %q missing output path %q", stdout.String(), expected)
	}
	if _, err := os.Stat(expected); !os.IsNotExist(err) {
		t.Fatalf("dry-run created %q", expected)
	}
}

func TestRunWritesOutFile(t *testing.T) {
	configPath := writeConfig(t, "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run(context.Background(), []string{"-c", configPath, "-mode", "imports", "-out", "Imports.kt"}, stdout, stderr)
	if exitCode != 0 {
		t.Fatalf("exit code = %d, want 0; stderr=%q", exitCode, stderr.String())
	}
	if !strings.Contains(stderr.String(), "wrote file") {
		t.Fatalf("stderr %q missing write log", stderr.String())
	}

	data, err := os.ReadFile(filepath.Join(filepath.Dir(configPath), "Imports.kt"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "import android.view.WindowManager\n") {
		t.Fatalf("output starts with %q", strings.SplitN(string(data), "\n", 2)[0])
	}
	if strings.Contains(string(data), "getSystemService") {
		t.Fatalf("imports mode wrote accessor stubs")
	}
}

func TestRunList(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "services", args: []string{"--list"}, want: "<builtin>:11 STORAGE_SERVICE android.os.storage.StorageManager storageManager\n"},
		{name: "settings", args: []string{"--list", "--mode", "settings"}, want: "<builtin>:3 ACTION_WIFI_IP_SETTINGS openWifiIpSettings\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			args := append([]string{"--config", writeConfig(t, "")}, tt.args...)
			exitCode := run(context.Background(), args, stdout, stderr)
			if exitCode != 0 {
				t.Fatalf("exit code = %d, want 0; stderr=%q", exitCode, stderr.String())
			}
			if stderr.Len() != 0 {
				t.Fatalf("unexpected stderr output: %q", stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Fatalf("stdout missing %q:\n%s", tt.want, stdout.String())
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run(context.Background(), []string{"-h"}, stdout, stderr)
	if exitCode != 0 {
		t.Fatalf("exit code = %d, want 0", exitCode)
	}
	if !strings.Contains(stdout.String(), "Usage of svcgen") {
		t.Fatalf("stdout %q missing usage", stdout.String())
	}
}

func TestRunInvalidMode(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run(context.Background(), []string{"-c", writeConfig(t, ""), "-mode", "everything"}, stdout, stderr)
	if exitCode != 1 {
		t.Fatalf("exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(stderr.String(), `unsupported mode "everything"`) {
		t.Fatalf("stderr %q missing mode error", stderr.String())
	}
}

func TestRunWriteFailure(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the output directory should be makes MkdirAll fail.
	writeFile(t, filepath.Join(dir, "gen"), "not a directory")
	configPath := filepath.Join(dir, "svcgen.toml")
	writeFile(t, configPath, "out = \"gen/Services.kt\"\n")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run(context.Background(), []string{"--config", configPath}, stdout, stderr)
	if exitCode != 2 {
		t.Fatalf("exit code = %d, want 2; stderr=%q", exitCode, stderr.String())
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "svcgen.toml")
	writeFile(t, path, content)
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile %q: %v", path, err)
	}
}
