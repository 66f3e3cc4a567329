package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/mvc-kit/create-mvc-structure/internal/installer"
	"github.com/mvc-kit/create-mvc-structure/internal/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// setupCLI isolates HOME and moves into an empty working directory.
func setupCLI(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	t.Chdir(work)
	t.Cleanup(func() {
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		viper.Reset()
	})
	return work
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	viper.Reset()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := Execute("1.2.3", "abc123", "2026-01-01")
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// installFakeManager puts a shell script named after the package manager at
// the front of PATH. It records its arguments in the working directory and
// exits with code.
func installFakeManager(t *testing.T, name string, code int) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script package manager not supported on Windows")
	}
	bin := t.TempDir()
	script := fmt.Sprintf("#!/bin/sh\necho \"$@\" > install-args.txt\nexit %d\n", code)
	if err := os.WriteFile(filepath.Join(bin, name), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRoot_MissingArgument(t *testing.T) {
	work := setupCLI(t)

	_, stderr, err := runCLI(t)
	if err == nil {
		t.Fatal("expected usage error, got nil")
	}
	if !errors.Is(err, ErrUsage) {
		t.Errorf("error %v does not wrap ErrUsage", err)
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode(err))
	}
	if !strings.Contains(stderr, "please specify the project directory") {
		t.Errorf("stderr missing usage text:\n%s", stderr)
	}
	if !strings.Contains(stderr, "create-mvc-structure <project-directory>") {
		t.Errorf("stderr missing invocation form:\n%s", stderr)
	}

	entries, err := os.ReadDir(work)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("working directory changed: %d entries", len(entries))
	}
}

func TestRoot_TooManyArguments(t *testing.T) {
	setupCLI(t)

	_, _, err := runCLI(t, "one", "two")
	if !errors.Is(err, ErrUsage) {
		t.Errorf("error = %v, want ErrUsage", err)
	}
}

func TestRoot_CreatesProjectWithoutInstall(t *testing.T) {
	work := setupCLI(t)

	stdout, stderr, err := runCLI(t, "demo", "--skip-install")
	if err != nil {
		t.Fatalf("unexpected error: %v\nstderr: %s", err, stderr)
	}

	for _, dir := range scaffold.Directories {
		if info, err := os.Stat(filepath.Join(work, "demo", filepath.FromSlash(dir))); err != nil || !info.IsDir() {
			t.Errorf("directory %s missing", dir)
		}
	}
	for _, name := range scaffold.FileNames() {
		if _, err := os.Stat(filepath.Join(work, "demo", name)); err != nil {
			t.Errorf("file %s missing", name)
		}
	}

	for _, want := range []string{
		"Created directory: controllers",
		"Created file: package.json",
		"MVC Boilerplate has been successfully set up in demo",
		"  1. cd demo",
		"  2. npm install",
		"  3. npm start",
		"For development with auto-restart, run: npm run dev",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "Installing dependencies") {
		t.Error("install should have been skipped")
	}
}

func TestRoot_PortAndMinimalFlags(t *testing.T) {
	work := setupCLI(t)

	stdout, _, err := runCLI(t, "api", "--skip-install", "--port", "8090", "--minimal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(work, "api", "index.js"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "process.env.PORT || 8090;") {
		t.Errorf("index.js missing port 8090:\n%s", index)
	}
	pkg, err := os.ReadFile(filepath.Join(work, "api", "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(pkg), "nodemon") {
		t.Errorf("minimal package.json should not mention nodemon:\n%s", pkg)
	}
	if strings.Contains(stdout, "auto-restart") {
		t.Error("minimal run should not mention the dev script")
	}
}

func TestRoot_PortFromEnvironment(t *testing.T) {
	work := setupCLI(t)
	t.Setenv("CREATE_MVC_PORT", "4321")

	if _, _, err := runCLI(t, "demo", "--skip-install"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env, err := os.ReadFile(filepath.Join(work, "demo", ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(env), "PORT=4321\n") {
		t.Errorf(".env = %q, want PORT=4321", env)
	}
}

func TestRoot_NonNumericPortFromEnvironment(t *testing.T) {
	work := setupCLI(t)
	t.Setenv("CREATE_MVC_PORT", "abc")

	_, stderr, err := runCLI(t, "demo", "--skip-install")
	if err == nil {
		t.Fatal("expected error for non-numeric port, got nil")
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode(err))
	}
	if !strings.Contains(stderr, `invalid port "abc"`) {
		t.Errorf("stderr should name the bad value:\n%s", stderr)
	}
	if _, err := os.Stat(filepath.Join(work, "demo")); !os.IsNotExist(err) {
		t.Errorf("target created despite bad port, stat err = %v", err)
	}
}

func TestRoot_ExistingTarget(t *testing.T) {
	work := setupCLI(t)
	if err := os.Mkdir(filepath.Join(work, "demo"), 0755); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := runCLI(t, "demo", "--skip-install")
	if err == nil {
		t.Fatal("expected error for existing target, got nil")
	}
	if !errors.Is(err, scaffold.ErrTargetExists) {
		t.Errorf("error %v does not wrap ErrTargetExists", err)
	}
	if !strings.HasPrefix(stderr, "Error: ") {
		t.Errorf("stderr = %q, want Error: prefix", stderr)
	}

	entries, err := os.ReadDir(filepath.Join(work, "demo"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("existing target was written to: %d entries", len(entries))
	}
}

func TestRoot_ResumeFillsGaps(t *testing.T) {
	work := setupCLI(t)
	target := filepath.Join(work, "demo")
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, ".gitignore"), []byte("dist\n"), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCLI(t, "demo", "--skip-install", "--resume")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(stdout, "Created file: .gitignore") {
		t.Error(".gitignore should have been skipped")
	}
	data, err := os.ReadFile(filepath.Join(target, ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "dist\n" {
		t.Errorf(".gitignore overwritten: %q", data)
	}
	if _, err := os.Stat(filepath.Join(target, "index.js")); err != nil {
		t.Error("index.js not created on resume")
	}
}

func TestRoot_UnsupportedPackageManager(t *testing.T) {
	work := setupCLI(t)

	_, _, err := runCLI(t, "demo", "--package-manager", "bower")
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("error = %v, want ErrUsage", err)
	}
	if _, err := os.Stat(filepath.Join(work, "demo")); !os.IsNotExist(err) {
		t.Error("target created despite unsupported package manager")
	}
}

func TestRoot_RunsPackageManagerInTarget(t *testing.T) {
	work := setupCLI(t)
	installFakeManager(t, "npm", 0)

	stdout, stderr, err := runCLI(t, "demo")
	if err != nil {
		t.Fatalf("unexpected error: %v\nstderr: %s", err, stderr)
	}

	args, err := os.ReadFile(filepath.Join(work, "demo", "install-args.txt"))
	if err != nil {
		t.Fatalf("package manager did not run in the target: %v", err)
	}
	if string(args) != "install\n" {
		t.Errorf("package manager args = %q, want %q", args, "install\n")
	}
	if !strings.Contains(stdout, "Installing dependencies...") {
		t.Errorf("stdout missing install line:\n%s", stdout)
	}
	if !strings.Contains(stdout, "  2. npm start") {
		t.Errorf("stdout missing start step:\n%s", stdout)
	}
}

func TestRoot_PackageManagerFailure(t *testing.T) {
	work := setupCLI(t)
	installFakeManager(t, "pnpm", 7)

	stdout, stderr, err := runCLI(t, "demo", "--package-manager", "pnpm")
	if err == nil {
		t.Fatal("expected error from failing package manager, got nil")
	}
	if got := ExitCode(err); got != 1 {
		t.Errorf("ExitCode = %d, want 1", got)
	}
	if !strings.Contains(stderr, "exited with status 7") {
		t.Errorf("stderr missing package manager status:\n%s", stderr)
	}
	if strings.Contains(stdout, "successfully set up") {
		t.Error("completion banner printed after failed install")
	}
	// No rollback: generated files stay on disk.
	if _, err := os.Stat(filepath.Join(work, "demo", "package.json")); err != nil {
		t.Error("package.json removed after failed install")
	}
}

func TestDoctor(t *testing.T) {
	work := setupCLI(t)
	if _, _, err := runCLI(t, "demo", "--skip-install"); err != nil {
		t.Fatalf("create: %v", err)
	}

	stdout, _, err := runCLI(t, "doctor", "demo")
	if err != nil {
		t.Fatalf("doctor on fresh project: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "All checks passed.") {
		t.Errorf("stdout:\n%s", stdout)
	}

	if err := os.Remove(filepath.Join(work, "demo", ".env")); err != nil {
		t.Fatal(err)
	}
	stdout, _, err = runCLI(t, "doctor", "demo")
	if err == nil {
		t.Fatal("expected doctor to fail without .env")
	}
	if !strings.Contains(stdout, "[MISS] .env") {
		t.Errorf("stdout missing .env MISS line:\n%s", stdout)
	}
}

func TestDoctor_MissingProject(t *testing.T) {
	setupCLI(t)
	if _, _, err := runCLI(t, "doctor", "nowhere"); err == nil {
		t.Fatal("expected error for missing project")
	}
}

func TestConfigSetGet(t *testing.T) {
	setupCLI(t)

	if _, _, err := runCLI(t, "config", "set", "port", "8090"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	stdout, _, err := runCLI(t, "config", "get", "port")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(stdout) != "8090" {
		t.Errorf("config get port = %q, want 8090", stdout)
	}

	if _, _, err := runCLI(t, "config", "get", "mirror"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestConfigHelpNamesEnvVar(t *testing.T) {
	if !strings.Contains(configCmd.Long, "CREATE_MVC_<KEY>") {
		t.Errorf("config help missing env var form:\n%s", configCmd.Long)
	}
	if !strings.Contains(configCmd.Long, "~/.create-mvc/config.yaml") {
		t.Errorf("config help missing config path:\n%s", configCmd.Long)
	}
}

func TestVersion(t *testing.T) {
	setupCLI(t)

	stdout, _, err := runCLI(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(stdout) != "1.2.3" {
		t.Errorf("version --short = %q", stdout)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		desc string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"usage", ErrUsage, 1},
		{"exit error", &installer.ExitError{Command: "npm install", Code: 3}, 1},
		{"wrapped exit error", fmt.Errorf("install: %w", &installer.ExitError{Code: 2}), 1},
		{"signal", &installer.ExitError{Code: -1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestPrintCompletion(t *testing.T) {
	tests := []struct {
		desc string
		c    completion
		want []string
		not  []string
	}{
		{
			desc: "npm with dev script",
			c:    completion{ProjectName: "demo", Manager: "npm", DevScript: true},
			want: []string{"set up in demo", "  1. cd demo", "  2. npm start", "run: npm run dev"},
			not:  []string{"npm install"},
		},
		{
			desc: "yarn skipped install",
			c:    completion{ProjectName: "web", Manager: "yarn", DevScript: true, InstallSkipped: true},
			want: []string{"  2. yarn install", "  3. yarn start", "run: yarn dev"},
		},
		{
			desc: "minimal",
			c:    completion{ProjectName: "demo", Manager: "pnpm"},
			want: []string{"  2. pnpm start"},
			not:  []string{"auto-restart"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			var buf bytes.Buffer
			printCompletion(&buf, tt.c)
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, n := range tt.not {
				if strings.Contains(out, n) {
					t.Errorf("output should not contain %q:\n%s", n, out)
				}
			}
		})
	}
}
