package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/chartopt/pkg/cache"
	"github.com/matzehuels/chartopt/pkg/errors"
	"github.com/matzehuels/chartopt/pkg/storage"
)

const aqiDefinition = "../../examples/aqi/chart.toml"

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

// run executes the root command with args and returns what it wrote to its
// output stream.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	root := testCLI().RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	root := testCLI().RootCommand()
	want := []string{"render", "validate", "inspect", "serve", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"json"}},
		{"html", []string{"html"}},
		{"json,html", []string{"json", "html"}},
		{"json, html", []string{"json", "html"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		input   string
		formats []string
		want    map[string]string
	}{
		{"derived from input", "", "charts/aqi.toml", []string{"json"}, map[string]string{"json": "charts/aqi.json"}},
		{"explicit single", "out.txt", "aqi.toml", []string{"json"}, map[string]string{"json": "out.txt"}},
		{"base for many", "out/aqi", "aqi.toml", []string{"json", "html"}, map[string]string{"json": "out/aqi.json", "html": "out/aqi.html"}},
		{"format extension stripped", "out/aqi.html", "aqi.toml", []string{"json", "html"}, map[string]string{"json": "out/aqi.json", "html": "out/aqi.html"}},
		{"foreign extension kept", "out/aqi.v2", "aqi.toml", []string{"json", "html"}, map[string]string{"json": "out/aqi.v2.json", "html": "out/aqi.v2.html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, tt.input, tt.formats)
			for f, want := range tt.want {
				if got[f] != want {
					t.Errorf("outputPaths()[%s] = %q, want %q", f, got[f], want)
				}
			}
		})
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("CHARTOPT_TEST_STR", "x")
	t.Setenv("CHARTOPT_TEST_DUR", "90s")
	t.Setenv("CHARTOPT_TEST_BAD", "soon")

	if got := envOr("CHARTOPT_TEST_STR", "y"); got != "x" {
		t.Errorf("envOr set = %q", got)
	}
	if got := envOr("CHARTOPT_TEST_UNSET", "y"); got != "y" {
		t.Errorf("envOr unset = %q", got)
	}
	if got := envDuration("CHARTOPT_TEST_DUR", time.Hour); got != 90*time.Second {
		t.Errorf("envDuration set = %v", got)
	}
	if got := envDuration("CHARTOPT_TEST_BAD", time.Hour); got != time.Hour {
		t.Errorf("envDuration unparsable = %v", got)
	}
}

func TestRenderCommand(t *testing.T) {
	base := filepath.Join(t.TempDir(), "aqi")
	if _, err := run(t, "render", aqiDefinition, "-f", "json,html", "-o", base); err != nil {
		t.Fatalf("render: %v", err)
	}

	doc, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(doc), `{"backgroundColor":"#333",`) || !strings.HasSuffix(string(doc), "]}]}\n") {
		t.Errorf("json output = %.60s…", doc)
	}

	page, err := os.ReadFile(base + ".html")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), "<title>AQI - Beijing, Shanghai, Guangzhou</title>") {
		t.Error("html output lacks the definition title")
	}
}

func TestRenderCommandStdout(t *testing.T) {
	out, err := run(t, "render", aqiDefinition, "-o", "-", "--indent", "--no-cache")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "{\n  \"backgroundColor\": \"#333\",") {
		t.Errorf("stdout = %.60q", out)
	}

	if _, err := run(t, "render", aqiDefinition, "-o", "-", "-f", "json,html"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("two formats to stdout: got %v", err)
	}
	if _, err := run(t, "render", aqiDefinition, "-f", "svg"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("svg format: got %v", err)
	}
}

func writeDefinition(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateCommand(t *testing.T) {
	if _, err := run(t, "validate", aqiDefinition); err != nil {
		t.Errorf("AQI example should validate: %v", err)
	}

	bad := writeDefinition(t, `
[[axis]]
dim = 0

[[axis]]
dim = 0

[[series]]
rows = [[1, 2]]

[[series]]
rows = [[3]]
`)
	_, err := run(t, "validate", bad)
	ve, ok := errors.AsValidation(err)
	if !ok {
		t.Fatalf("got %v, want a validation error", err)
	}
	if ve.Count(errors.ErrCodeDuplicateAxisDimension) != 1 {
		t.Errorf("violations = %v", ve)
	}

	if _, err := run(t, "validate", filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: got %v", err)
	}
}

func TestInspectCommand(t *testing.T) {
	if _, err := run(t, "inspect", aqiDefinition); err != nil {
		t.Errorf("inspect: %v", err)
	}
}

func TestAxisRows(t *testing.T) {
	path := writeDefinition(t, `
[parallel.axis_default]
type = "category"

[[axis]]
dim = 0
name = "Level"
data = ["low", "high"]

[[axis]]
dim = 1
type = "value"
min = 0
max = 150

[[axis]]
name = "loose"
type = "value"
`)
	c := testCLI()
	in, err := c.load(t.Context(), path, "")
	if err != nil {
		t.Fatal(err)
	}

	rows := axisRows(in.Definition)
	want := [][]string{
		{"0", "Level", "category", "low, high"},
		{"1", "", "value", "0 … 150"},
		{"-", "loose", "value", ""},
	}
	for i := range want {
		if strings.Join(rows[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestOpenStore(t *testing.T) {
	c := testCLI()

	s, err := c.openStore(t.Context(), &serveOpts{storeDir: t.TempDir()})
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	if _, ok := s.(*storage.FileStore); !ok {
		t.Errorf("store-dir gave %T", s)
	}

	s, err = c.openStore(t.Context(), &serveOpts{})
	if err != nil {
		t.Fatalf("memory store: %v", err)
	}
	if _, ok := s.(*storage.MemoryStore); !ok {
		t.Errorf("no backend gave %T", s)
	}
}

func TestOpenCache(t *testing.T) {
	c := testCLI()

	ch, err := c.openCache(t.Context(), &serveOpts{noCache: true, redisAddr: "localhost:6379"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ch.(*cache.NullCache); !ok {
		t.Errorf("no-cache gave %T", ch)
	}

	ch, err = c.openCache(t.Context(), &serveOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ch.(*cache.MemoryCache); !ok {
		t.Errorf("default cache gave %T", ch)
	}
}
