package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/worldgen/pkg/config"
	"github.com/matzehuels/worldgen/pkg/errors"
	wio "github.com/matzehuels/worldgen/pkg/io"
	"github.com/matzehuels/worldgen/pkg/world"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeWorld(t *testing.T, dir, name string, edges []world.Edge) string {
	t.Helper()
	path := filepath.Join(dir, name+".csv")
	if err := wio.ExportCSV(path, edges); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"svg", []string{"svg"}},
		{"csv,puml,html", []string{"csv", "puml", "html"}},
		{" CSV , puml,", []string{"csv", "puml"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseFormats(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatIDs(t *testing.T) {
	tests := []struct {
		ids   []int
		limit int
		want  string
	}{
		{nil, 3, "none"},
		{[]int{4, 2}, 3, "4, 2"},
		{[]int{1, 2, 3, 4, 5}, 3, "1, 2, 3, … (+2)"},
	}
	for _, tt := range tests {
		if got := formatIDs(tt.ids, tt.limit); got != tt.want {
			t.Errorf("formatIDs(%v, %d) = %q, want %q", tt.ids, tt.limit, got, tt.want)
		}
	}
}

func TestRootDefaultRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	for _, name := range []string{"full_world.csv", "full_world.puml", "sparse_world.csv", "sparse_world.puml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s", name)
		}
	}

	full, err := wio.ImportCSV(filepath.Join(dir, "full_world.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if got := full.EdgeCount(); got != 100*99 {
		t.Errorf("full world edges = %d, want %d", got, 100*99)
	}
	if !strings.Contains(out, "sparse_world") {
		t.Errorf("summary missing sparse_world: %q", out)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	if _, err := execute(t, "bogus"); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestGenerateFlags(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "generate",
		"--output-dir", dir,
		"--seed", "11",
		"--nodes", "8",
		"--ratio", "0.25",
		"--min-cost", "2",
		"--max-cost", "3",
		"--format", "csv,html",
	)
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "sparse_world.html")); err != nil {
		t.Error("missing sparse_world.html")
	}
	if _, err := os.Stat(filepath.Join(dir, "sparse_world.puml")); err == nil {
		t.Error("puml written although --format excluded it")
	}

	sparse, err := wio.ImportCSV(filepath.Join(dir, "sparse_world.csv"))
	if err != nil {
		t.Fatal(err)
	}
	rng := world.NewRand(11)
	world.FullyConnected(rng, 8)
	want, _ := world.SparselyConnected(rng, 8, 0.25, 2, 3)
	if !slices.Equal(sparse.Edges, want) {
		t.Error("sparse world does not match seeded generation")
	}
}

func TestGenerateConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "worlds.toml")
	doc := `
[[world]]
name = "tiny"
kind = "sparse"
nodes = 5
ratio = 0.4
formats = ["csv"]
`
	if err := os.WriteFile(cfgPath, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "generate", "--config", cfgPath, "--output-dir", dir, "--nodes", "6"); err != nil {
		t.Fatalf("generate error = %v", err)
	}
	w, err := wio.ImportCSV(filepath.Join(dir, "tiny.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := w.EdgeCount(), 6*(2+2); got != want {
		t.Errorf("edges = %d, want %d", got, want)
	}
}

func TestGenerateInvalidRatio(t *testing.T) {
	_, err := execute(t, "generate", "--output-dir", t.TempDir(), "--ratio", "1.5")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
	if !strings.Contains(err.Error(), "given 1.5") {
		t.Errorf("error = %q, want the offending ratio", err)
	}
}

func TestGenerateResolveLeavesUnsetFields(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	cmd := c.generateCommand()
	if err := cmd.ParseFlags([]string{"--nodes", "7"}); err != nil {
		t.Fatal(err)
	}

	opts := generateOpts{nodes: 7}
	cfg, err := opts.resolve(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != nil {
		t.Error("seed set although --seed was not given")
	}
	for _, w := range cfg.Worlds {
		if w.Nodes != 7 {
			t.Errorf("%s nodes = %d, want 7", w.Name, w.Nodes)
		}
	}
	if got := cfg.Worlds[1].Ratio; got != config.DefaultRatio {
		t.Errorf("ratio = %v, want %v", got, config.DefaultRatio)
	}
}

func TestInspect(t *testing.T) {
	path := writeWorld(t, t.TempDir(), "tiny", []world.Edge{
		{From: 0, To: 1, Cost: 2.5},
		{From: 1, To: 2, Cost: 3},
		{From: 1, To: 2, Cost: 1},
	})

	out, err := execute(t, "inspect", path, "--matrix")
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	for _, want := range []string{"tiny", "nodes", "duplicates", "no incoming edges: 0", "no outgoing edges: 2", "1.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectMatrixSizedByLargestID(t *testing.T) {
	path := writeWorld(t, t.TempDir(), "far", []world.Edge{
		{From: 0, To: 3000, Cost: 1},
		{From: 3000, To: 0, Cost: 2},
	})

	out, err := execute(t, "inspect", path, "--matrix")
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	if !strings.Contains(out, "matrix skipped: 3001×3001") {
		t.Errorf("matrix for two nodes with ID 3000 was not skipped:\n%.400s", out)
	}
	if lines := strings.Count(out, "\n"); lines > 20 {
		t.Errorf("output has %d lines, want a short summary", lines)
	}
}

func TestInspectMissingFile(t *testing.T) {
	_, err := execute(t, "inspect", filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestRender(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	path := writeWorld(t, dir, "tiny", []world.Edge{{From: 0, To: 1, Cost: 2.5}, {From: 1, To: 2, Cost: 3}})

	if _, err := execute(t, "render", path, "-f", "puml,dot", "--declare-all"); err != nil {
		t.Fatalf("render error = %v", err)
	}

	puml, err := os.ReadFile(filepath.Join(dir, "tiny.puml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(puml), "circle 2\n") {
		t.Errorf("--declare-all did not declare node 2:\n%s", puml)
	}
	if _, err := os.Stat(filepath.Join(dir, "tiny.dot")); err != nil {
		t.Error("missing tiny.dot")
	}
}

func TestRenderRejectsCSV(t *testing.T) {
	path := writeWorld(t, t.TempDir(), "tiny", nil)
	_, err := execute(t, "render", path, "-f", "csv")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeInvalidFormat)
	}
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "worldgen") {
		t.Error("bash completion does not mention worldgen")
	}
}

func TestGenerateMetricsFile(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "worldgen.prom")

	if _, err := execute(t, "generate", "--output-dir", dir, "--nodes", "4", "--seed", "1", "--metrics-file", metrics); err != nil {
		t.Fatalf("generate error = %v", err)
	}
	data, err := os.ReadFile(metrics)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`worldgen_worlds_total{kind="sparse"} 1`,
		`worldgen_artifacts_total{format="puml",result="ok"} 2`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "worldgen"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheClear(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", home)
	entry := filepath.Join(home, "worldgen", "ab", "cdef")
	if err := os.MkdirAll(filepath.Dir(entry), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(entry, []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear error = %v", err)
	}
	if _, err := os.Stat(entry); !os.IsNotExist(err) {
		t.Error("cache entry survived clear")
	}
}
