package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Protocol-Lattice/gqlp/internal/config"
	"github.com/Protocol-Lattice/gqlp/internal/logging"
)

const starwars = "../../../examples/starwars.graphql"

// run executes the command line with a private config file and returns
// stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "gqlp.toml")
	if err := os.WriteFile(cfg, []byte("[log]\nlevel = \"warn\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append([]string{"--config", cfg}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestParseCmd(t *testing.T) {
	out, _, err := run(t, "", "parse", "--no-color", starwars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `enum Episode
  NEWHOPE
  EMPIRE
  JEDI
type Starship
  id: ID!
  name: String!
  length(unit: LengthUnit = METER): Float
type Human implements Character
  id: ID!
  name: String!
  friends: [Character]
  appearsIn: [Episode]!
  starships: [Starship]
  totalCredits: Int
input ReviewInput
  stars: Int!
  commentary: String
query DroidById($id: ID!)
  droid(id: $id)
  name
  friends { name }
`
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCmd_JSON(t *testing.T) {
	out, _, err := run(t, "enum E { A B }", "parse", "-f", "json", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var view struct {
		Declarations []struct {
			Kind   string   `json:"kind"`
			Values []string `json:"values"`
		} `json:"declarations"`
	}
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(view.Declarations) != 1 || view.Declarations[0].Kind != "enum" || len(view.Declarations[0].Values) != 2 {
		t.Errorf("unexpected view %+v", view)
	}
}

func TestParseCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		in   string
		want string
	}{
		{"syntax", []string{"parse", "-"}, "type A {\n  b Int\n}", "-:2:5: unexpected token"},
		{"lexical", []string{"parse", "-"}, "type A { % }", "-:1:10: unexpected character"},
		{"missing file", []string{"parse", "does-not-exist.graphql"}, "", "read does-not-exist.graphql"},
		{"format", []string{"parse", "-f", "xml", "-"}, "", "unknown output format"},
		{"arguments", []string{"parse"}, "", "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.in, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestTokensCmd(t *testing.T) {
	out, _, err := run(t, "type A # c\n", "tokens", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 tokens, got:\n%s", out)
	}
	if got := strings.Fields(lines[1]); !cmp.Equal(got, []string{"1:6", "NAME", `"A"`}) {
		t.Errorf("unexpected line %q", lines[1])
	}

	out, _, err = run(t, "type A # c\n", "tokens", "--all", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "COMMENT") || !strings.Contains(out, "NEWLINE") {
		t.Errorf("expected comments and line breaks with --all:\n%s", out)
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "gqlp v"+Version+"\n") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRoot_BadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(cfg, []byte("[log]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	root := newRootCmd()
	root.SetArgs([]string{"--config", cfg, "version"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "log.level") {
		t.Errorf("expected a config error, got %v", err)
	}
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := run(t, "enum E { A }", "-v", "parse", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "parsed schema") {
		t.Errorf("expected a debug record on stderr, got %q", stderr)
	}
}

func TestServe_Shutdown(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Addr = "127.0.0.1:0"
	a := &app{cfg: cfg, level: new(slog.LevelVar), log: logging.Discard()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, a) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
