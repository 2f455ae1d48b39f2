package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackedcards/pkg/config"
	"github.com/matzehuels/stackedcards/pkg/errors"
	"github.com/matzehuels/stackedcards/pkg/observability"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()

	want := []string{"view", "render", "inspect", "config", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
	if root.PersistentFlags().Lookup("debug") == nil {
		t.Error("missing --debug flag")
	}
}

func TestConfigShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[transform]\nrotation = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, New(&bytes.Buffer{}, log.InfoLevel), "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show error: %v", err)
	}
	if !strings.Contains(out, "rotation = false") {
		t.Errorf("config show output missing override:\n%s", out)
	}

	cfg, err := config.Decode(out)
	if err != nil {
		t.Fatalf("config show output does not decode: %v", err)
	}
	if cfg.Transform.Rotation {
		t.Error("decoded rotation should be false")
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	c := New(&bytes.Buffer{}, log.InfoLevel)

	if _, err := execute(t, c, "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init error: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.Deck.Colors) != len(config.Default().Deck.Colors) {
		t.Errorf("written config has %d colours, want %d", len(cfg.Deck.Colors), len(config.Default().Deck.Colors))
	}

	out, err := execute(t, c, "--config", path, "config", "path")
	if err != nil {
		t.Fatalf("config path error: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, want %q", strings.TrimSpace(out), path)
	}
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[progress]\nclamp = \"sideways\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, New(&bytes.Buffer{}, log.InfoLevel), "--config", path, "inspect")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	out, err := execute(t, New(&bytes.Buffer{}, log.InfoLevel), "--config", path, "inspect", "--page", "1", "--width", "300")
	if err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	for _, want := range []string{"Progress", "Rotation", "current 1", "+0.000", "21"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectInvalidOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	_, err := execute(t, New(&bytes.Buffer{}, log.InfoLevel), "--config", path, "inspect", "--order", "random")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestNegativePageRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	for _, cmd := range []string{"render", "inspect", "view"} {
		t.Run(cmd, func(t *testing.T) {
			_, err := execute(t, New(&bytes.Buffer{}, log.InfoLevel), "--config", path, cmd, "--page=-3")
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("%s --page -3 error = %v, want %s", cmd, err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestDebugRegistersHooks(t *testing.T) {
	defer observability.Reset()

	path := filepath.Join(t.TempDir(), "missing.toml")
	var logs bytes.Buffer
	c := New(&logs, log.InfoLevel)
	if _, err := execute(t, c, "--config", path, "--debug", "inspect"); err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	if _, ok := observability.Carousel().(*logHooks); !ok {
		t.Errorf("carousel hooks = %T, want *logHooks", observability.Carousel())
	}
	if !strings.Contains(logs.String(), "card 0 progress=") {
		t.Errorf("debug log missing card transforms:\n%s", logs.String())
	}
}
