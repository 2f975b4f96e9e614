package config

import (
	"bytes"
	"testing"
	"text/template"

	"github.com/prettymuchbryce/mobiletest/internal/testutil"

	"github.com/spf13/afero"
)

// renderYAML renders a YAML template with the given data.
func renderYAML(t *testing.T, tmpl string, data any) string {
	t.Helper()
	var buf bytes.Buffer
	template.Must(template.New("yaml").Parse(tmpl)).Execute(&buf, data)
	return buf.String()
}

func TestLoadWithFs_ValidConfig(t *testing.T) {
	configPath := testutil.Path("/", "config.yaml")
	profilePath := testutil.Path("/", "profiles", "tablet.yaml")

	fs := afero.NewMemMapFs()
	configYAML := renderYAML(t, `
report:
  path: reports/report-%Y%m%d.json
logging:
  level: debug
profile: {{.ProfilePath}}
categories:
  - touch*
  - navigation
`, map[string]string{"ProfilePath": profilePath})
	afero.WriteFile(fs, configPath, []byte(configYAML), 0644)

	cfg, err := LoadWithFs(configPath, fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Report.Path != "reports/report-%Y%m%d.json" {
		t.Errorf("expected report path template, got %q", cfg.Report.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging level 'debug', got %q", cfg.Logging.Level)
	}
	if cfg.Profile != profilePath {
		t.Errorf("expected profile %q, got %q", profilePath, cfg.Profile)
	}
	if len(cfg.Categories) != 2 || cfg.Categories[0] != "touch*" {
		t.Errorf("unexpected categories: %v", cfg.Categories)
	}
}

func TestLoadWithFs_DefaultValues(t *testing.T) {
	configPath := testutil.Path("/", "config.yaml")

	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, configPath, []byte("profile: \"\"\n"), 0644)

	cfg, err := LoadWithFs(configPath, fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Report.Path != "" {
		t.Errorf("expected empty default report path, got %q", cfg.Report.Path)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected default logging level 'warn', got %q", cfg.Logging.Level)
	}
	if len(cfg.Categories) != 0 {
		t.Errorf("expected no category filter, got %v", cfg.Categories)
	}
}

func TestLoadWithFs_EmptyPath(t *testing.T) {
	cfg, err := LoadWithFs("", afero.NewMemMapFs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Report.Path != "" || cfg.Logging.Level != "warn" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadWithFs_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	badPath := testutil.Path("/", "bad.yaml")
	afero.WriteFile(fs, badPath, []byte("report: [unterminated\n"), 0644)

	if _, err := LoadWithFs(testutil.Path("/", "missing.yaml"), fs); err == nil {
		t.Errorf("expected error for missing file")
	}
	if _, err := LoadWithFs(badPath, fs); err == nil {
		t.Errorf("expected error for invalid YAML")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:   "debug",
		EnvReportPath: "/tmp/out.json",
		EnvProfile:    "",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	cfg.Profile = "from-file.yaml"
	cfg.applyEnv(lookup)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected env log level, got %q", cfg.Logging.Level)
	}
	if cfg.Report.Path != "/tmp/out.json" {
		t.Errorf("expected env report path, got %q", cfg.Report.Path)
	}
	if cfg.Profile != "from-file.yaml" {
		t.Errorf("empty env value should not override, got %q", cfg.Profile)
	}
}
