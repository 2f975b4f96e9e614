package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prettymuchbryce/mobiletest/internal/checks"
	"github.com/prettymuchbryce/mobiletest/internal/device"
	"github.com/prettymuchbryce/mobiletest/internal/fs"
	"github.com/prettymuchbryce/mobiletest/internal/pathutil"
	"github.com/prettymuchbryce/mobiletest/internal/report"
	"github.com/prettymuchbryce/mobiletest/internal/testutil"
	"github.com/spf13/afero"
)

func defaultOptions() runOptions {
	return runOptions{
		reportPath: "mobile-test-report.json",
		baseDir:    testutil.Path("/", "opt", "mobiletest"),
	}
}

func readReport(t *testing.T, filesystem fs.FileSystem, path string) report.Report {
	t.Helper()
	data, err := afero.ReadFile(filesystem, path)
	if err != nil {
		t.Fatalf("failed to read report %s: %v", path, err)
	}
	var rep report.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("invalid report JSON: %v", err)
	}
	return rep
}

func TestExecute_DefaultRun(t *testing.T) {
	filesystem := fs.NewMem()
	var out bytes.Buffer

	rep, err := execute(defaultOptions(), filesystem, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rep.Summary.TotalTests != 6 {
		t.Errorf("expected 6 categories, got %d", rep.Summary.TotalTests)
	}
	if rep.Summary.Failed != 0 {
		t.Errorf("expected shipped profile to pass, got %d failed", rep.Summary.Failed)
	}

	written := readReport(t, filesystem, testutil.Path("/", "opt", "mobiletest", "mobile-test-report.json"))
	if written.ID != rep.ID {
		t.Errorf("written report id %q, want %q", written.ID, rep.ID)
	}
	if len(written.Results) != 6 {
		t.Errorf("expected 6 results in file, got %d", len(written.Results))
	}

	for _, want := range []string{"Responsive Layout", "Navigation", "Success rate", "Recommendations"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("console output missing %q", want)
		}
	}
}

func TestExecute_CategoryFilterAndTemplate(t *testing.T) {
	filesystem := fs.NewMem()
	opts := defaultOptions()
	opts.categories = []string{"touch*", "navigation"}
	opts.reportPath = filepath.Join("reports", "${profile}-${id}.json")

	rep, err := execute(opts, filesystem, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rep.Summary.TotalTests != 2 {
		t.Errorf("expected 2 categories, got %d", rep.Summary.TotalTests)
	}
	path := filepath.Join(opts.baseDir, "reports", fmt.Sprintf("default-%s.json", rep.ID))
	if exists, _ := afero.Exists(filesystem, path); !exists {
		t.Errorf("expected report at %s", path)
	}
}

func TestExecute_NoCategoriesSelected(t *testing.T) {
	opts := defaultOptions()
	opts.categories = []string{"does-not-exist"}

	rep, err := execute(opts, fs.NewMem(), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Summary.SuccessRate != "0%" {
		t.Errorf("SuccessRate = %q, want 0%%", rep.Summary.SuccessRate)
	}
}

func TestExecute_FailingProfile(t *testing.T) {
	filesystem := fs.NewMem()
	profilePath := testutil.Path("/", "profiles", "legacy.yaml")
	afero.WriteFile(filesystem, profilePath, []byte(`
name: legacy
breakpoints:
  - { name: Feature Phone, width: 180, height: 320 }
viewport: width=980
image_max_width: 980px
touch_targets:
  - { name: link, width: 30, height: 20, spacing: 2, tap_response: 350ms }
gestures:
  - { name: swipe, implemented: false }
  - { name: pinch-zoom, implemented: false }
  - { name: long-press, implemented: false }
base_font_size: 12
line_height: 1.2
scroll_fps: { base: 20, per_pixel: 0 }
page_load: { base: 5s, per_pixel: 0s }
mobile_menu: { implemented: false }
breadcrumbs:
  - { name: home, implemented: false }
  - { name: product, implemented: false }
`), 0644)

	opts := defaultOptions()
	opts.profile = profilePath

	rep, err := execute(opts, filesystem, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rep.Summary.Passed != 0 || rep.Summary.Failed != 6 {
		t.Errorf("expected all 6 categories to fail, got %+v", rep.Summary)
	}

	wantFailed := map[string]string{
		"responsiveLayout":  "viewportMeta,flexibleImages,qrCodeSizing",
		"touchInteractions": "touchTargetSize,touchTargetSpacing,tapResponseTime",
		"gestureSupport":    "gestureCoverage,momentumScrolling,touchActionPolicy",
		"readability":       "baseFontSize,lineHeight",
		"performance":       "scrollFrameRate,pageLoadTime",
		"navigation":        "mobileMenu,breadcrumbs,backNavigation",
	}
	for name, want := range wantFailed {
		c, ok := rep.Results[name]
		if !ok {
			t.Errorf("missing result for %s", name)
			continue
		}
		var failed []string
		for _, o := range c.Outcomes() {
			if !o.Passed {
				failed = append(failed, o.Name)
			}
		}
		if got := strings.Join(failed, ","); got != want {
			t.Errorf("%s failed rules = %s, want %s", name, got, want)
		}
	}
	var categories []string
	for _, r := range rep.Recommendations {
		categories = append(categories, r.Category)
	}
	want := "Touch Interactions,Readability,Performance,Navigation,General"
	if strings.Join(categories, ",") != want {
		t.Errorf("recommendations = %v, want %s", categories, want)
	}
}

func TestExecute_MissingProfile(t *testing.T) {
	opts := defaultOptions()
	opts.profile = testutil.Path("/", "nope.yaml")

	if _, err := execute(opts, fs.NewMem(), &bytes.Buffer{}); err == nil {
		t.Errorf("expected error for missing profile")
	}
}

func TestExitCode(t *testing.T) {
	SetupLogging(&bytes.Buffer{}, "error")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"checks failed", errChecksFailed, 1},
		{"wrapped evaluation error", fmt.Errorf("run: %w", checks.ErrEvaluationAborted), 1},
		{"other error", errors.New("disk full"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPrintDevices(t *testing.T) {
	var buf bytes.Buffer
	printDevices(&buf, "default", device.Default(), checks.List())

	out := buf.String()
	for _, want := range []string{"profile: default", "iPhone SE", "320x568", "gestureSupport", "(3 rules)", "qrCodeSizing"} {
		if !strings.Contains(out, want) {
			t.Errorf("devices output missing %q:\n%s", want, out)
		}
	}
}

func TestReportPathOrDefault(t *testing.T) {
	got, err := reportPathOrDefault("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := pathutil.DefaultReportPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("reportPathOrDefault(\"\") = %q, want %q", got, want)
	}

	custom := filepath.Join("reports", "%Y%m%d.json")
	if got, _ := reportPathOrDefault(custom); got != custom {
		t.Errorf("reportPathOrDefault(%q) = %q", custom, got)
	}
}

func TestExecute_DefaultReportPath(t *testing.T) {
	path, err := reportPathOrDefault("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := defaultOptions()
	opts.reportPath = path

	filesystem := fs.NewMem()
	if _, err := execute(opts, filesystem, &bytes.Buffer{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists, _ := afero.Exists(filesystem, path); !exists {
		t.Errorf("expected report beside the executable at %s", path)
	}
}
