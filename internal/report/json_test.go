package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/prettymuchbryce/mobiletest/internal/fs"
	"github.com/prettymuchbryce/mobiletest/internal/testutil"
	"github.com/spf13/afero"
)

func sampleReport() *Report {
	results := map[string]Category{
		"navigation": NewCategory("Navigation", []Outcome{
			{Name: "mobileMenu", Passed: true, Description: "menu"},
			{Name: "breadcrumbs", Passed: true, Issues: []string{`breadcrumb "checkout" not implemented`}},
		}),
	}
	return Build("run-1", time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC), results, Tally{Passed: 1, Warnings: 1}, []string{"Testing Navigation..."})
}

func TestWriteJSON(t *testing.T) {
	filesystem := fs.NewMem()
	path := testutil.Path("/", "reports", "mobile-test-report.json")

	if err := WriteJSON(filesystem, path, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := afero.ReadFile(filesystem, path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}

	// Pretty-printed with two-space indentation.
	if !strings.Contains(string(data), "\n  \"summary\": {") {
		t.Errorf("expected indented JSON, got:\n%s", data)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	for _, key := range []string{"id", "summary", "results", "recommendations", "log"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("report missing key %q", key)
		}
	}

	summary := doc["summary"].(map[string]any)
	if summary["successRate"] != "100%" {
		t.Errorf("successRate = %v, want 100%%", summary["successRate"])
	}
	if summary["date"] != "2026-10-17T09:00:00Z" {
		t.Errorf("date = %v", summary["date"])
	}

	menu := doc["results"].(map[string]any)["navigation"].(map[string]any)["tests"].(map[string]any)["mobileMenu"].(map[string]any)
	if issues, ok := menu["issues"].([]any); !ok || len(issues) != 0 {
		t.Errorf("expected empty issues array, got %#v", menu["issues"])
	}
}
