package export_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/raysh454/linkscope/internal/export"
	"github.com/raysh454/linkscope/internal/model"
)

func sample() *model.ScanResult {
	return &model.ScanResult{
		ID:        "scan-1",
		URL:       "https://example.com",
		Status:    model.StatusSafe,
		Score:     100,
		Checks:    []model.Check{{Name: "HTTPS Protocol", Status: model.CheckPass, Impact: model.ImpactHigh}},
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestMarshal_EnvelopeShape(t *testing.T) {
	t.Parallel()

	data, err := export.Marshal(sample())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"format_version", "exported_at", "result"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing envelope field %q", key)
		}
	}

	var version string
	if err := json.Unmarshal(doc["format_version"], &version); err != nil || version != model.ExportFormatVersion {
		t.Errorf("format_version = %q, want %q", version, model.ExportFormatVersion)
	}

	var res model.ScanResult
	if err := json.Unmarshal(doc["result"], &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if res.URL != "https://example.com" || res.Score != 100 {
		t.Errorf("result round-trip mismatch: %+v", res)
	}
}

func TestMarshal_NilResult(t *testing.T) {
	t.Parallel()
	if _, err := export.Marshal(nil); err == nil {
		t.Fatal("expected error for nil result")
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := export.Write(&buf, sample()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() == 0 || buf.Bytes()[buf.Len()-1] != '\n' {
		t.Error("output missing trailing newline")
	}
}
