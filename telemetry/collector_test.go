package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCollector_WindowCadence(t *testing.T) {
	c := NewCollector(5.0, 1.0/60.0)

	if got := c.WindowDurationTicks(); got != 300 {
		t.Fatalf("window duration = %d ticks, want 300", got)
	}
	if c.ShouldFlush(299) {
		t.Error("flushed one tick early")
	}
	if !c.ShouldFlush(300) {
		t.Error("did not flush at window boundary")
	}

	c.Flush(300, 0, nil)

	if c.ShouldFlush(599) {
		t.Error("flushed early after reset")
	}
	if !c.ShouldFlush(600) {
		t.Error("did not flush at second boundary")
	}
}

func TestCollector_FlushAggregatesAndResets(t *testing.T) {
	c := NewCollector(5.0, 1.0/60.0)

	c.RecordToggle()
	c.RecordToggle()
	c.RecordSpill()
	c.RecordSpill()
	c.RecordSpill()
	c.RecordTones(4)

	stats := c.Flush(300, 2, []float64{10, 20, 30})

	if stats.Toggles != 2 || stats.Spills != 3 || stats.Tones != 4 {
		t.Errorf("counters = %d/%d/%d, want 2/3/4",
			stats.Toggles, stats.Spills, stats.Tones)
	}
	if stats.ActiveCells != 2 {
		t.Errorf("active cells = %d, want 2", stats.ActiveCells)
	}
	if math.Abs(stats.SimTimeSec-5.0) > 1e-9 {
		t.Errorf("sim time = %f, want 5.0", stats.SimTimeSec)
	}
	if math.Abs(stats.EnergyMean-20) > 1e-9 {
		t.Errorf("energy mean = %f, want 20", stats.EnergyMean)
	}

	next := c.Flush(600, 0, nil)
	if next.Toggles != 0 || next.Spills != 0 || next.Tones != 0 {
		t.Errorf("counters not reset: %d/%d/%d", next.Toggles, next.Spills, next.Tones)
	}
	if next.WindowStartTick != 300 {
		t.Errorf("window start = %d, want 300", next.WindowStartTick)
	}
}

func TestOutputManager_DisabledAndNil(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("empty dir should disable output, got error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// All methods are nil-safe.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("nil WriteTelemetry: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("nil Dir() = %q", om.Dir())
	}
}

func TestOutputManager_WritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("creating output manager: %v", err)
	}

	if err := om.WriteTelemetry(WindowStats{WindowEndTick: 300}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := om.WriteTelemetry(WindowStats{WindowEndTick: 600}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("closing: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 records, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "window_end") {
		t.Errorf("first line is not a header: %q", lines[0])
	}
	if strings.Contains(lines[2], "window_end") {
		t.Errorf("header repeated on record line: %q", lines[2])
	}
}
