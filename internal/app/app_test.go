package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sbmraj03/OLX-car-cover-scraper/internal/config"
	"github.com/sbmraj03/OLX-car-cover-scraper/internal/output"
	"github.com/sbmraj03/OLX-car-cover-scraper/internal/utils"
	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

type fakeHarvester struct {
	records []types.Listing
	calls   int
}

func (f *fakeHarvester) Run(_ context.Context, _ string, _ int) []types.Listing {
	f.calls++
	return f.records
}

type fakeGenerator struct {
	calls     int
	lastCount int
}

func (f *fakeGenerator) Generate(n int) []types.Listing {
	f.calls++
	f.lastCount = n
	records := make([]types.Listing, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, types.NewListing("Premium Car Cover for Sedan", "Waterproof", "₹ 999"))
	}
	return records
}

func newTestApp(t *testing.T, harvester *fakeHarvester, generator *fakeGenerator, mock bool) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	cfg.MockCount = 4

	exporter, err := output.NewManager(output.FormatCSV, filepath.Join(t.TempDir(), "out.csv"), utils.NewLoggerWithLevel(utils.ErrorLevel))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	var buf bytes.Buffer
	a := New(Options{
		Config:   cfg,
		Mock:     mock,
		Out:      &buf,
		Logger:   utils.NewLoggerWithLevel(utils.ErrorLevel),
		Exporter: exporter,
	}, harvester, generator)

	return a, &buf
}

func TestRunLiveHarvest(t *testing.T) {
	harvester := &fakeHarvester{records: []types.Listing{
		types.NewListing("All-Weather SUV Car Body Cover", "Heavy duty", "₹ 1,499"),
		types.NewListing("Dustproof Hatchback Cover", "Silver coated", "₹ 1,199"),
	}}
	generator := &fakeGenerator{}

	a, buf := newTestApp(t, harvester, generator, false)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if harvester.calls != 1 {
		t.Errorf("harvester called %d times, want 1", harvester.calls)
	}
	if generator.calls != 0 {
		t.Errorf("generator called %d times, want 0", generator.calls)
	}

	out := buf.String()
	if !strings.Contains(out, "FOUND 2 CAR COVER LISTINGS ON OLX") {
		t.Errorf("table banner missing:\n%s", out)
	}
	if !strings.Contains(out, "Successfully found 2 car cover listings!") {
		t.Errorf("success message missing:\n%s", out)
	}
	if strings.Contains(out, "mock data") {
		t.Errorf("mock annotation present for a live run:\n%s", out)
	}
}

func TestRunFallsBackToMockOnEmptyHarvest(t *testing.T) {
	harvester := &fakeHarvester{}
	generator := &fakeGenerator{}

	a, buf := newTestApp(t, harvester, generator, false)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if harvester.calls != 1 {
		t.Errorf("harvester called %d times, want 1", harvester.calls)
	}
	if generator.calls != 1 {
		t.Errorf("generator called %d times, want 1", generator.calls)
	}
	if generator.lastCount != 4 {
		t.Errorf("generator asked for %d records, want configured 4", generator.lastCount)
	}
	if !strings.Contains(buf.String(), "(Displayed using generated mock data") {
		t.Errorf("mock annotation missing:\n%s", buf.String())
	}
}

func TestRunMockModeSkipsHarvesting(t *testing.T) {
	harvester := &fakeHarvester{}
	generator := &fakeGenerator{}

	a, _ := newTestApp(t, harvester, generator, true)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if harvester.calls != 0 {
		t.Errorf("harvester called %d times in mock mode, want 0", harvester.calls)
	}
	if generator.calls != 1 {
		t.Errorf("generator called %d times, want 1", generator.calls)
	}
}

func TestRunAllRecordsFilteredOut(t *testing.T) {
	// Titles too short or sentinel: everything is dropped by the filter.
	harvester := &fakeHarvester{records: []types.Listing{
		types.NewListing("tiny", "d", "₹ 1"),
		types.NewListing(types.SentinelError, types.SentinelError, types.SentinelError),
	}}

	a, buf := newTestApp(t, harvester, &fakeGenerator{}, false)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(buf.String(), "No valid listings found after filtering") {
		t.Errorf("filtered-out diagnostic missing:\n%s", buf.String())
	}
}

func TestRunShapeViolationIsFatal(t *testing.T) {
	harvester := &fakeHarvester{records: []types.Listing{
		{types.FieldTitle: "Premium Car Cover for Sedan"}, // price key missing
	}}

	a, _ := newTestApp(t, harvester, &fakeGenerator{}, false)
	err := a.Run(context.Background())
	if err == nil {
		t.Fatal("expected shape-validation error")
	}
	if !strings.Contains(err.Error(), "invalid data format") {
		t.Errorf("error = %v", err)
	}
}

func TestRunInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a, _ := newTestApp(t, &fakeHarvester{}, &fakeGenerator{}, false)
	if err := a.Run(ctx); err != ErrInterrupted {
		t.Errorf("Run on cancelled context = %v, want ErrInterrupted", err)
	}
}

func TestRunQuietSuppressesChatter(t *testing.T) {
	harvester := &fakeHarvester{records: []types.Listing{
		types.NewListing("All-Weather SUV Car Body Cover", "Heavy duty", "₹ 1,499"),
	}}

	a, buf := newTestApp(t, harvester, &fakeGenerator{}, false)
	a.opts.Quiet = true

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "Starting scrape of") {
		t.Errorf("progress chatter present in quiet mode:\n%s", out)
	}
	if strings.Contains(out, "SUMMARY STATISTICS") {
		t.Errorf("summary present in quiet mode:\n%s", out)
	}
	// The table and success message are essential output, kept in quiet mode.
	if !strings.Contains(out, "FOUND 1 CAR COVER LISTINGS ON OLX") {
		t.Errorf("table missing in quiet mode:\n%s", out)
	}
}
