package integration

import (
	"context"
	"testing"
	"time"

	"github.com/e12tools/resistor-combinator/internal/search"
	"go.uber.org/zap"
)

// TestPerformance reports the search rate over the default table.
func TestPerformance(t *testing.T) {
	if !testing.Verbose() {
		t.Skip("Skipping performance test. Run with -v to enable.")
	}

	conf := defaultSearch(t)
	conf.TargetEnd = 200_000

	start := time.Now()
	summary, err := search.NewEngine(zap.NewNop(), conf).Run(context.Background(), &recordCollector{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	elapsed := time.Since(start)

	rate := float64(summary.Targets) / elapsed.Seconds()
	t.Logf("searched %d targets in %v (%.0f targets/s, %d within tolerance)", summary.Targets, elapsed, rate, summary.ExactMatches)
	t.Logf("estimated full 1-10M run: %v", time.Duration(float64(10_000_000)/rate*float64(time.Second)))
}
