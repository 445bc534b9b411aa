// Package testing provides helpers for deterministic overlay tests.
//
// # Animation Testing
//
// Control time for deterministic animation tests by handing a [FakeClock]
// to the code under test and stepping it frame by frame:
//
//	clock := drifttest.NewFakeClock()
//	border := overlay.New(bounds, metrics, overlay.WithClock(clock))
//	border.Show()
//	clock.Run(100*time.Millisecond, drifttest.DefaultFrame, border.Tick)
//
// # Snapshot Testing
//
// Record values frame by frame and compare them against a golden file:
//
//	snap := drifttest.NewSnapshot()
//	snap.Record("shown", frameRecord(border.Frame()))
//	snap.MatchesFile(t, "testdata/show.snapshot.json")
//
// Update snapshots with:
//
//	BORDER_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/border/pkg/testing"
package testing
