package poller

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nanoncore/olt-fleet/types"
)

// Fleet runs a device collector over an address set under a bounded
// worker pool and reduces the results into a summary.
type Fleet struct {
	collector DeviceCollector
	workers   int
	log       zerolog.Logger
}

// NewFleet creates a fleet poller. workers <= 0 falls back to the
// default pool size.
func NewFleet(collector DeviceCollector, workers int, log zerolog.Logger) *Fleet {
	if workers <= 0 {
		workers = types.DefaultWorkers
	}
	return &Fleet{
		collector: collector,
		workers:   workers,
		log:       log,
	}
}

// Run polls every address and returns one record per requested device,
// sorted by address, plus the fleet summary. Input addresses are
// deduplicated before dispatch. Devices are independent: a failure never
// crosses a device boundary, and a task that somehow escapes the
// collector's containment is synthesized into an ERROR record rather
// than aborting the run.
func (f *Fleet) Run(ctx context.Context, addresses []string) ([]types.DeviceRecord, types.FleetSummary) {
	targets := dedupe(addresses)

	f.log.Info().
		Int("devices", len(targets)).
		Int("workers", f.workers).
		Msg("Starting fleet poll")

	jobs := make(chan string)
	results := make(chan types.DeviceRecord, len(targets))

	var wg sync.WaitGroup
	for i := 0; i < f.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for address := range jobs {
				results <- f.collectOne(ctx, address)
			}
		}()
	}

	for _, address := range targets {
		jobs <- address
	}
	close(jobs)
	wg.Wait()
	close(results)

	records := make([]types.DeviceRecord, 0, len(targets))
	for record := range results {
		records = append(records, record)
	}

	// Deterministic output ordering independent of completion order.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Address < records[j].Address
	})

	summary := Summarize(records)

	f.log.Info().
		Int("total", summary.Total).
		Int("success", summary.OK).
		Int("failed", summary.Failed).
		Msg("Fleet poll finished")

	return records, summary
}

// collectOne guards against faults escaping the collector's containment.
func (f *Fleet) collectOne(ctx context.Context, address string) (record types.DeviceRecord) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Error().Str("address", address).Interface("cause", r).Msg("Collector dispatch fault")
			record = types.DeviceRecord{
				Address: address,
				Status:  types.StatusError,
				Error:   fmt.Sprint(r),
			}
		}
	}()

	return f.collector.Collect(ctx, address)
}

// Summarize reduces records into device counts by status plus sums of
// every numeric field over OK records only.
func Summarize(records []types.DeviceRecord) types.FleetSummary {
	summary := types.FleetSummary{Total: len(records)}

	for _, record := range records {
		if record.Status != types.StatusOK {
			summary.Failed++
			continue
		}
		summary.OK++
		summary.Board = summary.Board.Add(record.Board)
		summary.PonPort = summary.PonPort.Add(record.PonPort)
		summary.SubscriberUnit = summary.SubscriberUnit.Add(record.SubscriberUnit)
	}

	return summary
}

// dedupe removes duplicate addresses, preserving first-seen order.
func dedupe(addresses []string) []string {
	seen := make(map[string]bool, len(addresses))
	out := make([]string, 0, len(addresses))
	for _, address := range addresses {
		if address == "" || seen[address] {
			continue
		}
		seen[address] = true
		out = append(out, address)
	}
	return out
}
