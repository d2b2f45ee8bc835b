// Package poller drives the collection pipeline: one collector per
// device, a bounded worker pool across the fleet, and the summary
// reduction.
package poller

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nanoncore/olt-fleet/types"
	"github.com/nanoncore/olt-fleet/vendors/common"
)

// DeviceCollector produces the normalized record for one device. It never
// returns an error: all per-device failure modes end up inside the record.
type DeviceCollector interface {
	Collect(ctx context.Context, address string) types.DeviceRecord
}

// Collector polls one device end to end: reachability probe, identity,
// then the three metric groups in sequence. Metric groups are fetched
// sequentially to avoid overwhelming a single target with simultaneous
// queries.
type Collector struct {
	transport types.Transport
	adapter   types.VendorAdapter
	log       zerolog.Logger
}

// NewCollector creates a device collector for one vendor family.
func NewCollector(transport types.Transport, adapter types.VendorAdapter, log zerolog.Logger) *Collector {
	return &Collector{
		transport: transport,
		adapter:   adapter,
		log:       log,
	}
}

// Collect polls the device at address and returns its record.
//
// A failed reachability probe yields an ERROR record with zero metrics.
// After a successful probe the device is OK regardless of which metric
// tables were retrievable; individual groups degrade to zero pairs. Any
// unexpected fault is caught here, recorded as the error reason, and the
// partially filled record is returned rather than discarded.
func (c *Collector) Collect(ctx context.Context, address string) (record types.DeviceRecord) {
	record = types.DeviceRecord{
		Address: address,
		Status:  types.StatusError,
	}

	defer func() {
		if r := recover(); r != nil {
			record.Status = types.StatusError
			record.Error = fmt.Sprint(r)
			c.log.Error().Str("address", address).Str("reason", record.Error).Msg("Device collection failed")
		}
	}()

	c.log.Info().Str("address", address).Msg("Processing OLT")

	probe, err := c.transport.Query(ctx, address, common.OIDSysDescr, false)
	if err != nil || probe == "" {
		record.Error = types.ErrUnreachable.Error()
		c.log.Warn().Str("address", address).Msg("Timeout/unreachable")
		return record
	}

	// Identity is best-effort and never fails the device.
	nameRaw, _ := c.transport.Query(ctx, address, common.OIDSysName, false)
	record.SystemName = c.adapter.ParseSystemName(nameRaw)
	record.Model = c.adapter.ParseModel(probe)

	record.Board = c.adapter.BoardStatus(ctx, address)
	record.PonPort = c.adapter.PonPortStatus(ctx, address)
	record.SubscriberUnit = c.adapter.SubscriberUnitStatus(ctx, address)

	record.Status = types.StatusOK

	c.log.Info().
		Str("address", address).
		Str("sysname", record.SystemName).
		Str("model", record.Model).
		Str("board", fmt.Sprintf("%d/%d", record.Board.Used, record.Board.Installed)).
		Str("pon", fmt.Sprintf("%d/%d", record.PonPort.Used, record.PonPort.Installed)).
		Str("onu", fmt.Sprintf("%d/%d", record.SubscriberUnit.Used, record.SubscriberUnit.Installed)).
		Msg("Device collected")

	return record
}

// Ensure Collector satisfies the contract
var _ DeviceCollector = (*Collector)(nil)
