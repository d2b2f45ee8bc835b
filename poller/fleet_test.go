package poller

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanoncore/olt-fleet/drivers/mock"
	"github.com/nanoncore/olt-fleet/types"
	"github.com/nanoncore/olt-fleet/vendors/common"
	"github.com/nanoncore/olt-fleet/vendors/huawei"
)

// newScenarioFleet builds the three-device scenario over a frozen mock
// transport: one device with full tables, one reachable with empty
// tables, one that never answers.
func newScenarioFleet(workers int) *Fleet {
	transport := mock.NewTransport()

	transport.AddDevice("10.0.0.1", map[string]string{
		common.OIDSysDescr: "SNMPv2-MIB::sysDescr.0 = STRING: MA5800-X7 Huawei Integrated Access Software",
		common.OIDSysName:  `SNMPv2-MIB::sysName.0 = STRING: "OLT-CORE-01"`,
		huawei.OIDBoardOperStatus: "HUAWEI-DEVICE-MIB::hwSlotOperStatus.0.1 = INTEGER: 0\n" +
			"HUAWEI-DEVICE-MIB::hwSlotOperStatus.0.2 = INTEGER: 0\n" +
			"HUAWEI-DEVICE-MIB::hwSlotOperStatus.0.3 = INTEGER: 2\n",
		common.OIDIfType: "IF-MIB::ifType.1 = INTEGER: 250\n" +
			"IF-MIB::ifType.2 = INTEGER: 250\n" +
			"IF-MIB::ifType.3 = INTEGER: 6\n",
		common.OIDIfOperStatus: "IF-MIB::ifOperStatus.1 = INTEGER: 1\n" +
			"IF-MIB::ifOperStatus.2 = INTEGER: 2\n" +
			"IF-MIB::ifOperStatus.3 = INTEGER: 1\n",
		huawei.OIDOntRunStatus: "HUAWEI-XPON-MIB::hwGponOntRunStatus.4194304000.1 = INTEGER: 1\n" +
			"HUAWEI-XPON-MIB::hwGponOntRunStatus.4194304000.2 = INTEGER: 0\n" +
			"HUAWEI-XPON-MIB::hwGponOntRunStatus.4194304001.1 = INTEGER: 1\n",
	})

	// Reachable, but every metric table is empty.
	transport.AddDevice("10.0.0.2", map[string]string{
		common.OIDSysDescr: "SNMPv2-MIB::sysDescr.0 = STRING: MA5800-X2 Huawei Integrated Access Software",
	})

	// 10.0.0.3 is never registered: unreachable.

	adapter := huawei.NewAdapter(transport, zerolog.Nop())
	collector := NewCollector(transport, adapter, zerolog.Nop())
	return NewFleet(collector, workers, zerolog.Nop())
}

func TestFleetEndToEnd(t *testing.T) {
	fleet := newScenarioFleet(5)

	records, summary := fleet.Run(context.Background(),
		[]string{"10.0.0.3", "10.0.0.1", "10.0.0.2"})

	require.Len(t, records, 3)

	// Sorted by address regardless of completion order.
	assert.Equal(t, "10.0.0.1", records[0].Address)
	assert.Equal(t, "10.0.0.2", records[1].Address)
	assert.Equal(t, "10.0.0.3", records[2].Address)

	full := records[0]
	assert.Equal(t, types.StatusOK, full.Status)
	assert.Equal(t, "OLT-CORE-01", full.SystemName)
	assert.Equal(t, "MA5800-X7", full.Model)
	assert.Equal(t, types.CounterPair{Installed: 3, Used: 2}, full.Board)
	assert.Equal(t, types.CounterPair{Installed: 2, Used: 1}, full.PonPort)
	assert.Equal(t, types.CounterPair{Installed: 3, Used: 2}, full.SubscriberUnit)

	empty := records[1]
	assert.Equal(t, types.StatusOK, empty.Status)
	assert.True(t, empty.Board.IsZero())
	assert.True(t, empty.PonPort.IsZero())
	assert.True(t, empty.SubscriberUnit.IsZero())

	down := records[2]
	assert.Equal(t, types.StatusError, down.Status)
	assert.Equal(t, "timeout/unreachable", down.Error)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.OK)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, types.CounterPair{Installed: 3, Used: 2}, summary.Board)
	assert.Equal(t, types.CounterPair{Installed: 2, Used: 1}, summary.PonPort)
	assert.Equal(t, types.CounterPair{Installed: 3, Used: 2}, summary.SubscriberUnit)
}

func TestFleetRunIsIdempotent(t *testing.T) {
	fleet := newScenarioFleet(3)
	addresses := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}

	firstRecords, firstSummary := fleet.Run(context.Background(), addresses)
	secondRecords, secondSummary := fleet.Run(context.Background(), addresses)

	require.Equal(t, firstRecords, secondRecords)
	require.Equal(t, firstSummary, secondSummary)
}

func TestFleetDeduplicatesAddresses(t *testing.T) {
	fleet := newScenarioFleet(2)

	records, summary := fleet.Run(context.Background(),
		[]string{"10.0.0.1", "10.0.0.1", "", "10.0.0.1"})

	require.Len(t, records, 1)
	assert.Equal(t, 1, summary.Total)
}

func TestFleetSynthesizesRecordOnDispatchFault(t *testing.T) {
	fleet := NewFleet(faultyCollector{}, 2, zerolog.Nop())

	records, summary := fleet.Run(context.Background(), []string{"10.0.0.1", "10.0.0.2"})

	require.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, types.StatusError, record.Status)
		assert.Contains(t, record.Error, "collector exploded")
	}
	assert.Equal(t, 2, summary.Failed)
}

func TestSummarizeSkipsErrorRecords(t *testing.T) {
	records := []types.DeviceRecord{
		{
			Address: "10.0.0.1",
			Status:  types.StatusOK,
			Board:   types.CounterPair{Installed: 4, Used: 4},
		},
		{
			Address: "10.0.0.2",
			Status:  types.StatusError,
			Error:   "timeout/unreachable",
			Board:   types.CounterPair{Installed: 9, Used: 9},
		},
	}

	summary := Summarize(records)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.OK)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, types.CounterPair{Installed: 4, Used: 4}, summary.Board)
}

// faultyCollector escapes the per-device containment to exercise the
// fleet-level guard.
type faultyCollector struct{}

func (faultyCollector) Collect(context.Context, string) types.DeviceRecord {
	panic("collector exploded")
}
