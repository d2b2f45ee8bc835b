package huawei

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/nanoncore/olt-fleet/drivers/mock"
	"github.com/nanoncore/olt-fleet/types"
)

const testAddr = "10.0.0.1"

func newTestAdapter(responses map[string]string) *Adapter {
	transport := mock.NewTransport()
	transport.AddDevice(testAddr, responses)
	return NewAdapter(transport, zerolog.Nop())
}

func TestParseModel(t *testing.T) {
	adapter := newTestAdapter(nil)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "model family match",
			raw:  "SNMPv2-MIB::sysDescr.0 = STRING: MA5800-X7 Huawei Integrated Access Software",
			want: "MA5800-X7",
		},
		{
			name: "fallback to first token",
			raw:  "SNMPv2-MIB::sysDescr.0 = STRING: Huawei Integrated Access Software",
			want: "Huawei",
		},
		{
			name: "empty response",
			raw:  "",
			want: types.Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, adapter.ParseModel(tt.raw))
		})
	}
}

func TestParseSystemName(t *testing.T) {
	adapter := newTestAdapter(nil)

	assert.Equal(t, "OLT-CORE-01",
		adapter.ParseSystemName(`SNMPv2-MIB::sysName.0 = STRING: "OLT-CORE-01"`))
	assert.Equal(t, types.Unknown, adapter.ParseSystemName(""))
}

func TestBoardStatus(t *testing.T) {
	adapter := newTestAdapter(map[string]string{
		OIDBoardOperStatus: "HUAWEI-DEVICE-MIB::hwSlotOperStatus.0.1 = INTEGER: 0\n" +
			"HUAWEI-DEVICE-MIB::hwSlotOperStatus.0.2 = INTEGER: 0\n" +
			"HUAWEI-DEVICE-MIB::hwSlotOperStatus.0.3 = INTEGER: 2\n",
	})

	pair := adapter.BoardStatus(context.Background(), testAddr)

	assert.Equal(t, types.CounterPair{Installed: 3, Used: 2}, pair)
}

func TestBoardStatusEmptyTable(t *testing.T) {
	adapter := newTestAdapter(nil)

	pair := adapter.BoardStatus(context.Background(), testAddr)

	assert.True(t, pair.IsZero())
}

func TestPonPortStatus(t *testing.T) {
	adapter := newTestAdapter(map[string]string{
		"1.3.6.1.2.1.2.2.1.3": "IF-MIB::ifType.1 = INTEGER: 250\n" +
			"IF-MIB::ifType.2 = INTEGER: 250\n" +
			"IF-MIB::ifType.3 = INTEGER: 6\n",
		"1.3.6.1.2.1.2.2.1.8": "IF-MIB::ifOperStatus.1 = INTEGER: 1\n" +
			"IF-MIB::ifOperStatus.2 = INTEGER: 2\n" +
			"IF-MIB::ifOperStatus.3 = INTEGER: 1\n",
	})

	pair := adapter.PonPortStatus(context.Background(), testAddr)

	assert.Equal(t, types.CounterPair{Installed: 2, Used: 1}, pair)
}

func TestPonPortStatusMissingOperTable(t *testing.T) {
	adapter := newTestAdapter(map[string]string{
		"1.3.6.1.2.1.2.2.1.3": "IF-MIB::ifType.1 = INTEGER: 250\n",
	})

	pair := adapter.PonPortStatus(context.Background(), testAddr)

	assert.True(t, pair.IsZero())
}

func TestSubscriberUnitStatus(t *testing.T) {
	adapter := newTestAdapter(map[string]string{
		OIDOntRunStatus: "HUAWEI-XPON-MIB::hwGponOntRunStatus.4194304000.1 = INTEGER: 1\n" +
			"HUAWEI-XPON-MIB::hwGponOntRunStatus.4194304000.2 = INTEGER: 0\n" +
			"HUAWEI-XPON-MIB::hwGponOntRunStatus.4194304001.1 = INTEGER: 1\n",
	})

	pair := adapter.SubscriberUnitStatus(context.Background(), testAddr)

	assert.Equal(t, types.CounterPair{Installed: 3, Used: 2}, pair)
}

func TestMetricsDegradeWhenUnreachable(t *testing.T) {
	// Device not registered with the mock transport at all.
	adapter := NewAdapter(mock.NewTransport(), zerolog.Nop())

	ctx := context.Background()
	assert.True(t, adapter.BoardStatus(ctx, testAddr).IsZero())
	assert.True(t, adapter.PonPortStatus(ctx, testAddr).IsZero())
	assert.True(t, adapter.SubscriberUnitStatus(ctx, testAddr).IsZero())
}
