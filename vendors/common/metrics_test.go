package common

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/nanoncore/olt-fleet/types"
)

func TestDegradeRecoversPanic(t *testing.T) {
	pair := Degrade(zerolog.Nop(), "10.0.0.1", "board", func() types.CounterPair {
		panic("table decode blew up")
	})

	assert.True(t, pair.IsZero())
}

func TestDegradePassesThrough(t *testing.T) {
	pair := Degrade(zerolog.Nop(), "10.0.0.1", "board", func() types.CounterPair {
		return types.CounterPair{Installed: 4, Used: 3}
	})

	assert.Equal(t, types.CounterPair{Installed: 4, Used: 3}, pair)
}

func TestCountGponPorts(t *testing.T) {
	tests := []struct {
		name       string
		ifTypes    map[string]string
		operStatus map[string]string
		want       types.CounterPair
	}{
		{
			name:       "empty tables",
			ifTypes:    map[string]string{},
			operStatus: map[string]string{},
			want:       types.CounterPair{},
		},
		{
			name: "counts only gpon rows",
			ifTypes: map[string]string{
				"1": IfTypeGPON,
				"2": IfTypeGPON,
				"3": "6", // ethernet uplink
			},
			operStatus: map[string]string{
				"1": IfStatusUp,
				"2": "2",
				"3": IfStatusUp,
			},
			want: types.CounterPair{Installed: 2, Used: 1},
		},
		{
			name: "missing oper row counts as down",
			ifTypes: map[string]string{
				"1": IfTypeGPON,
			},
			operStatus: map[string]string{},
			want:       types.CounterPair{Installed: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountGponPorts(tt.ifTypes, tt.operStatus))
		})
	}
}
