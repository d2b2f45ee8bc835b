package common

import (
	"github.com/rs/zerolog"

	"github.com/nanoncore/olt-fleet/types"
)

// Degrade runs one metric derivation under the catch-and-degrade contract:
// any panic inside fn is recovered, logged, and reported as a zero pair.
// A fault deriving one metric group must never abort the device's overall
// collection.
func Degrade(log zerolog.Logger, address, metric string, fn func() types.CounterPair) (pair types.CounterPair) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("address", address).
				Str("metric", metric).
				Interface("cause", r).
				Msg("Metric derivation failed, degrading to zero")
			pair = types.CounterPair{}
		}
	}()

	return fn()
}

// CountGponPorts derives PON port counts from the standard interface
// table: installed = rows whose ifType is the GPON sentinel, used = the
// subset whose ifOperStatus is up.
func CountGponPorts(ifTypes, operStatus map[string]string) types.CounterPair {
	var pair types.CounterPair

	for idx, ifType := range ifTypes {
		if ifType != IfTypeGPON {
			continue
		}
		pair.Installed++
		if operStatus[idx] == IfStatusUp {
			pair.Used++
		}
	}

	return pair
}
