// Package fiberhome normalizes telemetry from FiberHome AN6000 OLTs.
package fiberhome

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nanoncore/olt-fleet/types"
	"github.com/nanoncore/olt-fleet/vendors/common"
)

// modelRegex matches the AN6000 model family in sysDescr,
// e.g. "AN6000-17".
var modelRegex = regexp.MustCompile(`(?i)AN6000[^\s,]*`)

// Adapter implements types.VendorAdapter for FiberHome AN6000 OLTs.
// Boards and PON ports come from dedicated enterprise tables rather than
// the standard interface table.
type Adapter struct {
	transport types.Transport
	log       zerolog.Logger
}

// NewAdapter creates a FiberHome adapter over the given transport.
func NewAdapter(transport types.Transport, log zerolog.Logger) *Adapter {
	return &Adapter{
		transport: transport,
		log:       log.With().Str("vendor", string(types.VendorFiberHome)).Logger(),
	}
}

// Vendor returns the vendor family.
func (a *Adapter) Vendor() types.Vendor {
	return types.VendorFiberHome
}

// ParseModel extracts the hardware model from a raw sysDescr response.
func (a *Adapter) ParseModel(raw string) string {
	if raw == "" {
		return types.Unknown
	}
	if m := modelRegex.FindString(raw); m != "" {
		return m
	}
	if strings.Contains(strings.ToLower(raw), "fiberhome") {
		if token := common.FirstToken(common.ScalarValue(raw)); token != "" {
			return token
		}
	}
	return types.Unknown
}

// ParseSystemName extracts the system name from a raw sysName response.
func (a *Adapter) ParseSystemName(raw string) string {
	if v := common.ScalarValue(raw); v != "" {
		return v
	}
	return types.Unknown
}

// BoardStatus walks the card status table: installed is the row count,
// used the cards in active state. When the status table is empty the
// card type table serves as fallback, counting every typed card as used.
func (a *Adapter) BoardStatus(ctx context.Context, address string) types.CounterPair {
	return common.Degrade(a.log, address, "board", func() types.CounterPair {
		statuses := a.walk(ctx, address, OIDCardStatus, common.TrailingScalar)
		if len(statuses) > 0 {
			pair := types.CounterPair{Installed: len(statuses)}
			for _, status := range statuses {
				if status == CardStatusActive {
					pair.Used++
				}
			}

			a.log.Info().
				Str("address", address).
				Int("installed", pair.Installed).
				Int("active", pair.Used).
				Msg("Card status collected")

			return pair
		}

		cardTypes := a.walk(ctx, address, OIDCardType, common.TrailingScalar)
		if len(cardTypes) > 0 {
			pair := types.CounterPair{Installed: len(cardTypes), Used: len(cardTypes)}

			a.log.Info().
				Str("address", address).
				Int("installed", pair.Installed).
				Msg("Card count derived from type table")

			return pair
		}

		a.log.Warn().Str("address", address).Msg("Could not get board count")
		return types.CounterPair{}
	})
}

// PonPortStatus walks the PON port type table for the installed count and
// the port name table for the configured count. A missing name table
// counts every installed port as used.
func (a *Adapter) PonPortStatus(ctx context.Context, address string) types.CounterPair {
	return common.Degrade(a.log, address, "pon_port", func() types.CounterPair {
		portTypes := a.walk(ctx, address, OIDPonPortType, common.TrailingScalar)
		if len(portTypes) == 0 {
			a.log.Warn().Str("address", address).Msg("Could not get PON port data")
			return types.CounterPair{}
		}

		var pair types.CounterPair
		for _, portType := range portTypes {
			if portType == PonPortTypePON {
				pair.Installed++
			}
		}

		names := a.walk(ctx, address, OIDPonPortName, common.TrailingScalar)
		if len(names) > 0 {
			for _, name := range names {
				if strings.Contains(strings.ToUpper(name), "PON") {
					pair.Used++
				}
			}
		} else {
			pair.Used = pair.Installed
		}

		a.log.Info().
			Str("address", address).
			Int("installed", pair.Installed).
			Int("configured", pair.Used).
			Msg("PON port status collected")

		return pair
	})
}

// SubscriberUnitStatus walks the ONU status table: deregistered rows are
// excluded from the installed count, online rows are status 1.
func (a *Adapter) SubscriberUnitStatus(ctx context.Context, address string) types.CounterPair {
	return common.Degrade(a.log, address, "subscriber_unit", func() types.CounterPair {
		statuses := a.walk(ctx, address, OIDOnuStatus, common.TrailingScalar)
		if len(statuses) == 0 {
			a.log.Warn().Str("address", address).Msg("Could not get ONU data")
			return types.CounterPair{}
		}

		var pair types.CounterPair
		for _, status := range statuses {
			if status != OnuStatusDeregistered {
				pair.Installed++
			}
			if status == OnuStatusOnline {
				pair.Used++
			}
		}

		a.log.Info().
			Str("address", address).
			Int("installed", pair.Installed).
			Int("online", pair.Used).
			Msg("ONU status collected")

		return pair
	})
}

// walk runs one table scan and parses it; transport faults yield an empty
// map so the caller degrades instead of failing.
func (a *Adapter) walk(ctx context.Context, address, oid string, mode common.IndexMode) map[string]string {
	raw, err := a.transport.Query(ctx, address, oid, true)
	if err != nil {
		return map[string]string{}
	}
	return common.ParseWalk(raw, mode)
}

// Ensure Adapter satisfies the contract
var _ types.VendorAdapter = (*Adapter)(nil)
