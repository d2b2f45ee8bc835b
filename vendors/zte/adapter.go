// Package zte normalizes telemetry from ZTE ZXA10 C600/C620 OLTs.
//
// The C600 exposes no board table over SNMP; slot cards are inferred from
// the packed interface index of the GPON ports.
package zte

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nanoncore/olt-fleet/types"
	"github.com/nanoncore/olt-fleet/vendors/common"
)

var (
	// modelRegex matches the chassis family, e.g. "C600" or "C620"
	modelRegex = regexp.MustCompile(`(?i)C6[0-2]0`)

	// platformRegex matches the platform token, e.g. "ZXA10-C600"
	platformRegex = regexp.MustCompile(`ZXA10[^\s,]+`)
)

// Adapter implements types.VendorAdapter for ZTE C600/C620 OLTs.
type Adapter struct {
	transport types.Transport
	log       zerolog.Logger
}

// NewAdapter creates a ZTE adapter over the given transport.
func NewAdapter(transport types.Transport, log zerolog.Logger) *Adapter {
	return &Adapter{
		transport: transport,
		log:       log.With().Str("vendor", string(types.VendorZTE)).Logger(),
	}
}

// Vendor returns the vendor family.
func (a *Adapter) Vendor() types.Vendor {
	return types.VendorZTE
}

// ParseModel extracts the chassis model from a raw sysDescr response,
// e.g. "ZXA10 C600, ZTE ZXA10 Software Version: V1.2.2" -> "ZTE-C600".
func (a *Adapter) ParseModel(raw string) string {
	if raw == "" {
		return types.Unknown
	}
	if m := modelRegex.FindString(raw); m != "" {
		return fmt.Sprintf("ZTE-%s", m)
	}
	if m := platformRegex.FindString(raw); m != "" {
		return m
	}
	if strings.Contains(raw, "ZXA10") || strings.Contains(raw, "C600") || strings.Contains(raw, "C620") {
		return "ZTE-C600"
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

// BoardStatus infers slot cards from the GPON interface indices:
// installed is the number of distinct slots, used the slots with at least
// one admin-up port.
func (a *Adapter) BoardStatus(ctx context.Context, address string) types.CounterPair {
	return common.Degrade(a.log, address, "board", func() types.CounterPair {
		ifTypes := a.walk(ctx, address, common.OIDIfType, common.TrailingScalar)
		if len(ifTypes) == 0 {
			a.log.Warn().Str("address", address).Msg("Could not get interface type")
			return types.CounterPair{}
		}
		adminStatus := a.walk(ctx, address, common.OIDIfAdminStatus, common.TrailingScalar)

		// slot -> has any admin-up port
		slots := make(map[int]bool)
		for idx, ifType := range ifTypes {
			if ifType != common.IfTypeGPON {
				continue
			}
			slot, ok := common.DecodeSlot(idx)
			if !ok {
				continue
			}
			if adminStatus[idx] == common.IfStatusUp {
				slots[slot] = true
			} else if _, seen := slots[slot]; !seen {
				slots[slot] = false
			}
		}

		pair := types.CounterPair{Installed: len(slots)}
		for _, active := range slots {
			if active {
				pair.Used++
			}
		}

		if pair.Installed == 0 {
			a.log.Warn().Str("address", address).Msg("Could not determine card count")
			return pair
		}

		a.log.Info().
			Str("address", address).
			Int("installed", pair.Installed).
			Int("active", pair.Used).
			Msg("Card status collected")

		return pair
	})
}

// PonPortStatus derives GPON port counts from the standard interface
// table (ifType 250, ifOperStatus 1 = up).
func (a *Adapter) PonPortStatus(ctx context.Context, address string) types.CounterPair {
	return common.Degrade(a.log, address, "pon_port", func() types.CounterPair {
		ifTypes := a.walk(ctx, address, common.OIDIfType, common.TrailingScalar)
		operStatus := a.walk(ctx, address, common.OIDIfOperStatus, common.TrailingScalar)
		if len(ifTypes) == 0 || len(operStatus) == 0 {
			a.log.Warn().Str("address", address).Msg("Could not get interface data")
			return types.CounterPair{}
		}

		pair := common.CountGponPorts(ifTypes, operStatus)

		a.log.Info().
			Str("address", address).
			Int("installed", pair.Installed).
			Int("up", pair.Used).
			Msg("PON port status collected")

		return pair
	})
}

// SubscriberUnitStatus walks the ONU state table: installed is the
// registered row count, online the rows in the logging, sync_mib or
// working state.
func (a *Adapter) SubscriberUnitStatus(ctx context.Context, address string) types.CounterPair {
	return common.Degrade(a.log, address, "subscriber_unit", func() types.CounterPair {
		statuses := a.walk(ctx, address, OIDOnuStatus, common.FullCompound)
		if len(statuses) == 0 {
			a.log.Warn().Str("address", address).Msg("Could not get ONU data")
			return types.CounterPair{}
		}

		pair := types.CounterPair{Installed: len(statuses)}
		for _, status := range statuses {
			if onlineStates[status] {
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
