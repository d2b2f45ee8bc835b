// Package huawei normalizes telemetry from Huawei SmartAX MA5800 OLTs.
package huawei

import (
	"context"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/nanoncore/olt-fleet/types"
	"github.com/nanoncore/olt-fleet/vendors/common"
)

// modelRegex matches the MA5800 model family in sysDescr,
// e.g. "MA5800-X7" or "MA5800-X17".
var modelRegex = regexp.MustCompile(`MA5800-[^\s]+`)

// Adapter implements types.VendorAdapter for Huawei SmartAX OLTs.
// Boards come from a dedicated slot-status table; PON ports from the
// standard interface table.
type Adapter struct {
	transport types.Transport
	log       zerolog.Logger
}

// NewAdapter creates a Huawei adapter over the given transport.
func NewAdapter(transport types.Transport, log zerolog.Logger) *Adapter {
	return &Adapter{
		transport: transport,
		log:       log.With().Str("vendor", string(types.VendorHuawei)).Logger(),
	}
}

// Vendor returns the vendor family.
func (a *Adapter) Vendor() types.Vendor {
	return types.VendorHuawei
}

// ParseModel extracts the hardware model from a raw sysDescr response.
// Falls back to the first token of the response value, then to Unknown.
func (a *Adapter) ParseModel(raw string) string {
	if raw == "" {
		return types.Unknown
	}
	if m := modelRegex.FindString(raw); m != "" {
		return m
	}
	if token := common.FirstToken(common.ScalarValue(raw)); token != "" {
		return token
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

// BoardStatus walks the slot-card operational status table: installed is
// the row count, used the rows in normal state.
func (a *Adapter) BoardStatus(ctx context.Context, address string) types.CounterPair {
	return common.Degrade(a.log, address, "board", func() types.CounterPair {
		statuses := a.walk(ctx, address, OIDBoardOperStatus, common.TrailingScalar)
		if len(statuses) == 0 {
			a.log.Warn().Str("address", address).Msg("Could not get board count")
			return types.CounterPair{}
		}

		pair := types.CounterPair{Installed: len(statuses)}
		for _, status := range statuses {
			if status == BoardStatusNormal {
				pair.Used++
			}
		}

		a.log.Info().
			Str("address", address).
			Int("installed", pair.Installed).
			Int("active", pair.Used).
			Msg("Board status collected")

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

// SubscriberUnitStatus walks the ONT run-status table: installed is the
// registered row count, online the rows with run status 1.
func (a *Adapter) SubscriberUnitStatus(ctx context.Context, address string) types.CounterPair {
	return common.Degrade(a.log, address, "subscriber_unit", func() types.CounterPair {
		statuses := a.walk(ctx, address, OIDOntRunStatus, common.FullCompound)
		if len(statuses) == 0 {
			a.log.Warn().Str("address", address).Msg("Could not get ONT data")
			return types.CounterPair{}
		}

		pair := types.CounterPair{Installed: len(statuses)}
		for _, status := range statuses {
			if status == OntStatusOnline {
				pair.Used++
			}
		}

		a.log.Info().
			Str("address", address).
			Int("installed", pair.Installed).
			Int("online", pair.Used).
			Msg("ONT status collected")

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
