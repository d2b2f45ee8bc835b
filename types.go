package oltfleet

// Re-export core types from the types sub-package so callers can use
// oltfleet.DeviceRecord, oltfleet.Transport, etc. without a second import.

import (
	"github.com/nanoncore/olt-fleet/types"
)

type (
	Vendor        = types.Vendor
	TransportKind = types.TransportKind
	PollerConfig  = types.PollerConfig
	Transport     = types.Transport
	VendorAdapter = types.VendorAdapter
	CounterPair   = types.CounterPair
	DeviceRecord  = types.DeviceRecord
	DeviceStatus  = types.DeviceStatus
	FleetSummary  = types.FleetSummary
)

const (
	VendorFiberHome = types.VendorFiberHome
	VendorHuawei    = types.VendorHuawei
	VendorZTE       = types.VendorZTE

	TransportGoSNMP  = types.TransportGoSNMP
	TransportNetSNMP = types.TransportNetSNMP

	StatusOK    = types.StatusOK
	StatusError = types.StatusError
)

// ErrUnreachable is re-exported for errors.Is checks at the call site.
var ErrUnreachable = types.ErrUnreachable
