// Package oltfleet assembles the OLT polling pipeline: a transport, one
// vendor adapter per vendor family, and the construction helpers wiring
// them together.
package oltfleet

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nanoncore/olt-fleet/drivers/netsnmp"
	"github.com/nanoncore/olt-fleet/drivers/snmp"
	"github.com/nanoncore/olt-fleet/types"
	"github.com/nanoncore/olt-fleet/vendors/fiberhome"
	"github.com/nanoncore/olt-fleet/vendors/huawei"
	"github.com/nanoncore/olt-fleet/vendors/zte"
)

// NewTransport creates a query transport of the given kind. An empty
// kind selects the gosnmp transport.
func NewTransport(kind types.TransportKind, config types.PollerConfig) (types.Transport, error) {
	switch kind {
	case types.TransportGoSNMP, "":
		return snmp.NewTransport(config), nil
	case types.TransportNetSNMP:
		return netsnmp.NewTransport(config), nil
	default:
		return nil, fmt.Errorf("unsupported transport: %s", kind)
	}
}

// NewVendorAdapter creates the adapter for a vendor family over the
// given transport.
func NewVendorAdapter(vendor types.Vendor, transport types.Transport, log zerolog.Logger) (types.VendorAdapter, error) {
	switch vendor {
	case types.VendorFiberHome:
		return fiberhome.NewAdapter(transport, log), nil
	case types.VendorHuawei:
		return huawei.NewAdapter(transport, log), nil
	case types.VendorZTE:
		return zte.NewAdapter(transport, log), nil
	default:
		return nil, fmt.Errorf("unsupported vendor: %s", vendor)
	}
}

// SupportedVendors returns the vendor families with an adapter.
func SupportedVendors() []types.Vendor {
	return []types.Vendor{
		types.VendorFiberHome,
		types.VendorHuawei,
		types.VendorZTE,
	}
}
