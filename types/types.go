package types

import (
	"context"
	"errors"
	"time"
)

// Vendor represents the OLT vendor family
type Vendor string

const (
	VendorFiberHome Vendor = "fiberhome" // AN6000 series
	VendorHuawei    Vendor = "huawei"    // SmartAX MA5800 series
	VendorZTE       Vendor = "zte"       // ZXA10 C600/C620 series
)

// TransportKind selects how SNMP queries reach the device
type TransportKind string

const (
	// TransportGoSNMP uses the gosnmp library directly
	TransportGoSNMP TransportKind = "gosnmp"

	// TransportNetSNMP shells out to the net-snmp snmpget/snmpwalk binaries
	TransportNetSNMP TransportKind = "netsnmp"
)

// ErrUnreachable is returned by a Transport for every fault: timeout,
// network error, non-zero exit of the underlying tool. Callers are not
// expected to distinguish further.
var ErrUnreachable = errors.New("timeout/unreachable")

// Unknown is the fallback for identity fields that could not be resolved.
const Unknown = "Unknown"

// PollerConfig contains the tunables passed through to the transport and
// the fleet poller. Zero values resolve to the defaults expected on
// typical OLT deployments.
type PollerConfig struct {
	// Community is the SNMP community string
	Community string

	// Version is the SNMP version ("1", "2c" or "3")
	Version string

	// Port is the SNMP port (default 161)
	Port int

	// Timeout bounds a single get or walk call
	Timeout time.Duration

	// Retries is the per-call retry count of the transport itself
	Retries int

	// Workers is the size of the fleet worker pool
	Workers int
}

// Defaults for PollerConfig fields left at their zero value.
const (
	DefaultCommunity = "public"
	DefaultVersion   = "2c"
	DefaultPort      = 161
	DefaultTimeout   = 30 * time.Second
	DefaultRetries   = 2
	DefaultWorkers   = 5
)

// WithDefaults returns a copy of the config with zero values replaced by
// the defaults above.
func (c PollerConfig) WithDefaults() PollerConfig {
	if c.Community == "" {
		c.Community = DefaultCommunity
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Port <= 0 || c.Port > 65535 {
		c.Port = DefaultPort
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Retries < 0 {
		c.Retries = DefaultRetries
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	return c
}

// Transport issues a single SNMP query against one device and one OID.
//
// walk=true performs a table scan returning zero or more lines, one per
// table row; walk=false performs a single-object get returning at most one
// line. The raw net-snmp style text ("<oid> = TYPE: value") is returned
// unparsed. Every transport fault is reported as ErrUnreachable; the call
// never blocks past the configured timeout. Implementations are stateless
// across calls and safe for concurrent use.
type Transport interface {
	Query(ctx context.Context, address, oid string, walk bool) (string, error)
}

// VendorAdapter normalizes one vendor family's telemetry into the common
// metric schema.
//
// The counting methods perform their own walks through the transport and
// never return an error: any internal fault (missing table, unparsable
// value) degrades the result to a zero CounterPair. The Parse* methods are
// pure functions over raw single-get response text.
type VendorAdapter interface {
	// Vendor returns the vendor family this adapter handles
	Vendor() Vendor

	// ParseModel extracts the hardware model from a raw sysDescr response
	ParseModel(raw string) string

	// ParseSystemName extracts the system name from a raw sysName response
	ParseSystemName(raw string) string

	// BoardStatus derives installed/active board counts
	BoardStatus(ctx context.Context, address string) CounterPair

	// PonPortStatus derives installed/up PON port counts
	PonPortStatus(ctx context.Context, address string) CounterPair

	// SubscriberUnitStatus derives registered/online ONU counts
	SubscriberUnitStatus(ctx context.Context, address string) CounterPair
}
