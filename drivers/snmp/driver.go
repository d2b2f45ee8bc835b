// Package snmp implements the query transport on top of the gosnmp
// library. Responses are rendered into net-snmp style text lines so that
// all transports feed the same parser.
package snmp

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosnmp/gosnmp"

	"github.com/nanoncore/olt-fleet/types"
)

// Transport implements types.Transport using gosnmp. It is stateless
// across calls: every query opens its own short-lived connection, so one
// transport value can serve the whole fleet concurrently.
type Transport struct {
	config types.PollerConfig
}

// NewTransport creates a gosnmp-backed transport.
func NewTransport(config types.PollerConfig) *Transport {
	return &Transport{config: config.WithDefaults()}
}

// Query issues a single get or walk against one device. Every transport
// fault is reported as types.ErrUnreachable.
func (t *Transport) Query(ctx context.Context, address, oid string, walk bool) (string, error) {
	if address == "" {
		return "", fmt.Errorf("%w: empty address", types.ErrUnreachable)
	}

	client := t.newClient(address)
	if err := client.Connect(); err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrUnreachable, err)
	}
	defer client.Conn.Close()

	var sb strings.Builder

	if walk {
		err := client.Walk(oid, func(pdu gosnmp.SnmpPDU) error {
			writeLine(&sb, pdu)
			return nil
		})
		if err != nil {
			return "", fmt.Errorf("%w: walk %s: %v", types.ErrUnreachable, oid, err)
		}
		return sb.String(), nil
	}

	result, err := client.Get([]string{oid})
	if err != nil {
		return "", fmt.Errorf("%w: get %s: %v", types.ErrUnreachable, oid, err)
	}
	for _, pdu := range result.Variables {
		if pdu.Type == gosnmp.NoSuchObject || pdu.Type == gosnmp.NoSuchInstance {
			continue
		}
		writeLine(&sb, pdu)
	}

	return sb.String(), nil
}

// newClient builds a per-query gosnmp client from the poller config.
func (t *Transport) newClient(address string) *gosnmp.GoSNMP {
	version := gosnmp.Version2c
	switch t.config.Version {
	case "1":
		version = gosnmp.Version1
	case "3":
		version = gosnmp.Version3
	}

	return &gosnmp.GoSNMP{
		Target:    address,
		Port:      uint16(t.config.Port), //nolint:gosec // validated by WithDefaults
		Community: t.config.Community,
		Version:   version,
		Timeout:   t.config.Timeout,
		Retries:   t.config.Retries,
	}
}

// writeLine renders one PDU as "<oid> = TYPE: value", matching the
// net-snmp tools the parser was written against.
func writeLine(sb *strings.Builder, pdu gosnmp.SnmpPDU) {
	name := strings.TrimPrefix(pdu.Name, ".")

	switch pdu.Type {
	case gosnmp.OctetString:
		value := pdu.Value
		if b, ok := pdu.Value.([]byte); ok {
			value = string(b)
		}
		fmt.Fprintf(sb, "%s = STRING: \"%v\"\n", name, value)
	case gosnmp.Integer:
		fmt.Fprintf(sb, "%s = INTEGER: %v\n", name, pdu.Value)
	case gosnmp.Counter32, gosnmp.Counter64:
		fmt.Fprintf(sb, "%s = Counter64: %v\n", name, pdu.Value)
	case gosnmp.Gauge32:
		fmt.Fprintf(sb, "%s = Gauge32: %v\n", name, pdu.Value)
	case gosnmp.TimeTicks:
		fmt.Fprintf(sb, "%s = Timeticks: %v\n", name, pdu.Value)
	default:
		fmt.Fprintf(sb, "%s = %v\n", name, pdu.Value)
	}
}

// Ensure Transport satisfies the contract
var _ types.Transport = (*Transport)(nil)
