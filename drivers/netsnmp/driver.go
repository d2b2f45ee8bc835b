// Package netsnmp implements the query transport by shelling out to the
// net-snmp command line tools (snmpget/snmpwalk), matching deployments
// where the tools are already trusted and tuned.
package netsnmp

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/nanoncore/olt-fleet/types"
)

// Transport implements types.Transport by invoking snmpwalk or snmpget.
// Stateless across calls and safe for concurrent use.
type Transport struct {
	config types.PollerConfig
}

// NewTransport creates a net-snmp exec transport.
func NewTransport(config types.PollerConfig) *Transport {
	return &Transport{config: config.WithDefaults()}
}

// Query runs snmpwalk (walk=true) or snmpget (walk=false) against the
// device. The process is bounded by the configured timeout plus a grace
// period; timeout, non-zero exit or a start failure all map to
// types.ErrUnreachable.
func (t *Transport) Query(ctx context.Context, address, oid string, walk bool) (string, error) {
	if address == "" {
		return "", fmt.Errorf("%w: empty address", types.ErrUnreachable)
	}

	tool := "snmpget"
	if walk {
		tool = "snmpwalk"
	}

	// Grace period past the protocol-level timeout so the tool's own
	// retries get a chance to finish before the process is killed.
	ctx, cancel := context.WithTimeout(ctx, t.config.Timeout+10*time.Second)
	defer cancel()

	seconds := int(t.config.Timeout / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	cmd := exec.CommandContext(ctx, tool,
		"-v", t.config.Version,
		"-c", t.config.Community,
		"-t", strconv.Itoa(seconds),
		"-r", strconv.Itoa(t.config.Retries),
		address,
		oid,
	)

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: %s %s: %v", types.ErrUnreachable, tool, oid, err)
	}

	return string(out), nil
}

// Ensure Transport satisfies the contract
var _ types.Transport = (*Transport)(nil)
