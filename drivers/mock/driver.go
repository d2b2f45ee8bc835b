// Package mock implements a scripted transport for tests and simulation.
// It answers queries from canned response text without touching the
// network.
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/nanoncore/olt-fleet/types"
)

// Transport implements types.Transport from an in-memory script. Devices
// not present in the script are unreachable; known devices answer unknown
// OIDs with empty text, which the parser treats as an empty table. Safe
// for concurrent use.
type Transport struct {
	mu      sync.RWMutex
	devices map[string]map[string]string
	queries map[string]int
}

// NewTransport creates an empty scripted transport.
func NewTransport() *Transport {
	return &Transport{
		devices: make(map[string]map[string]string),
		queries: make(map[string]int),
	}
}

// AddDevice registers a reachable device with its OID -> raw response
// script. Registering with a nil or empty script still makes the device
// answer the reachability probe (with empty text).
func (t *Transport) AddDevice(address string, responses map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	script := make(map[string]string, len(responses))
	for oid, raw := range responses {
		script[oid] = raw
	}
	t.devices[address] = script
}

// SetResponse sets or replaces a single scripted response.
func (t *Transport) SetResponse(address, oid, raw string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.devices[address] == nil {
		t.devices[address] = make(map[string]string)
	}
	t.devices[address][oid] = raw
}

// Query answers from the script.
func (t *Transport) Query(_ context.Context, address, oid string, _ bool) (string, error) {
	t.mu.Lock()
	t.queries[address]++
	script, reachable := t.devices[address]
	raw := script[oid]
	t.mu.Unlock()

	if !reachable {
		return "", fmt.Errorf("%w: %s", types.ErrUnreachable, address)
	}
	return raw, nil
}

// QueryCount returns how many queries a device has received.
func (t *Transport) QueryCount(address string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.queries[address]
}

// Ensure Transport satisfies the contract
var _ types.Transport = (*Transport)(nil)
