package types

import "encoding/json"

// DeviceStatus is the outcome of polling one device
type DeviceStatus string

const (
	StatusOK    DeviceStatus = "OK"
	StatusError DeviceStatus = "ERROR"
)

// CounterPair is an installed/used count for one metric group. For
// subscriber units "used" means online. used <= installed is expected but
// not enforced; the adapters report whatever the device tables say.
type CounterPair struct {
	Installed int
	Used      int
}

// IsZero reports whether both counts are zero.
func (p CounterPair) IsZero() bool {
	return p.Installed == 0 && p.Used == 0
}

// Add returns the element-wise sum of two pairs.
func (p CounterPair) Add(o CounterPair) CounterPair {
	return CounterPair{Installed: p.Installed + o.Installed, Used: p.Used + o.Used}
}

// DeviceRecord is the normalized result for one polled device. It is
// created zeroed, filled by the device collector, and read-only once
// returned.
type DeviceRecord struct {
	// Address is the management IP/hostname, unique within a run
	Address string

	// SystemName and Model are best-effort identity strings
	SystemName string
	Model      string

	// Board counts slot cards: installed vs. operationally active
	Board CounterPair

	// PonPort counts GPON interfaces: installed vs. link up
	PonPort CounterPair

	// SubscriberUnit counts ONUs: registered vs. online
	SubscriberUnit CounterPair

	// Status is OK iff the device answered the reachability probe
	Status DeviceStatus

	// Error holds a human-readable reason, non-empty iff Status is ERROR
	Error string
}

// recordJSON flattens the counter pairs into the legacy column names used
// by the CSV/JSON exports.
type recordJSON struct {
	Address          string       `json:"ip"`
	SystemName       string       `json:"sysname"`
	Model            string       `json:"model"`
	BoardInstalled   int          `json:"board_installed"`
	BoardUsed        int          `json:"board_used"`
	PonPortInstalled int          `json:"pon_port_installed"`
	PonPortUsed      int          `json:"pon_port_used"`
	SubscriberTotal  int          `json:"onu_installed"`
	SubscriberOnline int          `json:"onu_online"`
	Status           DeviceStatus `json:"status"`
	Error            string       `json:"error"`
}

// MarshalJSON emits the flat legacy column layout.
func (r DeviceRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Address:          r.Address,
		SystemName:       r.SystemName,
		Model:            r.Model,
		BoardInstalled:   r.Board.Installed,
		BoardUsed:        r.Board.Used,
		PonPortInstalled: r.PonPort.Installed,
		PonPortUsed:      r.PonPort.Used,
		SubscriberTotal:  r.SubscriberUnit.Installed,
		SubscriberOnline: r.SubscriberUnit.Used,
		Status:           r.Status,
		Error:            r.Error,
	})
}

// FleetSummary is the reduction of a run: device counts by status plus
// column-wise sums of every numeric field over OK records only.
type FleetSummary struct {
	Total  int
	OK     int
	Failed int

	Board          CounterPair
	PonPort        CounterPair
	SubscriberUnit CounterPair
}
