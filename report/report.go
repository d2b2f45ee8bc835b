// Package report renders poll results for the operator: CSV and JSON
// exports plus a human-readable console summary. It contains no pipeline
// logic.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/nanoncore/olt-fleet/types"
)

// columns is the legacy export layout, one row per device.
var columns = []string{
	"ip", "sysname", "model",
	"board_installed", "board_used",
	"pon_port_installed", "pon_port_used",
	"onu_installed", "onu_online",
	"status", "error",
}

// WriteCSV writes records as CSV with a header row.
func WriteCSV(w io.Writer, records []types.DeviceRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Address, r.SystemName, r.Model,
			strconv.Itoa(r.Board.Installed), strconv.Itoa(r.Board.Used),
			strconv.Itoa(r.PonPort.Installed), strconv.Itoa(r.PonPort.Used),
			strconv.Itoa(r.SubscriberUnit.Installed), strconv.Itoa(r.SubscriberUnit.Used),
			string(r.Status), r.Error,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.Address, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes records as an indented JSON array of objects.
func WriteJSON(w io.Writer, records []types.DeviceRecord) error {
	if records == nil {
		records = []types.DeviceRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("writing JSON export: %w", err)
	}
	return nil
}

// WriteSummary renders the fleet summary as a console block.
func WriteSummary(w io.Writer, s types.FleetSummary) {
	line := "======================================================================"
	thin := "----------------------------------------------------------------------"

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Total OLT: %d\n", s.Total)
	fmt.Fprintf(w, "Success: %d\n", s.OK)
	fmt.Fprintf(w, "Failed: %d\n", s.Failed)
	fmt.Fprintln(w, thin)
	fmt.Fprintf(w, "Board Installed: %d\n", s.Board.Installed)
	fmt.Fprintf(w, "Board Used: %d\n", s.Board.Used)
	fmt.Fprintf(w, "PON Port Installed: %d\n", s.PonPort.Installed)
	fmt.Fprintf(w, "PON Port Used: %d\n", s.PonPort.Used)
	fmt.Fprintf(w, "ONU Installed: %d\n", s.SubscriberUnit.Installed)
	fmt.Fprintf(w, "ONU Online: %d\n", s.SubscriberUnit.Used)
	fmt.Fprintln(w, line)
}
