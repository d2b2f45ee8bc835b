// Command olt-fleet polls a list of OLTs and writes the inventory
// snapshot as CSV, JSON and a console summary. It is a thin wrapper: all
// pipeline logic lives in the library packages.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	oltfleet "github.com/nanoncore/olt-fleet"
	"github.com/nanoncore/olt-fleet/poller"
	"github.com/nanoncore/olt-fleet/report"
	"github.com/nanoncore/olt-fleet/types"
)

func main() {
	// Optional .env for credentials; flags win over env.
	_ = godotenv.Load()

	var (
		vendorFlag    = flag.String("vendor", envOr("OLT_VENDOR", string(types.VendorHuawei)), "vendor family: fiberhome, huawei or zte")
		targetsFlag   = flag.String("targets", envOr("OLT_TARGETS", "olt.txt"), "file with one device address per line")
		communityFlag = flag.String("community", envOr("SNMP_COMMUNITY", types.DefaultCommunity), "SNMP community string")
		versionFlag   = flag.String("snmp-version", envOr("SNMP_VERSION", types.DefaultVersion), "SNMP version")
		transportFlag = flag.String("transport", envOr("OLT_TRANSPORT", string(types.TransportGoSNMP)), "transport: gosnmp or netsnmp")
		timeoutFlag   = flag.Duration("timeout", types.DefaultTimeout, "per-call SNMP timeout")
		retriesFlag   = flag.Int("retries", types.DefaultRetries, "per-call SNMP retries")
		workersFlag   = flag.Int("workers", types.DefaultWorkers, "worker pool size")
		outDirFlag    = flag.String("out", "output", "output directory")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	targets, err := loadTargets(*targetsFlag)
	if err != nil {
		log.Fatal().Err(err).Str("file", *targetsFlag).Msg("Could not read target list")
	}
	if len(targets) == 0 {
		log.Fatal().Str("file", *targetsFlag).Msg("No valid device addresses in target list")
	}

	config := types.PollerConfig{
		Community: *communityFlag,
		Version:   *versionFlag,
		Timeout:   *timeoutFlag,
		Retries:   *retriesFlag,
		Workers:   *workersFlag,
	}.WithDefaults()

	transport, err := oltfleet.NewTransport(types.TransportKind(*transportFlag), config)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create transport")
	}

	adapter, err := oltfleet.NewVendorAdapter(types.Vendor(*vendorFlag), transport, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create vendor adapter")
	}

	collector := poller.NewCollector(transport, adapter, log)
	fleet := poller.NewFleet(collector, config.Workers, log)

	records, summary := fleet.Run(context.Background(), targets)

	if err := writeExports(*outDirFlag, records); err != nil {
		log.Fatal().Err(err).Msg("Could not write exports")
	}

	report.WriteSummary(os.Stdout, summary)
}

// loadTargets reads and filters the address list file.
func loadTargets(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return poller.ReadTargets(f)
}

// writeExports writes the CSV and JSON snapshots under
// <dir>/<date>/olt_data_<timestamp>.{csv,json}.
func writeExports(dir string, records []types.DeviceRecord) error {
	now := time.Now()
	outDir := filepath.Join(dir, now.Format("2006-01-02"))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	base := fmt.Sprintf("olt_data_%s", now.Format("20060102_150405"))

	csvFile, err := os.Create(filepath.Join(outDir, base+".csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()
	if err := report.WriteCSV(csvFile, records); err != nil {
		return err
	}

	jsonFile, err := os.Create(filepath.Join(outDir, base+".json"))
	if err != nil {
		return err
	}
	defer jsonFile.Close()
	return report.WriteJSON(jsonFile, records)
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
