package zte

// ZTE ZXA10 C600/C620 MIB OIDs (enterprise subtree 1.3.6.1.4.1.3902.1082)
// Tested against ZXA10 C600 V1.2.2

const (
	// Enterprise OID prefix for the C600 platform
	OIDZTEEnterprise = "1.3.6.1.4.1.3902.1082"

	// ONU state table
	// Index: <ifIndex>.<onuID> where ifIndex is the packed PON port index
	OIDOnuStatus = "1.3.6.1.4.1.3902.1082.500.10.2.3.8.1.4"

	// ONU name table, same index layout
	OIDOnuName = "1.3.6.1.4.1.3902.1082.500.10.2.3.3.1.2"
)

// ONU state codes of the C600 state table.
const (
	OnuStateLogging    = "1" // authenticating against the OLT
	OnuStateLOS        = "2" // loss of signal
	OnuStateSyncMib    = "3" // MIB synchronization in progress
	OnuStateWorking    = "4" // fully online
	OnuStateDyingGasp  = "5" // power loss notification
	OnuStateAuthFailed = "6"
	OnuStateOffline    = "7"
)

// onlineStates are the codes counted as online: not yet failed or
// deregistered, deliberately broader than OnuStateWorking alone. The
// transitional codes (logging, sync_mib) may overlap with error-adjacent
// churn; kept as-is because downstream totals depend on it.
var onlineStates = map[string]bool{
	OnuStateLogging: true,
	OnuStateSyncMib: true,
	OnuStateWorking: true,
}

// The packed ifIndex encodes shelf.rack.slot.port one byte each, e.g.
// board 1 pon 1 = 285278465 (0x11010101), board 2 pon 1 = 285278721
// (0x11010201). The slot lives in the second byte from the right.
