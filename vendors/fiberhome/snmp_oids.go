package fiberhome

// FiberHome AN6000 MIB OIDs (enterprise subtree 1.3.6.1.4.1.5875)

const (
	// Enterprise OID prefix for FiberHome
	OIDFiberHomeEnterprise = "1.3.6.1.4.1.5875"

	// Slot card status table, one row per present card
	// Status: 1 = active/normal
	OIDCardStatus = "1.3.6.1.4.1.5875.800.3.9.2.1.1.5"

	// Slot card type table, fallback when the status table is empty
	OIDCardType = "1.3.6.1.4.1.5875.800.3.9.2.1.1.2"

	// PON port type table; value 1 marks a PON port
	OIDPonPortType = "1.3.6.1.4.1.5875.800.3.9.3.4.1.1"

	// PON port name table; configured ports carry a "PON" name
	OIDPonPortName = "1.3.6.1.4.1.5875.800.3.9.3.4.1.2"

	// ONU status table
	// Status: 0=deregistered, 1=online, 2=offline, 3=unknown
	OIDOnuStatus = "1.3.6.1.4.1.5875.800.3.10.1.1.11"
)

// Status sentinel values.
const (
	CardStatusActive = "1"
	PonPortTypePON   = "1"

	// OnuStatusDeregistered rows are excluded from the installed count;
	// every other status (online, offline, unknown) counts as installed.
	OnuStatusDeregistered = "0"
	OnuStatusOnline       = "1"
)
