package huawei

// Huawei SmartAX MIB OIDs
// Based on legacy production code and Huawei documentation

const (
	// Enterprise OID prefix for Huawei
	OIDHuaweiEnterprise = "1.3.6.1.4.1.2011"

	// Board operational status table, one row per slot card
	// Status: 0=normal, 1=fault, 2=offline; any row counts as installed
	OIDBoardOperStatus = "1.3.6.1.4.1.2011.6.3.3.2.1.7"

	// ONT run status table
	// Index: <portIndex>.<onuIndex>, status: 0=offline, 1=online
	OIDOntRunStatus = "1.3.6.1.4.1.2011.6.128.1.1.2.46.1.15"
)

// Status sentinel values.
const (
	// BoardStatusNormal marks a slot card as operationally active
	BoardStatusNormal = "0"

	// OntStatusOnline marks an ONT as online
	OntStatusOnline = "1"
)
