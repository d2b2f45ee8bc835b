package common

// Standard MIB-II OIDs (RFC 1213) shared by every vendor family.
const (
	OIDSysDescr = "1.3.6.1.2.1.1.1.0" // System description
	OIDSysName  = "1.3.6.1.2.1.1.5.0" // System name

	OIDIfDescr       = "1.3.6.1.2.1.2.2.1.2" // Interface description
	OIDIfType        = "1.3.6.1.2.1.2.2.1.3" // Interface type (IANAifType)
	OIDIfAdminStatus = "1.3.6.1.2.1.2.2.1.7" // Admin status (1=up, 2=down)
	OIDIfOperStatus  = "1.3.6.1.2.1.2.2.1.8" // Oper status (1=up, 2=down)
)

// Sentinel values of the standard interface table.
const (
	// IfTypeGPON is the IANAifType for a GPON port
	IfTypeGPON = "250"

	// IfStatusUp marks an interface as up in both admin and oper status
	IfStatusUp = "1"
)
