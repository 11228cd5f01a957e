package cli

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrHistoryStoreUnavailable  = "history store unavailable"
	ErrLookupServiceUnavailable = "lookup service unavailable"
	ErrQueryRequired            = "--query required"
)

// Messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoHistoryRecorded        = "No history recorded yet."
	MsgHistoryCleared           = "History cleared."
	MsgSessionCleared           = "Cleared."
	MsgNoContactLoaded          = "No contact selected."
)
