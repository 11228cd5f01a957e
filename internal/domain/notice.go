package domain

// User-visible notice texts.
const (
	TitleError            = "Error"
	TitlePermissionDenied = "Permission Denied"

	MsgInvalidNumber    = "Please enter a valid phone number with the appropriate country code!"
	MsgCheckConnection  = "Please check your internet connection!"
	MsgContactsRequired = `Please accept the "READ CONTACTS" permissions in order to use the "LOAD" function`
)

// Notice is a user-visible message attached to the state produced by a transition.
type Notice struct {
	Kind    ErrorKind
	Title   string
	Message string
}

// ValidationNotice is shown when the query is too short to submit.
func ValidationNotice() *Notice {
	return &Notice{Kind: KindValidation, Title: TitleError, Message: MsgInvalidNumber}
}

// TransportNotice is shown when the provider could not be reached.
func TransportNotice() *Notice {
	return &Notice{Kind: KindTransport, Title: TitleError, Message: MsgCheckConnection}
}

// SemanticNotice is shown when the provider reports the number as not valid.
func SemanticNotice() *Notice {
	return &Notice{Kind: KindSemanticInvalid, Title: TitleError, Message: MsgInvalidNumber}
}

// PermissionNotice is shown when contact import was refused.
func PermissionNotice(message string) *Notice {
	if message == "" {
		message = MsgContactsRequired
	}
	return &Notice{Kind: KindPermissionDenied, Title: TitlePermissionDenied, Message: message}
}
