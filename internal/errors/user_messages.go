package errors

// User-friendly error messages
const (
	MsgPropertyNotFound   = "Property not found. It may have been removed from the listings."
	MsgAlreadySaved       = "This property is already in your saved list."
	MsgNotSaved           = "This property is not in your saved list."
	MsgInvalidParameters  = "The provided parameters are invalid. Please check your input and try again."
	MsgServiceUnavailable = "We're unable to retrieve listings right now. Please try again in a few minutes."
	MsgRateLimited        = "You're browsing too quickly! Please wait a moment and try again."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)
