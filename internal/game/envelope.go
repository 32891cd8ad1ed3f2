package game

// Response codes carried inside the JSON envelope. Refusals and missing
// sessions ride on a 200 transport status so clients switch on the
// body; terminal and error envelopes set the matching HTTP status too.
const (
	CodeOK       = 200
	CodeFinished = 201
	CodeRefused  = 403
	CodeNotFound = 404
	CodeError    = 500
)

// Envelope is the uniform response body for all game actions
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
}

// OK builds a success envelope
func OK(message string, result interface{}) Envelope {
	return Envelope{Code: CodeOK, Message: message, Result: result}
}

// Finished builds a terminal envelope carrying the settled result
func Finished(message string, result interface{}) Envelope {
	return Envelope{Code: CodeFinished, Message: message, Result: result}
}

// Refused builds a rejection envelope
func Refused(message string, result interface{}) Envelope {
	return Envelope{Code: CodeRefused, Message: message, Result: result}
}

// NotFound builds a missing-session envelope
func NotFound(message string) Envelope {
	return Envelope{Code: CodeNotFound, Message: message}
}
