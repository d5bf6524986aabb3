package model

// RemoteError is an application error reported in-band by the server via the
// "error" field of an otherwise successful response.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}
