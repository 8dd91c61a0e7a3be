package srsclient

import "fmt"

// TransportError covers non-2xx responses, unreachable servers and bodies
// that are not JSON.
type TransportError struct {
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("Server returned %d: %s", e.Status, e.Body)
	}
	if e.Err == nil {
		return "transport error"
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ContractError is a 2xx response missing what the caller needs.
type ContractError struct {
	Reason string
}

func (e *ContractError) Error() string {
	return e.Reason
}
