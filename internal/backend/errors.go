package backend

import "fmt"

// RequestError covers transport failures and non-success HTTP statuses from
// the recommendation backend. Status is 0 when the request never got a
// response.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend request failed: %s", e.Message)
	}
	return fmt.Sprintf("backend response status %d: %s", e.Status, e.Message)
}

// SchemaError reports a response body that does not match the operation's
// declared shape.
type SchemaError struct {
	Operation string
	Err       error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: unexpected response shape: %v", e.Operation, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
