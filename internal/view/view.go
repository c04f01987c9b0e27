package view

// Response is the envelope every API endpoint returns.
type Response[T any] struct {
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Request any    `json:"request,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateResponse builds the envelope. The request payload is echoed back on
// validation failures so callers can see what the server actually parsed.
func CreateResponse[T any](data T, err error, request any, message string) Response[T] {
	resp := Response[T]{
		Data:    data,
		Message: message,
		Request: request,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
