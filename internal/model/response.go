package model

// Response is the common API envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewSuccessResponse builds a success envelope with optional payload
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// NewErrorResponse builds an error envelope; detail is optional
// context safe to show the caller
func NewErrorResponse(message, detail string) Response {
	return Response{Success: false, Message: message, Error: detail}
}
