package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string            `json:"message,omitempty"` // short message for humans
	Data    any               `json:"data"`              // actual payload, null on errors
	Error   string            `json:"error,omitempty"`   // error detail (if any)
	Fields  map[string]string `json:"fields,omitempty"`  // per-field validation errors
}
