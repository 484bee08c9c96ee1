package dtos

// APIResponse is the envelope every endpoint writes.
type APIResponse struct {
	Status       string            `json:"status"`
	Message      string            `json:"message"`
	ResponseTime string            `json:"response_time"`
	Errors       map[string]string `json:"errors,omitempty"`
	Data         any               `json:"data,omitempty"`
}
