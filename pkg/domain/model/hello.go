package model

// HelloResponse is the payload of the JSON hello endpoint
type HelloResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
