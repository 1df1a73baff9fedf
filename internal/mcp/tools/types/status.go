package types

// Status reports provider availability and server liveness.
type Status struct {
	ProviderAvailable bool   `json:"provider_available"`
	ServerStatus      string `json:"server_status"`
	ServerVersion     string `json:"server_version"`
	Timestamp         string `json:"timestamp"`
}
