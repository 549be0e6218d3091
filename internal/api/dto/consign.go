package dto

// Responses for the consignment intake endpoint. The request body is decoded
// as a generic map so fields outside the required schema survive into the
// stored payload; see domain.ParseSubmission.

type ConsignDetails struct {
	EmailSent     bool `json:"emailSent"`
	DatabaseSaved bool `json:"databaseSaved"`
	HasErrors     bool `json:"hasErrors"`
}

type ConsignResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Details ConsignDetails `json:"details"`
}

type RateLimitedResponse struct {
	Error string `json:"error"`
	// ResetTime is Unix milliseconds, for client-side backoff.
	ResetTime int64 `json:"resetTime"`
}

type NotConfiguredResponse struct {
	Error        string `json:"error"`
	Message      string `json:"message"`
	ConfigureURL string `json:"configureUrl"`
}
