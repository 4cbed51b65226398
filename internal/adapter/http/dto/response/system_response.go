package response

import "aurora_motors/internal/usecase"

const (
	valueSet    = "set"
	valueNotSet = "not set"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type SeedResponse struct {
	Inserted int `json:"inserted"`
}

// DiagnosticsResponse is the /test body. DatabaseURL and DatabaseName are
// null while no store is configured.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func FromDiagnostics(r usecase.DiagnosticsReport) DiagnosticsResponse {
	res := DiagnosticsResponse{
		Backend:          r.Backend,
		Database:         r.Database,
		ConnectionStatus: r.ConnectionStatus,
		Collections:      r.Collections,
	}
	if res.Collections == nil {
		res.Collections = []string{}
	}
	if !r.Configured {
		return res
	}

	url := valueNotSet
	if r.DatabaseURLSet {
		url = valueSet
	}
	res.DatabaseURL = &url

	name := r.DatabaseName
	if name == "" {
		name = valueNotSet
	}
	res.DatabaseName = &name
	return res
}
