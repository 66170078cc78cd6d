package domain

import "github.com/m-mizutani/goerr/v2"

// Each sentinel carries an ID so Is() matches wrapped errors, which compare
// by ID rather than pointer.
var (
	ErrAuthentication = goerr.New("authentication failed", goerr.ID("authentication"))
	ErrAPIRequest     = goerr.New("API request failed", goerr.ID("api_request"))
	ErrConfiguration  = goerr.New("configuration error", goerr.ID("configuration"))

	// Analysis errors. These messages are surfaced verbatim as the error
	// payload of an analysis call, so changing them changes the API.
	ErrInvalidInput       = goerr.New("missing required parameters", goerr.ID("invalid_input"))
	ErrAccessVerification = goerr.New("repository access verification failed", goerr.ID("access_verification"))
	ErrPipelineFetch      = goerr.New("failed to fetch pipeline data", goerr.ID("pipeline_fetch"))
	ErrNoRuns             = goerr.New("no pipeline runs found for the specified criteria", goerr.ID("no_runs"))
	ErrTimestampFormat    = goerr.New("invalid timestamp in provider response", goerr.ID("timestamp_format"))
)
