package http

import (
	"net/http"
	"time"

	"github.com/prepdeck/prepdeck/pkg/catalogsdk"
	"github.com/prepdeck/prepdeck/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Liveness Probe Endpoint
//	@Description	Reports that the catalog process is up, along with its uptime and build version
//	@Description	Answers 200 OK as long as the process can serve requests; dependencies are not consulted
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	catalogsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Liveness deliberately skips the store; a wedged database must not
		// get the process restarted.
		httpx.WriteJSON(w, http.StatusOK, catalogsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
		})
	}
}
