package restapi

import (
	"net/http"
	"time"

	"penguins.dashboard/internal/models"
)

// currentTimeHandler writes a JSON response with information about the current time.
func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(models.NewCurrentTimeModel(time.Now())))
}
