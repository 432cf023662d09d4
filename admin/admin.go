package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"fairway/configs"
	"fairway/utils"
)

// GetAllClients serves the privileged all-clients view. Reachable only
// through the admin allow-list middleware.
func GetAllClients(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	clients, err := configs.All(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"clients": clients})
}
