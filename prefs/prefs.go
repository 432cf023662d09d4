package prefs

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"fairway/configs"
	"fairway/globals"
	"fairway/utils"
	"fairway/validate"
)

// GetPreferences returns the client's notification preferences, seeding the
// default document on first read.
func GetPreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	clientID := r.Context().Value(globals.UserIDKey).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := configs.EnsureConfig(ctx, clientID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	snap, err := configs.Get(ctx, clientID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, snap.Config.Preferences)
}

// UpdatePreference writes one whitelisted notification field. Address and
// phone values are validated and canonicalized before the write.
func UpdatePreference(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	clientID := r.Context().Value(globals.UserIDKey).(string)
	field := ps.ByName("field")

	var update struct {
		Value any `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	switch field {
	case "email.address":
		s, ok := update.Value.(string)
		if !ok || (s != "" && !validate.EmailValid(s)) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid email address")
			return
		}
		update.Value = s
	case "sms.phone":
		s, ok := update.Value.(string)
		if !ok {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid phone number")
			return
		}
		canonical, err := validate.CanonicalPhone(s)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		update.Value = canonical
	case "email.updatesEnabled", "sms.updatesEnabled":
		if _, ok := update.Value.(bool); !ok {
			utils.RespondWithError(w, http.StatusBadRequest, "Expected a boolean value")
			return
		}
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid preference field")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := configs.SetPreference(ctx, clientID, field, update.Value); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update preference")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status": "success",
		"field":  field,
		"value":  update.Value,
	})
}
