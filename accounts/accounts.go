package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"fairway/configs"
	"fairway/globals"
	"fairway/models"
	"fairway/utils"
	"fairway/validate"
)

// GetAccounts returns the client's ordered account list plus quota state.
// Until the config document carries an accounts mapping the response flags
// loading, which is distinct from an empty list.
func GetAccounts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	clientID := r.Context().Value(globals.UserIDKey).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snap, err := configs.Get(ctx, clientID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if snap.Loading() {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"loading": true})
		return
	}

	items := snap.Items()
	remaining := models.MaxAccounts - len(items)
	if remaining < 0 {
		remaining = 0
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"loading":        false,
		"accounts":       items,
		"remainingQuota": remaining,
	})
}

// PutAccount creates or fully overwrites one account at accounts.<id>. The
// account id is the map key and never part of the written payload.
func PutAccount(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	clientID := r.Context().Value(globals.UserIDKey).(string)
	accountID := ps.ByName("accountId")

	var rec models.AccountRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	rec, err := validate.Account(rec)
	if err != nil {
		var ferr *validate.FieldError
		if errors.As(err, &ferr) {
			utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"error": ferr.Message, "field": ferr.Field})
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snap, err := configs.Get(ctx, clientID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	_, exists := snap.Config.Accounts[accountID]
	if !exists && len(snap.Config.Accounts) >= models.MaxAccounts {
		utils.RespondWithError(w, http.StatusConflict, "Account quota reached")
		return
	}

	if err := configs.SetAccount(ctx, clientID, accountID, rec); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"accountId": accountID})
}

// DeleteAccount removes one account field. Unknown ids succeed; the field
// deletion is idempotent.
func DeleteAccount(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	clientID := r.Context().Value(globals.UserIDKey).(string)
	accountID := ps.ByName("accountId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := configs.DeleteAccount(ctx, clientID, accountID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": accountID})
}

// BulkDelete applies independent field deletions to every listed id. Items
// fail or succeed on their own; there is no rollback across the batch.
func BulkDelete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	clientID := r.Context().Value(globals.UserIDKey).(string)

	var input struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	for _, accountID := range input.IDs {
		if err := configs.DeleteAccount(ctx, clientID, accountID); err != nil {
			log.Printf("bulk delete %s for %s failed: %v", accountID, clientID, err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"requested": len(input.IDs)})
}
