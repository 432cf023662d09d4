package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"fairway/configs"
	"fairway/db"
	"fairway/globals"
	"fairway/models"
	"fairway/rdx"
	"fairway/utils"
	"fairway/validate"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerHandler(w http.ResponseWriter, r *http.Request) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if !validate.EmailValid(input.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if len(input.Password) < 8 {
		utils.RespondWithError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := db.UserCollection.CountDocuments(ctx, bson.M{"email": input.Email})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusConflict, "Account already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	// The client id is the login email; the config document is keyed by it.
	user := models.User{
		UserID:    input.Email,
		Email:     input.Email,
		Password:  string(hash),
		Role:      []string{"client"},
		CreatedAt: time.Now(),
	}
	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	if _, err := configs.EnsureConfig(ctx, user.UserID); err != nil {
		log.Printf("Failed to seed config for %s: %v", user.UserID, err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"userid": user.UserID})
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var storedUser models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(input.Email)}).Decode(&storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	tokenString, err := generateAccessToken(storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate refresh token")
		return
	}

	_, err = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": storedUser.UserID},
		bson.M{"$set": bson.M{
			"refreshtoken": hashToken(refreshToken),
			"refreshexp":   time.Now().Add(refreshTokenTTL),
			"last_login":   time.Now(),
		}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store refresh token")
		return
	}

	if err := rdx.RdxSetWithTTL("auth:token:"+storedUser.UserID, tokenString, accessTokenTTL); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token":        tokenString,
		"refreshToken": refreshToken,
		"userid":       storedUser.UserID,
	})
}

func refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID       string `json:"userid"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var storedUser models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": input.UserID}).Decode(&storedUser)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unknown user")
		return
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if storedUser.RefreshToken != hashToken(input.RefreshToken) || time.Now().After(storedUser.RefreshExpiry) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Refresh token expired or invalid")
		return
	}

	tokenString, err := generateAccessToken(storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	if err := rdx.RdxSetWithTTL("auth:token:"+storedUser.UserID, tokenString, accessTokenTTL); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"token": tokenString})
}

func logoutHandler(w http.ResponseWriter, r *http.Request) {
	// The session being invalidated is always the caller's own; the
	// identity comes from the validated token, never the request body.
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing identity")
		return
	}

	if err := rdx.RdxDel("auth:token:" + userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to invalidate session")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Logged out successfully"})
}
