package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"pharmahub/middleware"
	"pharmahub/models"
	"pharmahub/rdx"
	"pharmahub/stores"
	"pharmahub/utils"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

type API struct {
	Users stores.UserStore
}

// Register creates a user account and issues a fresh token. The password is
// bcrypt-hashed before it reaches the store; the request body is never
// logged.
func (api *API) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Fullname        string `json:"fullname"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Fullname == "" || input.Email == "" || input.Phone == "" ||
		input.Password == "" || input.ConfirmPassword == "" {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin")
		return
	}
	if input.Password != input.ConfirmPassword {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Mật khẩu không khớp")
		return
	}
	if !utils.ValidEmail(input.Email) {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Email không hợp lệ")
		return
	}
	if !utils.ValidPhone(input.Phone) {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Số điện thoại không hợp lệ")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Register: failed to hash password: %v", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to process password")
		return
	}

	user, err := api.Users.Create(r.Context(), models.User{
		Name:     input.Fullname,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: string(hashedPassword),
		Role:     "user",
	})
	if err != nil {
		if errors.Is(err, stores.ErrConflict) {
			utils.RespondWithMessage(w, http.StatusConflict, "Email đã được sử dụng")
			return
		}
		log.Printf("Register: create user failed: %v", err)
		utils.RespondWithError(w, err)
		return
	}

	tokenString, err := generateAccessToken(user)
	if err != nil {
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	cacheToken(user.ID, tokenString)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success":     true,
		"message":     "Đăng ký thành công!",
		"accessToken": tokenString,
		"user":        user.Public(),
	})
}

// Login authenticates by email and password.
func (api *API) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := api.Users.GetByEmail(r.Context(), input.Email)
	if err != nil {
		utils.RespondWithMessage(w, http.StatusUnauthorized, "Email hoặc mật khẩu không chính xác")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondWithMessage(w, http.StatusUnauthorized, "Email hoặc mật khẩu không chính xác")
		return
	}

	tokenString, err := generateAccessToken(user)
	if err != nil {
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	cacheToken(user.ID, tokenString)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":     true,
		"accessToken": tokenString,
		"user":        user.Public(),
	})
}

// Me returns the public record behind the resolved identity.
func (api *API) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == 0 {
		utils.RespondWithMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := api.Users.GetByID(r.Context(), userID)
	if err != nil {
		utils.RespondWithMessage(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"authenticated": true,
		"user":          user.Public(),
	})
}

// Logout is stateless beyond dropping the cached token; the client discards
// its credential.
func (api *API) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if userID := utils.GetUserIDFromRequest(r); userID != 0 {
		if err := rdx.RdxHdel("tokki", strconv.Itoa(userID)); err != nil && err != rdx.ErrUnavailable {
			log.Printf("Logout: token cache removal failed: %v", err)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Logged out successfully",
	})
}

// RefreshToken verifies the presented token and issues a fresh one.
func (api *API) RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Token == "" {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Token is required")
		return
	}

	claims, err := middleware.ValidateJWT(input.Token)
	if err != nil {
		utils.RespondWithMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := api.Users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		utils.RespondWithMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	tokenString, err := generateAccessToken(user)
	if err != nil {
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	cacheToken(user.ID, tokenString)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":     true,
		"accessToken": tokenString,
	})
}

// cacheToken mirrors the issued token into Redis, best-effort.
func cacheToken(userID int, token string) {
	if err := rdx.RdxHset("tokki", strconv.Itoa(userID), token); err != nil && err != rdx.ErrUnavailable {
		log.Printf("Redis token cache failed: %v", err)
	}
}
