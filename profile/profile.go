// Package profile exposes the user account endpoints: the admin user list
// and self-service profile reads/updates.
package profile

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pharmahub/models"
	"pharmahub/stores"
	"pharmahub/utils"

	"github.com/julienschmidt/httprouter"
)

type API struct {
	Users stores.UserStore
}

// ListUsers returns every account. Admin only (enforced by routing).
func (api *API) ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users, err := api.Users.All(r.Context())
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetUser returns one account; callers may only read themselves.
func (api *API) GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusNotFound, "User not found")
		return
	}
	if id != utils.GetUserIDFromRequest(r) {
		utils.RespondWithMessage(w, http.StatusForbidden, "Access denied")
		return
	}

	user, err := api.Users.GetByID(r.Context(), id)
	if err != nil {
		utils.RespondWithMessage(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user.Public())
}

// UpdateUser changes name/email/phone on the caller's own account.
func (api *API) UpdateUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusNotFound, "User not found")
		return
	}
	if id != utils.GetUserIDFromRequest(r) {
		utils.RespondWithMessage(w, http.StatusForbidden, "Access denied")
		return
	}

	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Name == "" || input.Email == "" || input.Phone == "" {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin")
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

	user, err := api.Users.GetByID(r.Context(), id)
	if err != nil {
		utils.RespondWithMessage(w, http.StatusNotFound, "User not found")
		return
	}
	user.Name = input.Name
	user.Email = input.Email
	user.Phone = input.Phone

	updated, err := api.Users.Update(r.Context(), user)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated.Public())
}
