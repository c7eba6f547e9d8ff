// Package addresses manages each user's shipping address book. The store
// keeps the at-most-one-default invariant; handlers only validate and scope
// by the authenticated owner.
package addresses

import (
	"encoding/json"
	"net/http"

	"pharmahub/models"
	"pharmahub/stores"
	"pharmahub/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

type API struct {
	Addresses stores.AddressStore
}

type addressInput struct {
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone"`
	FullAddress    string `json:"fullAddress"`
	IsDefault      bool   `json:"isDefault"`
}

func (api *API) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	list, err := api.Addresses.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func (api *API) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var input addressInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.RecipientName == "" || input.RecipientPhone == "" || input.FullAddress == "" {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin")
		return
	}

	created, err := api.Addresses.Create(r.Context(), models.Address{
		ID:             uuid.NewString(),
		UserID:         userID,
		RecipientName:  input.RecipientName,
		RecipientPhone: input.RecipientPhone,
		FullAddress:    input.FullAddress,
		IsDefault:      input.IsDefault,
	})
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

func (api *API) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var input addressInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.RecipientName == "" || input.RecipientPhone == "" || input.FullAddress == "" {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin")
		return
	}

	updated, err := api.Addresses.Update(r.Context(), models.Address{
		ID:             ps.ByName("id"),
		UserID:         userID,
		RecipientName:  input.RecipientName,
		RecipientPhone: input.RecipientPhone,
		FullAddress:    input.FullAddress,
		IsDefault:      input.IsDefault,
	})
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func (api *API) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if err := api.Addresses.Delete(r.Context(), userID, ps.ByName("id")); err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
