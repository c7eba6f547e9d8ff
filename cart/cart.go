// Package cart holds each user's pending purchase lines. Prices are always
// resolved server-side from the catalog; a price sent by the client never
// reaches the store.
package cart

import (
	"encoding/json"
	"net/http"
	"time"

	"pharmahub/catalog"
	"pharmahub/models"
	"pharmahub/stores"
	"pharmahub/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

type API struct {
	Carts stores.CartStore
}

// Get returns the cart enriched with current catalog display fields.
// Enrichment is best-effort: a line whose product vanished from the catalog
// gets placeholder fields instead of failing the read.
func (api *API) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	lines, err := api.Carts.Lines(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}

	enriched := make([]models.EnrichedCartLine, 0, len(lines))
	for _, line := range lines {
		e := models.EnrichedCartLine{
			CartLine:    line,
			ProductName: "Sản phẩm không còn kinh doanh",
			Image:       "/images/products/placeholder.jpg",
		}
		if p, ok := catalog.ProductByID(line.ProductID); ok {
			e.ProductName = p.Name
			e.Image = p.Image
			e.Category = p.Category
		}
		enriched = append(enriched, e)
	}

	utils.RespondWithJSON(w, http.StatusOK, enriched)
}

// Add puts (productId, unit, quantity) into the cart, merging with an
// existing line for the same product and unit.
func (api *API) Add(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var input struct {
		ProductID int    `json:"productId"`
		Unit      string `json:"unit"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.ProductID == 0 || input.Unit == "" || input.Quantity <= 0 {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Dữ liệu không hợp lệ")
		return
	}

	if _, ok := catalog.ProductByID(input.ProductID); !ok {
		utils.RespondWithMessage(w, http.StatusNotFound, "Sản phẩm không tồn tại")
		return
	}
	unit, ok := catalog.Unit(input.ProductID, input.Unit)
	if !ok {
		utils.RespondWithMessage(w, http.StatusNotFound, "Đơn vị không hợp lệ")
		return
	}

	err := api.Carts.Add(r.Context(), models.CartLine{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: input.ProductID,
		Unit:      input.Unit,
		Quantity:  input.Quantity,
		Price:     unit.Price, // server-trusted, request price ignored
		AddedAt:   time.Now(),
	})
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true})
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (api *API) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := api.Carts.SetQuantity(r.Context(), userID, ps.ByName("id"), input.Quantity); err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

func (api *API) Remove(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if err := api.Carts.Remove(r.Context(), userID, ps.ByName("id")); err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// Clear empties the cart; clearing an already-empty cart succeeds.
func (api *API) Clear(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if err := api.Carts.Clear(r.Context(), userID); err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
