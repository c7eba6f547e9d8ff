package catalog

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"pharmahub/rdx"
	"pharmahub/utils"

	"github.com/julienschmidt/httprouter"
)

const productsCacheKey = "catalog:products"

// GetProducts returns the whole catalog. The serialized list is cached in
// Redis best-effort; a cache failure only costs the re-encode.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(productsCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(cached))
		return
	}

	data, err := json.Marshal(Products())
	if err != nil {
		http.Error(w, "Failed to encode products", http.StatusInternalServerError)
		return
	}
	if err := rdx.SetWithExpiry(productsCacheKey, string(data), 5*time.Minute); err != nil && err != rdx.ErrUnavailable {
		log.Printf("GetProducts cache write failed: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// GetProduct returns one product by id.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusNotFound, "Không tìm thấy sản phẩm!")
		return
	}

	product, ok := ProductByID(id)
	if !ok {
		utils.RespondWithMessage(w, http.StatusNotFound, "Không tìm thấy sản phẩm!")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// GetCategories returns all categories.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Categories())
}
