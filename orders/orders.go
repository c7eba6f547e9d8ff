// Package orders turns a cart into a persisted order and drives the order
// status lifecycle. Items are always snapshotted from the authenticated
// user's server-side cart, never taken from the request body, so the
// server-trusted price survives into the order.
package orders

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"pharmahub/catalog"
	"pharmahub/models"
	"pharmahub/orderfeed"
	"pharmahub/stores"
	"pharmahub/utils"

	"github.com/julienschmidt/httprouter"
)

// Flat shipping fee in VND, waived once the subtotal reaches the threshold.
const (
	FlatShippingFee       int64 = 25000
	FreeShippingThreshold int64 = 500000
)

type API struct {
	Orders stores.OrderStore
	Carts  stores.CartStore
	Feed   *orderfeed.Hub
}

// ShippingCost returns the fee for a given subtotal.
func ShippingCost(subtotal int64) int64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

func paymentStatusFor(method string) string {
	// Optimistic simplification: transfers are treated as settled, COD
	// stays pending until delivery.
	if method == "bank_transfer" {
		return "paid"
	}
	return "pending"
}

// Create checks out the caller's cart. Exactly one cart clear happens per
// successful order.
func (api *API) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var input struct {
		RecipientName string `json:"recipientName"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
		PaymentMethod string `json:"paymentMethod"`
		// A client-submitted items list is deliberately not modeled here:
		// the cart is the only source of order lines.
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.RecipientName == "" || input.Address == "" {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin")
		return
	}
	if !utils.ValidPhone(input.Phone) {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Số điện thoại không hợp lệ")
		return
	}
	if input.PaymentMethod != "cod" && input.PaymentMethod != "bank_transfer" {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Phương thức thanh toán không hợp lệ")
		return
	}

	lines, err := api.Carts.Lines(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	if len(lines) == 0 {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Không có sản phẩm trong đơn hàng")
		return
	}

	var subtotal int64
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		item := models.OrderItem{
			ProductID: line.ProductID,
			Unit:      line.Unit,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
		if p, ok := catalog.ProductByID(line.ProductID); ok {
			item.ProductName = p.Name
			item.Image = p.Image
		}
		items = append(items, item)
		subtotal += line.Price * int64(line.Quantity)
	}

	shipping := ShippingCost(subtotal)
	var discount int64 // no coupon scheme yet
	now := time.Now()
	order := models.Order{
		ID:            "DH" + utils.GenerateRandomDigitString(8),
		UserID:        userID,
		Items:         items,
		RecipientName: input.RecipientName,
		Phone:         input.Phone,
		Address:       input.Address,
		PaymentMethod: input.PaymentMethod,
		Subtotal:      subtotal,
		ShippingCost:  shipping,
		Discount:      discount,
		TotalPrice:    subtotal + shipping - discount,
		Status:        StatusPending,
		PaymentStatus: paymentStatusFor(input.PaymentMethod),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := api.Orders.Insert(r.Context(), order); err != nil {
		log.Printf("Create order insert failed: %v", err)
		utils.RespondWithError(w, err)
		return
	}

	if err := api.Carts.Clear(r.Context(), userID); err != nil {
		// the order stands; a stale cart is recoverable, a lost order is not
		log.Printf("Create order cart cleanup failed: %v", err)
	}

	api.Feed.Publish(orderfeed.Event{
		Action:  "order_created",
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
		Total:   order.TotalPrice,
	})

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// List returns the caller's orders, or every order for an admin.
func (api *API) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var (
		list []models.Order
		err  error
	)
	if utils.IsAdmin(r) {
		list, err = api.Orders.All(r.Context())
	} else {
		list, err = api.Orders.ListByUser(r.Context(), utils.GetUserIDFromRequest(r))
	}
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// getVisible loads an order and applies the visibility rule: owners and
// admins only.
func (api *API) getVisible(r *http.Request, orderID string) (models.Order, error) {
	order, err := api.Orders.GetByID(r.Context(), orderID)
	if err != nil {
		return models.Order{}, err
	}
	if !utils.IsAdmin(r) && order.UserID != utils.GetUserIDFromRequest(r) {
		return models.Order{}, stores.ErrForbidden
	}
	return order, nil
}

func (api *API) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, err := api.getVisible(r, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// Cancel lets the owner cancel an order that is still pending.
func (api *API) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	order, err := api.Orders.GetByID(r.Context(), ps.ByName("id"))
	if err != nil || order.UserID != userID {
		// an order someone else owns looks absent to this caller
		utils.RespondWithError(w, stores.ErrNotFound)
		return
	}
	if !CanTransition(order.Status, StatusCancelled) {
		utils.RespondWithError(w, stores.ErrInvalidTransition)
		return
	}

	updated, err := api.Orders.SetStatus(r.Context(), order.ID, StatusCancelled, time.Now())
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}

	api.Feed.Publish(orderfeed.Event{
		Action:  "status_changed",
		OrderID: updated.ID,
		Status:  updated.Status,
	})
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// SetStatus is the admin status write. Any of the five recognized values is
// accepted; admins are deliberately not bound to the forward path.
func (api *API) SetStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !ValidStatus(input.Status) {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Trạng thái không hợp lệ")
		return
	}

	updated, err := api.Orders.SetStatus(r.Context(), ps.ByName("id"), input.Status, time.Now())
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.RespondWithMessage(w, http.StatusNotFound, "Đơn hàng không tồn tại")
			return
		}
		utils.RespondWithError(w, err)
		return
	}

	api.Feed.Publish(orderfeed.Event{
		Action:  "status_changed",
		OrderID: updated.ID,
		Status:  updated.Status,
	})
	utils.RespondWithJSON(w, http.StatusOK, updated)
}
