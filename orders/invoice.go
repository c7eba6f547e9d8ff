package orders

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"

	"pharmahub/globals"
	"pharmahub/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// paymentQRPayload returns "orderId|total|signature" so the transfer
// reference can be verified later.
func paymentQRPayload(orderID string, total int64) string {
	data := fmt.Sprintf("%s|%d", orderID, total)
	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

func formatVND(amount int64) string {
	return fmt.Sprintf("%d VND", amount)
}

// Invoice renders the order as a PDF. Bank-transfer orders get a signed QR
// with the payment reference. Visibility matches GetByID.
func (api *API) Invoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, err := api.getVisible(r, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "PharmaHub Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Order: %s", order.ID))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02/01/2006 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Recipient: %s - %s", order.RecipientName, order.Phone)))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Address: %s", order.Address)))
	pdf.Ln(10)

	// line table
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Unit price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		name := fmt.Sprintf("%s (%s)", item.ProductName, item.Unit)
		pdf.CellFormat(90, 8, tr(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, formatVND(item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, formatVND(item.Price*int64(item.Quantity)), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.Cell(0, 7, fmt.Sprintf("Subtotal: %s", formatVND(order.Subtotal)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Shipping: %s", formatVND(order.ShippingCost)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Discount: %s", formatVND(order.Discount)))
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s", formatVND(order.TotalPrice)))
	pdf.Ln(10)

	if order.PaymentMethod == "bank_transfer" {
		qrPNG, err := qrcode.Encode(paymentQRPayload(order.ID, order.TotalPrice), qrcode.Medium, 256)
		if err != nil {
			http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
			return
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("payment-qr", opts, bytes.NewReader(qrPNG))
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, "Scan to reference your bank transfer:")
		pdf.Ln(8)
		pdf.ImageOptions("payment-qr", pdf.GetX(), pdf.GetY(), 40, 40, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to render invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", order.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
