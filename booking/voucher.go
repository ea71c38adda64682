package booking

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"roamio/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// GET /api/bookings/all/:id/voucher renders the booking as a downloadable PDF
// with the reference code embedded in a QR image.
func PrintVoucher(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	b, err := Get(ctx, ps.ByName("id"), req)
	if err != nil {
		writeDomainError(w, err, "Booking not found")
		return
	}

	qrPNG, err := qrcode.Encode(b.BookingReference, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Voucher")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Reference: %s", b.BookingReference))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Type: %s", b.BookingType))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Provider: %s", b.Provider.Name))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s / %s", b.Status, b.PaymentStatus))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %.2f %s", b.Pricing.TotalPrice, b.Pricing.Currency))
	pdf.Ln(8)
	if b.ConfirmationNumber != "" {
		pdf.Cell(0, 10, fmt.Sprintf("Confirmation: %s", b.ConfirmationNumber))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Booked: %s", b.CreatedAt.Format("2006-01-02")))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{
		ImageType: "PNG",
	}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=voucher-"+b.BookingReference+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
