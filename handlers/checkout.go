package handlers

import (
	"log"
	"net/http"

	"flipbook/config"
	"flipbook/db"
	"flipbook/email"
	"flipbook/models"
	"flipbook/payments"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
	"gorm.io/gorm"
)

type Plan struct {
	Amount    int64 // minor units
	Currency  string
	MaxPhotos int
	Label     string
}

var Plans = map[string]Plan{
	"petite":    {Amount: 149000, Currency: "IDR", MaxPhotos: 100, Label: "Petite flipbook (100 photos)"},
	"classic":   {Amount: 249000, Currency: "IDR", MaxPhotos: 500, Label: "Classic flipbook (500 photos)"},
	"unlimited": {Amount: 449000, Currency: "IDR", MaxPhotos: models.UnlimitedPhotos, Label: "Unlimited flipbook"},
}

// Guards concurrent duplicate deliveries for the same session while the
// first one is still being processed
var inFlightSessions = cmap.New[struct{}]()

type CheckoutCreateRequest struct {
	PlanID     string `json:"plan_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Template   string `json:"template" binding:"required"`
	OwnerEmail string `json:"owner_email" binding:"required,email"`
}

// CheckoutCreate opens a hosted checkout session; the album itself is only
// created when the settlement webhook arrives
func CheckoutCreate(c *gin.Context) {
	r := CheckoutCreateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
		return
	}
	plan, ok := Plans[r.PlanID]
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Error: "unknown plan"})
		return
	}
	if !models.ValidTemplate(r.Template) {
		c.JSON(http.StatusBadRequest, Response{Error: "unknown template"})
		return
	}
	session := models.PaymentSession{
		OrderID:           "FLIP-" + uuid.NewString(),
		PlanID:            r.PlanID,
		Amount:            plan.Amount,
		Currency:          plan.Currency,
		Title:             r.Title,
		Template:          r.Template,
		OwnerEmail:        r.OwnerEmail,
		MaxPhotosPerGuest: plan.MaxPhotos,
		Status:            models.SessionPending,
	}
	if err := db.Instance.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	redirectURL, err := payments.CreateCheckout(payments.CheckoutRequest{
		OrderID:       session.OrderID,
		Amount:        plan.Amount,
		Description:   plan.Label,
		CustomerEmail: r.OwnerEmail,
	})
	if err != nil {
		log.Printf("checkout: cannot create session %s: %v", session.OrderID, err)
		c.JSON(http.StatusInternalServerError, UpstreamErrResponse)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_id":     session.OrderID,
		"redirect_url": redirectURL,
		"cancel_url":   config.CHECKOUT_CANCEL_URL,
	})
}

// CheckoutNotification consumes the payment webhook. Signature failures are
// a hard rejection and album creation is idempotent on the session id.
func CheckoutNotification(c *gin.Context) {
	n := payments.Notification{}
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "invalid notification"})
		return
	}
	if !n.VerifySignature(config.MIDTRANS_SERVER_KEY) {
		log.Printf("checkout: bad signature for order %s", n.OrderID)
		c.JSON(http.StatusForbidden, ForbiddenResponse)
		return
	}
	if !n.Settled() {
		c.JSON(http.StatusOK, gin.H{"status": "ok (not settled)"})
		return
	}
	if !inFlightSessions.SetIfAbsent(n.OrderID, struct{}{}) {
		c.JSON(http.StatusOK, gin.H{"status": "ok (in progress)"})
		return
	}
	defer inFlightSessions.Remove(n.OrderID)

	session := models.PaymentSession{}
	if err := db.Instance.Where("order_id = ?", n.OrderID).First(&session).Error; err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if session.Status == models.SessionCompleted {
		c.JSON(http.StatusOK, gin.H{"status": "ok (duplicate)"})
		return
	}
	album := models.NewAlbum(session.Title, session.Template, session.OwnerEmail, session.MaxPhotosPerGuest)
	err := db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&album).Error; err != nil {
			return err
		}
		return tx.Model(&models.PaymentSession{}).
			Where("id = ? and status = ?", session.ID, models.SessionPending).
			Updates(map[string]interface{}{
				"status":   models.SessionCompleted,
				"album_id": album.ID,
			}).Error
	})
	if err != nil {
		log.Printf("checkout: cannot create album for order %s: %v", n.OrderID, err)
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	go email.SendAdminReady(album.OwnerEmail, album.Title, album.AdminURL())
	c.JSON(http.StatusOK, gin.H{"status": "ok", "slug": album.Slug})
}
