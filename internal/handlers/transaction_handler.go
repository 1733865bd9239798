package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/glamora/booking-api/internal/audit"
	"github.com/glamora/booking-api/internal/dto"
	"github.com/glamora/booking-api/internal/httperr"
	"github.com/glamora/booking-api/internal/httpresp"
	"github.com/glamora/booking-api/internal/models"
)

type TransactionHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTransactionHandler(db *gorm.DB, auditor *audit.Dispatcher) *TransactionHandler {
	return &TransactionHandler{db: db, audit: auditor}
}

type withdrawRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	BankName    string  `json:"bankName" binding:"required"`
	AccountName string  `json:"accountName"`
	IBAN        string  `json:"iban" binding:"required"`
}

func (h *TransactionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := h.db.WithContext(c.Request.Context()).
		Model(&models.Transaction{}).
		Where("artist_id = ?", currentUserID(c))

	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if s := c.Query("status"); s != "" {
		query = query.Where("status = ?", s)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not list transactions.")
		return
	}

	var items []models.Transaction
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not list transactions.")
		return
	}

	out := make([]dto.TransactionDTO, 0, len(items))
	for i := range items {
		out = append(out, dto.NewTransactionDTO(&items[i]))
	}

	httpresp.List(c, "Transactions retrieved.", out, total)
}

func (h *TransactionHandler) Balance(c *gin.Context) {
	balance, err := h.balanceFor(c, currentUserID(c))
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not compute balance.")
		return
	}

	httpresp.OK(c, "Balance retrieved.", gin.H{"balance": balance})
}

// Withdraw records an outbound transfer in in_transit state. Settlement
// happens out of band; the ledger only guards that the artist never
// withdraws more than was earned.
func (h *TransactionHandler) Withdraw(c *gin.Context) {
	var req withdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Amount, bank name and IBAN are required.")
		return
	}

	artistID := currentUserID(c)

	var tx models.Transaction
	err := h.db.WithContext(c.Request.Context()).Transaction(func(db *gorm.DB) error {
		balance, err := balanceIn(db, artistID)
		if err != nil {
			return err
		}
		if req.Amount > balance {
			return httperr.ErrBusiness("insufficient_balance")
		}

		tx = models.Transaction{
			ArtistID:      artistID,
			Type:          models.TransactionWithdrawal,
			Status:        models.TransactionInTransit,
			Amount:        req.Amount,
			Description:   "Withdrawal to " + req.BankName,
			PaymentMethod: "bank_transfer",
			BankDetails: models.BankDetails{
				BankName:      req.BankName,
				AccountNumber: req.AccountName,
				IBAN:          req.IBAN,
			},
			Reference: uuid.NewString(),
		}
		return db.Create(&tx).Error
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok && code == "insufficient_balance" {
			httperr.BadRequest(c, code, "Withdrawal amount exceeds the available balance.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not create withdrawal.")
		return
	}

	h.audit.Dispatch(audit.Event{ActorID: &artistID, Action: "withdrawal_requested", Entity: "transaction", EntityID: &tx.ID})

	httpresp.Created(c, "Withdrawal requested.", dto.NewTransactionDTO(&tx))
}

func (h *TransactionHandler) balanceFor(c *gin.Context, artistID uint) (float64, error) {
	return balanceIn(h.db.WithContext(c.Request.Context()), artistID)
}

// balanceIn sums succeeded deposits minus refunds minus every withdrawal
// that has not failed. In-flight withdrawals count against the balance so
// two quick requests cannot both drain it.
func balanceIn(db *gorm.DB, artistID uint) (float64, error) {
	type row struct{ Total float64 }

	var earned row
	err := db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("artist_id = ? AND type = ? AND status = ?",
			artistID, models.TransactionDeposit, models.TransactionSucceeded).
		Scan(&earned).Error
	if err != nil {
		return 0, err
	}

	var refunded row
	err = db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("artist_id = ? AND type = ? AND status = ?",
			artistID, models.TransactionRefund, models.TransactionSucceeded).
		Scan(&refunded).Error
	if err != nil {
		return 0, err
	}

	var withdrawn row
	err = db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("artist_id = ? AND type = ? AND status <> ?",
			artistID, models.TransactionWithdrawal, models.TransactionFailed).
		Scan(&withdrawn).Error
	if err != nil {
		return 0, err
	}

	return earned.Total - refunded.Total - withdrawn.Total, nil
}
