package repositories

import (
	"errors"
	"time"

	"agenthub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPaymentOrderNotFound = errors.New("payment order not found")

type PaymentRepository interface {
	Create(order *models.PaymentOrder) error
	FindByOrderID(orderID string) (*models.PaymentOrder, error)
	MarkPaid(orderID string) error
	MarkFailed(orderID string) error
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(order *models.PaymentOrder) error {
	return r.db.Create(order).Error
}

func (r *PaymentRepositoryImpl) FindByOrderID(orderID string) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	err := r.db.First(&order, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *PaymentRepositoryImpl) MarkPaid(orderID string) error {
	result := r.db.Model(&models.PaymentOrder{}).Where("order_id = ?", orderID).Updates(map[string]interface{}{
		"status":  models.PaymentStatusPaid,
		"paid_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentOrderNotFound
	}
	return nil
}

func (r *PaymentRepositoryImpl) MarkFailed(orderID string) error {
	return r.db.Model(&models.PaymentOrder{}).
		Where("order_id = ?", orderID).
		Update("status", models.PaymentStatusFailed).Error
}
