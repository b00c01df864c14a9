package services

import (
	"context"
	"errors"
	"fmt"

	"agenthub_backend/internal/logger"
	"agenthub_backend/internal/models"
	"agenthub_backend/internal/payment"
	"agenthub_backend/internal/repositories"
	"agenthub_backend/internal/services/dto"
	"agenthub_backend/pkg/apperrors"
)

// PaymentService bridges the hire flow to the payment gateway. An
// employer pays to confirm a hire: CreateOrder opens a gateway order
// for an application, VerifyPayment checks the checkout signature and
// settles the hire on success.
type PaymentService struct {
	gateway            payment.Gateway
	paymentRepo        repositories.PaymentRepository
	applicationService *ApplicationService
	currency           string
}

func NewPaymentService(
	gateway payment.Gateway,
	paymentRepo repositories.PaymentRepository,
	applicationService *ApplicationService,
	currency string,
) *PaymentService {
	if currency == "" {
		currency = "INR"
	}
	return &PaymentService{
		gateway:            gateway,
		paymentRepo:        paymentRepo,
		applicationService: applicationService,
		currency:           currency,
	}
}

// CreateOrder opens a gateway order for the given application. The
// amount arrives in major currency units and is converted to minor
// units for the gateway. The caller must own the job the application
// belongs to.
func (s *PaymentService) CreateOrder(ctx context.Context, employerID string, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if _, err := s.applicationService.findForEmployer(employerID, req.ApplicationID); err != nil {
		return nil, err
	}

	amount := req.Amount * 100
	receipt := fmt.Sprintf("order_rcptid_%s", req.ApplicationID)

	order, err := s.gateway.CreateOrder(ctx, amount, s.currency, receipt)
	if err != nil {
		logger.CtxError(ctx, "gateway order creation failed", "application_id", req.ApplicationID, "error", err)
		return nil, apperrors.InternalError(err)
	}

	record := &models.PaymentOrder{
		ApplicationID: req.ApplicationID,
		OrderID:       order.ID,
		Amount:        order.Amount,
		Currency:      order.Currency,
		Receipt:       order.Receipt,
		Status:        models.PaymentStatusCreated,
	}
	if err := s.paymentRepo.Create(record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
	}, nil
}

// VerifyPayment checks the checkout signature against the shared
// secret. On a match the order is marked paid and the application's
// hire is confirmed; on a mismatch the order is marked failed, the
// application is left untouched and the caller gets a 400.
func (s *PaymentService) VerifyPayment(ctx context.Context, employerID string, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	order, err := s.paymentRepo.FindByOrderID(req.OrderID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentOrderNotFound) {
			return nil, apperrors.ErrNotFound(err, "payment", "Payment order not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if order.ApplicationID != req.ApplicationID {
		return nil, apperrors.NewBadRequestError("Order does not belong to this application")
	}

	if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		logger.CtxWarn(ctx, "payment signature mismatch", "order_id", req.OrderID)
		if err := s.paymentRepo.MarkFailed(req.OrderID); err != nil {
			logger.CtxError(ctx, "failed to mark order failed", "order_id", req.OrderID, "error", err)
		}
		return nil, apperrors.NewBadRequestError("Payment signature verification failed")
	}

	if err := s.paymentRepo.MarkPaid(req.OrderID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.applicationService.ConfirmHire(employerID, req.ApplicationID); err != nil {
		return nil, err
	}

	return &dto.VerifyPaymentResponse{Status: "success"}, nil
}
