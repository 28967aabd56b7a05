package handlers

import (
	"errors"
	"net/http"

	"revolux/internal/domain/workflow"
	"revolux/internal/usecase"
	"revolux/pkg"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnknownAction  = pkg.NewDomainErrorSimple("UNKNOWN_ACTION", "Unknown action", http.StatusBadRequest)
)

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, workflow.ErrUnauthorizedAction):
		return pkg.NewDomainError("ACTION_NOT_ALLOWED", "Action not allowed for this role", err, http.StatusForbidden)
	case errors.Is(err, workflow.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Action not valid from the current status", err, http.StatusConflict)
	case errors.Is(err, workflow.ErrUnknownAction):
		return errUnknownAction
	case errors.Is(err, workflow.ErrValidation), errors.Is(err, usecase.ErrInvalidOrder),
		errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainError("ORDER_VERSION_CONFLICT", "Order was changed by another request", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNoSelectedQuotation):
		return pkg.NewDomainError("NO_SELECTED_QUOTATION", "Order has no selected quotation", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainError("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainError("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusBadGateway)
	case usecase.IsPaymentGatewayError(err):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapUploadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUploadNotFound):
		return pkg.NewDomainErrorSimple("UPLOAD_NOT_FOUND", "Upload not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidUpload), errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
