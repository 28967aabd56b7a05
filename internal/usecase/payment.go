package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"revolux/internal/domain/entities"
)

var (
	ErrNoSelectedQuotation            = errors.New("order has no selected quotation")
	ErrPaymentGatewayFailed           = errors.New("payment gateway failed")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const defaultPaymentMethodID = "pix"

// PaymentConfig shapes the provider payment request.
type PaymentConfig struct {
	MethodID string
	// TestPayerEmail replaces the actor as payer in sandbox accounts.
	TestPayerEmail string
}

// paymentRefs keeps provider payment ids that were created but not yet
// committed to the order, keyed by order and selected quotation. A retried
// initiate-payment reuses the id instead of charging twice.
type paymentRefs struct {
	mu    sync.Mutex
	slots map[string]*paymentSlot
}

type paymentSlot struct {
	mu  sync.Mutex
	ref string
}

func (p *paymentRefs) slot(key string) *paymentSlot {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.slots == nil {
		p.slots = map[string]*paymentSlot{}
	}
	s, ok := p.slots[key]
	if !ok {
		s = &paymentSlot{}
		p.slots[key] = s
	}
	return s
}

func (p *paymentRefs) forget(key string) {
	p.mu.Lock()
	delete(p.slots, key)
	p.mu.Unlock()
}

func paymentKey(o entities.Order) string {
	if o.PurchaseProcess == nil {
		return o.ID
	}
	return o.ID + "/" + o.PurchaseProcess.SelectedQuotation
}

// createPayment registers the purchase payment for the selected quotation and
// returns the provider payment id. Concurrent or retried calls for the same
// order and quotation share one provider payment until commitPayment runs.
func (u *OrderUseCase) createPayment(ctx context.Context, o entities.Order, actor entities.Actor) (string, error) {
	if u.gateway == nil {
		log.Printf("[order][payment] gateway not configured; skipping provider payment order_id=%s", o.ID)
		return "", nil
	}
	if o.PurchaseProcess == nil {
		return "", ErrNoSelectedQuotation
	}
	q, ok := o.PurchaseProcess.Selected()
	if !ok {
		return "", ErrNoSelectedQuotation
	}

	slot := u.payments.slot(paymentKey(o))
	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.ref != "" {
		log.Printf("[order][payment] reusing uncommitted provider payment order_id=%s provider_payment_id=%s", o.ID, slot.ref)
		return slot.ref, nil
	}

	payload, err := buildPaymentPayload(o, q, actor, u.cfg.Payment)
	if err != nil {
		return "", err
	}

	log.Printf("[order][payment] calling payment gateway order_id=%s quotation_id=%s amount=%.2f", o.ID, q.ID, q.TotalPrice)
	id, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[order][payment] payment gateway failed order_id=%s err=%v", o.ID, err)
		return "", classifyGatewayError(err)
	}
	log.Printf("[order][payment] payment gateway success order_id=%s provider_payment_id=%s provider_status=%s", o.ID, id, status)
	slot.ref = id
	return id, nil
}

// commitPayment drops the pending reference once the order carries it.
func (u *OrderUseCase) commitPayment(o entities.Order) {
	u.payments.forget(paymentKey(o))
}

func buildPaymentPayload(o entities.Order, q entities.SupplierQuotation, actor entities.Actor, cfg PaymentConfig) (json.RawMessage, error) {
	method := strings.TrimSpace(cfg.MethodID)
	if method == "" {
		method = defaultPaymentMethodID
	}
	payer := map[string]any{"type": "customer"}
	if email := strings.TrimSpace(cfg.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if actor.Email != "" {
		payer["email"] = actor.Email
	}

	req := map[string]any{
		"transaction_amount": q.TotalPrice,
		"description":        fmt.Sprintf("Order %s - %s (%s)", o.ID, o.Item, q.SupplierName),
		"external_reference": o.ID,
		"payment_method_id":  method,
		"payer":              payer,
		"metadata": map[string]any{
			"order_id":     o.ID,
			"quotation_id": q.ID,
			"supplier_id":  q.SupplierID,
			"cost_center":  o.CostCenter,
		},
	}
	return json.Marshal(req)
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
}

// IsPaymentGatewayError reports whether err came from the payment provider.
func IsPaymentGatewayError(err error) bool {
	for _, target := range []error{
		ErrPaymentGatewayFailed,
		ErrPaymentGatewayBadRequest,
		ErrPaymentGatewayUnauthorized,
		ErrPaymentGatewayInvalidUsers,
		ErrPaymentGatewayCustomerNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
