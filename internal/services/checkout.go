package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/KimTien0410/shop-checkout/internal/errors"
	"github.com/KimTien0410/shop-checkout/internal/gateway"
	"github.com/KimTien0410/shop-checkout/internal/metrics"
	"github.com/KimTien0410/shop-checkout/internal/models"
	"github.com/KimTien0410/shop-checkout/internal/pricing"
	"github.com/KimTien0410/shop-checkout/internal/snapshot"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CheckoutService drives the checkout screen state machine:
// LOADING -> READY -> SUBMITTING -> {REDIRECTED_TO_GATEWAY | COMPLETED | FAILED}.
type CheckoutService interface {
	Start(ctx context.Context, userID uuid.UUID, req *models.StartCheckoutRequest) (*models.CheckoutSession, error)
	Session(ctx context.Context, userID uuid.UUID) (*models.CheckoutSession, error)
	Select(ctx context.Context, userID uuid.UUID, req *models.SelectionRequest) (*models.CheckoutSession, error)
	ApplyVoucher(ctx context.Context, userID uuid.UUID, voucherID int64) (*models.CheckoutSession, error)
	RemoveVoucher(ctx context.Context, userID uuid.UUID) (*models.CheckoutSession, error)
	PlaceOrder(ctx context.Context, userID uuid.UUID) (*models.PlaceOrderResult, error)
}

// OrderHistoryRoute is where the client is sent after a non-gateway order.
const OrderHistoryRoute = "/order-history"

type checkoutService struct {
	addresses  gateway.AddressGateway
	payments   gateway.PaymentMethodGateway
	deliveries gateway.DeliveryMethodGateway
	vouchers   gateway.VoucherGateway
	orders     gateway.OrderGateway
	carts      gateway.CartGateway
	store      snapshot.Store
}

func NewCheckoutService(
	addresses gateway.AddressGateway,
	payments gateway.PaymentMethodGateway,
	deliveries gateway.DeliveryMethodGateway,
	vouchers gateway.VoucherGateway,
	orders gateway.OrderGateway,
	carts gateway.CartGateway,
	store snapshot.Store,
) CheckoutService {
	return &checkoutService{
		addresses:  addresses,
		payments:   payments,
		deliveries: deliveries,
		vouchers:   vouchers,
		orders:     orders,
		carts:      carts,
		store:      store,
	}
}

// Start is the cart-to-checkout handoff. The submitted lines are copied into
// a snapshot that stays independent of later cart mutations, the reference
// data is fetched concurrently (the fetches have no ordering dependency on
// each other) and the session becomes READY once everything has resolved.
func (s *checkoutService) Start(ctx context.Context, userID uuid.UUID, req *models.StartCheckoutRequest) (*models.CheckoutSession, error) {

	session := &models.CheckoutSession{
		State: models.CheckoutStateLoading,
		Snapshot: models.CheckoutSnapshot{
			Items:      slices.Clone(req.Items),
			CapturedAt: time.Now(),
		},
	}

	var defaultAddress *models.Address

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addresses, err := s.addresses.ListAddresses(gCtx)
		if err != nil {
			return err
		}
		session.Addresses = addresses

		return nil
	})

	g.Go(func() error {
		// a missing default address is not an error; the list's default
		// flag covers it
		address, err := s.addresses.DefaultAddress(gCtx)
		if err == nil {
			defaultAddress = address
		}

		return nil
	})

	g.Go(func() error {
		methods, err := s.payments.ListPaymentMethods(gCtx)
		if err != nil {
			return err
		}
		session.PaymentMethods = methods

		return nil
	})

	g.Go(func() error {
		methods, err := s.deliveries.ListDeliveryMethods(gCtx)
		if err != nil {
			return err
		}
		session.ShippingMethods = methods

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if defaultAddress == nil {
		for i := range session.Addresses {
			if session.Addresses[i].IsDefault {
				defaultAddress = &session.Addresses[i]

				break
			}
		}
	}

	if defaultAddress != nil {
		session.SelectedAddress = &defaultAddress.AddressID
	}

	session.State = models.CheckoutStateReady
	s.refreshQuote(session, time.Now())

	if err := s.store.SaveSession(ctx, userID, session); err != nil {
		return nil, errors.InternalError("Failed to persist checkout session").WithError(err)
	}

	return session, nil
}

func (s *checkoutService) Session(ctx context.Context, userID uuid.UUID) (*models.CheckoutSession, error) {

	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.refreshQuote(session, time.Now()) {
		if err := s.store.SaveSession(ctx, userID, session); err != nil {
			return nil, errors.InternalError("Failed to persist checkout session").WithError(err)
		}
	}

	return session, nil
}

func (s *checkoutService) Select(ctx context.Context, userID uuid.UUID, req *models.SelectionRequest) (*models.CheckoutSession, error) {

	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.AddressID != nil {
		if !slices.ContainsFunc(session.Addresses, func(a models.Address) bool { return a.AddressID == *req.AddressID }) {
			return nil, errors.ValidationError("Unknown address selection")
		}

		session.SelectedAddress = req.AddressID
	}

	if req.PaymentMethodID != nil {
		if s.paymentMethod(session, *req.PaymentMethodID) == nil {
			return nil, errors.ValidationError("Unknown payment method selection")
		}

		session.SelectedPayment = req.PaymentMethodID
	}

	if req.DeliveryMethodID != nil {
		if !slices.ContainsFunc(session.ShippingMethods, func(m models.ShippingMethod) bool { return m.DeliveryMethodID == *req.DeliveryMethodID }) {
			return nil, errors.ValidationError("Unknown shipping method selection")
		}

		session.SelectedShipping = req.DeliveryMethodID
	}

	s.refreshQuote(session, time.Now())

	if err := s.store.SaveSession(ctx, userID, session); err != nil {
		return nil, errors.InternalError("Failed to persist checkout session").WithError(err)
	}

	return session, nil
}

func (s *checkoutService) ApplyVoucher(ctx context.Context, userID uuid.UUID, voucherID int64) (*models.CheckoutSession, error) {

	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	vouchers, err := s.vouchers.ListActiveVouchers(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	var voucher *models.Voucher

	for _, v := range pricing.ActiveVouchers(vouchers, now) {
		if v.VoucherID == voucherID {
			voucher = &v

			break
		}
	}

	if voucher == nil {
		return nil, errors.ValidationError("Voucher is not available")
	}

	if !pricing.Eligible(voucher, pricing.Subtotal(session.Snapshot.Items)) {
		return nil, errors.ValidationError("Order does not qualify for this voucher")
	}

	session.AppliedVoucher = voucher
	s.refreshQuote(session, now)

	if err := s.store.SaveSession(ctx, userID, session); err != nil {
		return nil, errors.InternalError("Failed to persist checkout session").WithError(err)
	}

	return session, nil
}

func (s *checkoutService) RemoveVoucher(ctx context.Context, userID uuid.UUID) (*models.CheckoutSession, error) {

	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	session.AppliedVoucher = nil
	s.refreshQuote(session, time.Now())

	if err := s.store.SaveSession(ctx, userID, session); err != nil {
		return nil, errors.InternalError("Failed to persist checkout session").WithError(err)
	}

	return session, nil
}

// PlaceOrder runs READY -> SUBMITTING and then one of the three terminal
// transitions. Side effect order on success: create the order, remove the
// submitted lines from the server-side cart, clear the local snapshot, then
// hand back the redirect target. A cleanup failure after the order exists is
// logged and retried once but never fails the order.
func (s *checkoutService) PlaceOrder(ctx context.Context, userID uuid.UUID) (*models.PlaceOrderResult, error) {

	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	// a FAILED submission leaves the session re-submittable
	if session.State == models.CheckoutStateFailed {
		session.State = models.CheckoutStateReady
	}

	if !session.CanSubmit() {
		return nil, errors.ValidationError("An address, payment method and shipping method must be selected")
	}

	now := time.Now()

	if session.AppliedVoucher != nil && !s.voucherStillValid(session, now) {
		session.AppliedVoucher = nil
		s.refreshQuote(session, now)

		if err := s.store.SaveSession(ctx, userID, session); err != nil {
			return nil, errors.InternalError("Failed to persist checkout session").WithError(err)
		}

		return nil, errors.ValidationError("The applied voucher is no longer valid")
	}

	submission := buildSubmission(session)

	session.State = models.CheckoutStateSubmitting
	if err := s.store.SaveSession(ctx, userID, session); err != nil {
		return nil, errors.InternalError("Failed to persist checkout session").WithError(err)
	}

	created, err := s.orders.CreateOrder(ctx, submission)
	if err != nil {
		session.State = models.CheckoutStateFailed
		if saveErr := s.store.SaveSession(ctx, userID, session); saveErr != nil {
			slog.Error("Failed to record failed submission", slog.String("error", saveErr.Error()))
		}

		metrics.OrderPlaced("failed")

		return nil, err
	}

	variantIDs := make([]int64, 0, len(session.Snapshot.Items))
	for _, item := range session.Snapshot.Items {
		variantIDs = append(variantIDs, item.ProductVariantID)
	}

	// idempotent on the backend, so a single retry is safe
	if err := s.carts.RemoveItems(ctx, variantIDs); err != nil {
		if err := s.carts.RemoveItems(ctx, variantIDs); err != nil {
			slog.Warn("Cart cleanup failed after order creation",
				slog.Int64("orderId", created.OrderID),
				slog.String("error", err.Error()))
		}
	}

	if err := s.store.ClearSession(ctx, userID); err != nil {
		slog.Warn("Failed to clear checkout session", slog.String("error", err.Error()))
	}

	method := s.paymentMethod(session, *session.SelectedPayment)
	if method != nil && method.RequiresRedirect {
		metrics.OrderPlaced("redirected")

		return &models.PlaceOrderResult{
			State:       models.CheckoutStateRedirected,
			OrderID:     created.OrderID,
			RedirectURL: created.PaymentURL,
		}, nil
	}

	metrics.OrderPlaced("completed")

	return &models.PlaceOrderResult{
		State:       models.CheckoutStateCompleted,
		OrderID:     created.OrderID,
		RedirectURL: OrderHistoryRoute,
	}, nil
}

func (s *checkoutService) loadSession(ctx context.Context, userID uuid.UUID) (*models.CheckoutSession, error) {

	session, found, err := s.store.Session(ctx, userID)
	if err != nil {
		return nil, errors.InternalError("Failed to load checkout session").WithError(err)
	}

	if !found {
		return nil, errors.NotFoundError("No active checkout session")
	}

	return session, nil
}

func (s *checkoutService) paymentMethod(session *models.CheckoutSession, id int64) *models.PaymentMethod {
	for i := range session.PaymentMethods {
		if session.PaymentMethods[i].PaymentMethodID == id {
			return &session.PaymentMethods[i]
		}
	}

	return nil
}

func (s *checkoutService) voucherStillValid(session *models.CheckoutSession, now time.Time) bool {
	return pricing.Active(session.AppliedVoucher, now) &&
		pricing.Eligible(session.AppliedVoucher, pricing.Subtotal(session.Snapshot.Items))
}

// refreshQuote recomputes the displayed breakdown and re-validates an applied
// voucher against the current subtotal, dropping it when it no longer
// qualifies. Reports whether the voucher was dropped.
func (s *checkoutService) refreshQuote(session *models.CheckoutSession, now time.Time) bool {

	dropped := false

	if session.AppliedVoucher != nil && !s.voucherStillValid(session, now) {
		session.AppliedVoucher = nil
		dropped = true
	}

	var shippingID int64
	if session.SelectedShipping != nil {
		shippingID = *session.SelectedShipping
	}

	session.Quote = pricing.Quote(session.Snapshot.Items, session.AppliedVoucher, shippingID, session.ShippingMethods)

	return dropped
}

// buildSubmission assembles the immutable order payload from the current
// selections. Calling it twice on the same session yields structurally equal
// values.
func buildSubmission(session *models.CheckoutSession) *models.OrderSubmission {

	details := make([]models.OrderDetail, 0, len(session.Snapshot.Items))
	for _, item := range session.Snapshot.Items {
		details = append(details, models.OrderDetail{
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
		})
	}

	submission := &models.OrderSubmission{
		ReceiverAddressID: *session.SelectedAddress,
		PaymentMethodID:   *session.SelectedPayment,
		DeliveryMethodID:  *session.SelectedShipping,
		OrderDetails:      details,
	}

	if session.AppliedVoucher != nil {
		voucherID := session.AppliedVoucher.VoucherID
		submission.VoucherID = &voucherID
	}

	return submission
}
