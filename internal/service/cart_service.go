package service

import (
	"context"
	"log/slog"

	"storefront/internal/credential"
	"storefront/internal/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type CartWriter interface {
	Add(ctx context.Context, token, productID string) error
}

// Counter is the cart badge owned by the caller. CartAdder only ever asks
// for +1, once per confirmed add.
type Counter interface {
	Increment()
}

type CounterFunc func()

func (f CounterFunc) Increment() { f() }

type Outcome int

const (
	OutcomeLoginRequired Outcome = iota
	OutcomeAdded
	OutcomeFailed
)

const (
	MessageLoginRequired = "Please login first!"
	MessageAdded         = "Added to Cart!"
	MessageFailed        = "Failed to add item."
)

func (o Outcome) Message() string {
	switch o {
	case OutcomeAdded:
		return MessageAdded
	case OutcomeLoginRequired:
		return MessageLoginRequired
	default:
		return MessageFailed
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeLoginRequired:
		return "login_required"
	default:
		return "failed"
	}
}

// Notifier surfaces an outcome to the user.
type Notifier interface {
	Notify(ctx context.Context, outcome Outcome)
}

type NotifierFunc func(ctx context.Context, outcome Outcome)

func (f NotifierFunc) Notify(ctx context.Context, outcome Outcome) { f(ctx, outcome) }

type CartAdder struct {
	cart        CartWriter
	credentials credential.Provider
	counter     Counter
	notifier    Notifier
}

var CartAdderTracer = otel.Tracer("CartAdder")

// NewCartAdder wires the adder. counter and notifier may be nil.
func NewCartAdder(cart CartWriter, credentials credential.Provider, counter Counter, notifier Notifier) *CartAdder {
	if counter == nil {
		counter = CounterFunc(func() {})
	}
	if notifier == nil {
		notifier = NotifierFunc(func(context.Context, Outcome) {})
	}
	return &CartAdder{
		cart:        cart,
		credentials: credentials,
		counter:     counter,
		notifier:    notifier,
	}
}

// Add puts one unit of productID in the cart. Without a token no request
// is made. Transport and API failures collapse into OutcomeFailed and leave
// the counter untouched. Safe for concurrent use.
func (a *CartAdder) Add(ctx context.Context, productID string) Outcome {
	ctx, span := CartAdderTracer.Start(ctx, "CartAdder.Add")
	defer span.End()
	span.SetAttributes(attribute.String("product.id", productID))

	outcome := a.add(ctx, productID)
	span.SetAttributes(attribute.String("cart.outcome", outcome.String()))
	a.notifier.Notify(ctx, outcome)
	return outcome
}

func (a *CartAdder) add(ctx context.Context, productID string) Outcome {
	token, ok := a.credentials.Token(ctx)
	if !ok {
		logger.Warn(ctx, "Add to Cart skipped: not signed in", slog.String("product_id", productID))
		return OutcomeLoginRequired
	}

	if err := a.cart.Add(ctx, token, productID); err != nil {
		logger.Error(ctx, "Add to Cart Error",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
		return OutcomeFailed
	}

	a.counter.Increment()
	logger.Info(ctx, "Added to cart", slog.String("product_id", productID))
	return OutcomeAdded
}
