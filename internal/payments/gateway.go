package payments

import (
	"context"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// ErrGateway wraps every failed outbound Stripe call so the transport layer
// can map upstream failures without leaking Stripe error detail.
var ErrGateway = errors.New("payment gateway error")

type CheckoutSessionInput struct {
	EventID          string
	UserID           string
	HostID           string
	EventName        string
	EventDescription string
	AmountCents      int64
	SuccessURL       string
	CancelURL        string
}

type TransferInput struct {
	AmountCents    int64
	AccountID      string
	IdempotencyKey string
}

// Gateway covers the four outbound Stripe operations this system performs.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (string, error)
	CreateTransfer(ctx context.Context, in TransferInput) (string, error)
	CreateAccount(ctx context.Context, email string) (string, error)
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
}

// StripeGateway implements Gateway against the Stripe API.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(in.EventName),
						Description: stripe.String(in.EventDescription),
					},
					UnitAmount: stripe.Int64(in.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("event_id", in.EventID)
	params.AddMetadata("user_id", in.UserID)
	params.AddMetadata("host_id", in.HostID)

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: create checkout session: %v", ErrGateway, err)
	}
	return sess.ID, nil
}

func (g *StripeGateway) CreateTransfer(ctx context.Context, in TransferInput) (string, error) {
	params := &stripe.TransferParams{
		Amount:      stripe.Int64(in.AmountCents),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Destination: stripe.String(in.AccountID),
	}
	params.Context = ctx
	if in.IdempotencyKey != "" {
		params.SetIdempotencyKey(in.IdempotencyKey)
	}

	tr, err := g.api.Transfers.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: create transfer: %v", ErrGateway, err)
	}
	return tr.ID, nil
}

func (g *StripeGateway) CreateAccount(ctx context.Context, email string) (string, error) {
	params := &stripe.AccountParams{
		Type:         stripe.String(string(stripe.AccountTypeExpress)),
		BusinessType: stripe.String(string(stripe.AccountBusinessTypeIndividual)),
		Email:        stripe.String(email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{
				Requested: stripe.Bool(true),
			},
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}
	params.Context = ctx

	acct, err := g.api.Accounts.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: create account: %v", ErrGateway, err)
	}
	return acct.ID, nil
}

func (g *StripeGateway) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := g.api.AccountLinks.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: create account link: %v", ErrGateway, err)
	}
	return link.URL, nil
}
