package payments

import (
	"context"
	"encoding/json"
	"errors"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeGateway implements Gateway on top of the Stripe API.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(secretKey, webhookSecret string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api, webhookSecret: webhookSecret}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return fromStripe(pi), nil
}

func (g *StripeGateway) GetIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, err
	}
	return fromStripe(pi), nil
}

func (g *StripeGateway) VerifyWebhook(payload []byte, signature string) (*Event, error) {
	if g.webhookSecret == "" {
		return nil, errors.New("webhook secret not configured")
	}
	ev, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, err
	}
	var obj struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(ev.Data.Raw, &obj)
	return &Event{ID: ev.ID, Type: string(ev.Type), Object: obj.ID}, nil
}

func fromStripe(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
	}
}
