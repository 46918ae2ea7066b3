package payments

import "context"

// Intent is the slice of a payment intent this backend cares about.
// Amount is in the smallest currency unit (cents).
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
}

// StatusSucceeded is the gateway status that authorizes order creation.
const StatusSucceeded = "succeeded"

// Event is a verified webhook notification from the gateway.
type Event struct {
	ID     string
	Type   string
	Object string // id of the object the event refers to
}

// Gateway is the external payment processor. It is the source of truth for
// payment success; orders are created only after GetIntent reports
// StatusSucceeded.
type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
	VerifyWebhook(payload []byte, signature string) (*Event, error)
}
