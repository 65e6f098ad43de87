package request

// GatewayWebhookRequest is the notification envelope Mercado Pago posts when
// a payment changes state. Only the payment id is consumed; the current state
// is always re-read from the processor rather than trusted from the payload.
type GatewayWebhookRequest struct {
	Action string             `json:"action"`
	Type   string             `json:"type"`
	Data   GatewayWebhookData `json:"data"`
}

type GatewayWebhookData struct {
	ID string `json:"id"`
}
