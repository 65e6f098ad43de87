package response

import "supplylink/internal/usecase"

type EscrowInitiateResponse struct {
	ClientHandle     string `json:"clientHandle"`
	GatewayReference string `json:"gatewayReference"`
	EscrowPaymentID  string `json:"escrowPaymentId"`
}

func FromEscrowAuthorization(a usecase.EscrowAuthorization) EscrowInitiateResponse {
	return EscrowInitiateResponse{
		ClientHandle:     a.ClientHandle,
		GatewayReference: a.GatewayReference,
		EscrowPaymentID:  a.EscrowPaymentID,
	}
}

type EscrowReleaseResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	GatewayReference string `json:"gatewayReference"`
}

func FromEscrowRelease(r usecase.EscrowRelease) EscrowReleaseResponse {
	return EscrowReleaseResponse{
		Success:          true,
		Message:          r.Message,
		GatewayReference: r.GatewayReference,
	}
}
