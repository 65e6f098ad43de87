package routes

import (
	"supplylink/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEscrow   = "/escrow"
	PathWebhooks = "/webhooks"
)

func addEscrowRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc, escrowHandler *handlers.EscrowPaymentHandler, webhookHandler *handlers.GatewayWebhookHandler) {
	escrow := rg.Group(PathEscrow, authn)
	{
		escrow.POST("/initiate", escrowHandler.Initiate)
		escrow.POST("/release", escrowHandler.Release)
		escrow.GET("/:id", escrowHandler.GetByID)
	}

	// Processor notifications authenticate out of band; the handler re-reads
	// state from the processor instead of trusting the payload.
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payments", webhookHandler.HandlePaymentNotification)
	}
}
