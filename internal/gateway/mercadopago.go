package gateway

import (
	"context"
	"log"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// PaymentLinkGateway creates a hosted checkout link for paying part of a
// booking's remaining balance online.
type PaymentLinkGateway interface {
	CreatePaymentLink(
		ctx context.Context,
		bookingID string,
		description string,
		amount float64,
	) (string, error)
}

type MercadoPagoGateway struct {
	client preference.Client
}

// NewMercadoPagoGateway returns nil when no access token is configured; the
// payment-link endpoint is then disabled.
func NewMercadoPagoGateway(accessToken string) *MercadoPagoGateway {
	if accessToken == "" {
		return nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		log.Printf("mercado pago init failed, payment links disabled: %v", err)
		return nil
	}

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}
}

func (g *MercadoPagoGateway) CreatePaymentLink(
	ctx context.Context,
	bookingID string,
	description string,
	amount float64,
) (string, error) {

	resp, err := g.client.Create(ctx, preference.Request{
		ExternalReference: bookingID,
		Items: []preference.ItemRequest{
			{
				Title:     description,
				Quantity:  1,
				UnitPrice: amount,
			},
		},
	})
	if err != nil {
		return "", err
	}

	return resp.InitPoint, nil
}

var _ PaymentLinkGateway = (*MercadoPagoGateway)(nil)
