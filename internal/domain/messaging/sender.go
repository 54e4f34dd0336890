package messaging

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Sender is the outbound messaging channel. Delivery is best-effort: the
// dispatcher never retries and never awaits a delivery receipt beyond the
// immediate call's success or failure.
type Sender interface {
	Send(ctx context.Context, to, from, body string) error
}

// TwilioSender delivers messages over Twilio's WhatsApp channel.
type TwilioSender struct {
	client *twilio.RestClient
}

func NewTwilioSender(accountSID, authToken string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
	}
}

func (t *TwilioSender) Send(_ context.Context, to, from, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send to %s failed: %w", to, err)
	}
	return nil
}

// whatsapp prefixes a stored phone number for the WhatsApp channel.
func whatsapp(phone string) string {
	return "whatsapp:" + phone
}
