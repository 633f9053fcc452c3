package mail

import (
	"log"

	"github.com/obsidianco/lead-capture/internal/infra/http/middleware"
	"github.com/obsidianco/lead-capture/internal/infra/integration/resend"
)

// Dispatcher renders the vertical's welcome email and hands it to the
// delivery backend. It is strictly best-effort: every failure is logged and
// absorbed here, so the request pipeline never sees a dispatch outcome.
type Dispatcher struct {
	sender Sender
	from   string
}

func NewDispatcher(sender Sender, from string) *Dispatcher {
	return &Dispatcher{sender: sender, from: from}
}

func (d *Dispatcher) SendWelcome(verticalID, to, firstName string) {
	if d == nil || d.sender == nil {
		// No backend configured. Skipping is a no-op, not an error.
		log.Printf("email backend not configured - skipping welcome email for %s", to)
		middleware.RecordWelcomeEmail(verticalID, "skipped")
		return
	}

	msg, err := RenderWelcome(verticalID, WelcomeEmailData{FirstName: firstName})
	if err != nil {
		log.Printf("welcome email render failed (%s): %v", verticalID, err)
		middleware.RecordWelcomeEmail(verticalID, "failed")
		return
	}

	if err := d.sender.Send(d.from, to, msg); err != nil {
		log.Printf("welcome email send failed (%s, %s): %v", verticalID, to, err)
		middleware.RecordWelcomeEmail(verticalID, "failed")
		return
	}

	log.Printf("welcome email sent to %s (%s)", to, verticalID)
	middleware.RecordWelcomeEmail(verticalID, "sent")
}

// ResendSender adapts the Resend API client to the Sender interface.
type ResendSender struct {
	Client *resend.Client
}

func (r *ResendSender) Send(from, to string, msg Message) error {
	_, err := r.Client.SendEmail(resend.SendEmailInput{
		From:    from,
		To:      to,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	return err
}
