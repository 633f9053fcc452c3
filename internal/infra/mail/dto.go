package mail

// WelcomeEmailData feeds the per-vertical templates.
type WelcomeEmailData struct {
	FirstName string
	Website   string
}

// Message is a fully rendered email, ready for any delivery backend.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// Sender is the delivery backend behind the dispatcher: the Resend API
// client or the SMTP sender.
type Sender interface {
	Send(from, to string, msg Message) error
}
