package usecase

// EmailService triggers the welcome email. It deliberately returns nothing:
// dispatch is a best-effort side effect and its outcome must never reach the
// response contract.
type EmailService interface {
	SendWelcome(verticalID, to, firstName string)
}
