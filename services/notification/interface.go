package notification

// Notifier delivers emails to platform users. Delivery is fire-and-forget
// relative to the operation that triggered it: implementations log failures
// and never surface them to the caller's booking decision.
type Notifier interface {
	Send(to, subject, htmlBody string) error
}
