package email

// Provider sends transactional mail. Implementations must be safe for
// concurrent use; callers treat sends as best-effort and only log failures.
type Provider interface {
	Send(msg *Message) error

	// SendCompanyApproved mails login credentials to a newly approved
	// company account.
	SendCompanyApproved(to, companyName, loginEmail, tempPassword string) error

	// SendCompanyRejected mails the rejection reason for a company request.
	SendCompanyRejected(to, companyName, reason string) error
}

// Message is a plain transactional email.
type Message struct {
	To      []string
	Subject string
	HTML    string
}
