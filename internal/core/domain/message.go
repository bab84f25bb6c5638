package domain

// MailMessage is an outbound HTML email.
type MailMessage struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// ContactMessage is a visitor submission from the public contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}
