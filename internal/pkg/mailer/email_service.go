package mailer

import (
	"fmt"
	"html"

	"stratigo-site/internal/model"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendLeadNotification(lead *model.Lead) error
	SendLeadAcknowledgement(lead *model.Lead) error
}

// Sender is the part of gomail the service needs; tests swap it out.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	sender      Sender
	senderEmail string
	senderName  string
	recipient   string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName, recipient string) IEmailService {
	return NewEmailServiceWithSender(gomail.NewDialer(host, port, username, password), senderEmail, senderName, recipient)
}

func NewEmailServiceWithSender(sender Sender, senderEmail, senderName, recipient string) IEmailService {
	return &emailService{
		sender:      sender,
		senderEmail: senderEmail,
		senderName:  senderName,
		recipient:   recipient,
	}
}

func (s *emailService) newMessage(to, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return m
}

// SendLeadNotification tells the team about a new contact-form submission.
func (s *emailService) SendLeadNotification(lead *model.Lead) error {
	if s.recipient == "" {
		return nil
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New enquiry from the website</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Company:</strong> %s</p>
			<p><strong>Category:</strong> %s</p>
			<p><strong>Page:</strong> %s</p>
			<p style="white-space: pre-wrap;">%s</p>
		</div>
	`,
		html.EscapeString(lead.Name),
		html.EscapeString(lead.Email),
		html.EscapeString(lead.Phone),
		html.EscapeString(lead.Company),
		html.EscapeString(lead.Category),
		html.EscapeString(lead.SourcePath),
		html.EscapeString(lead.Message),
	)

	m := s.newMessage(s.recipient, "New website enquiry: "+lead.Name, body)
	m.SetHeader("Reply-To", lead.Email)
	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send lead notification: %w", err)
	}
	return nil
}

func (s *emailService) SendLeadAcknowledgement(lead *model.Lead) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thanks for reaching out, %s!</h2>
			<p>We received your message and will get back to you within one business day.</p>
			<p>Stratigo Team</p>
		</div>
	`, html.EscapeString(lead.Name))

	if err := s.sender.DialAndSend(s.newMessage(lead.Email, "We received your message", body)); err != nil {
		return fmt.Errorf("send lead acknowledgement: %w", err)
	}
	return nil
}
