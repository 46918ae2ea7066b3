package mailer

import "fmt"

// Template names understood by Render.
const (
	TemplateWelcome           = "welcome"
	TemplateOrderConfirmation = "order_confirmation"
	TemplateContactAck        = "contact_ack"
	TemplatePasswordReset     = "password_reset"
)

func str(data map[string]any, key string) string {
	if v, ok := data[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Render produces subject, text and HTML bodies for a named template.
// Unknown templates fall through to an empty message so a bad job can
// never panic the worker.
func Render(template string, data map[string]any) (subject, text, html string) {
	name := str(data, "Name")
	company := str(data, "Company")
	if company == "" {
		company = "FRONTLINE Homeworks"
	}

	switch template {
	case TemplateWelcome:
		subject = "Welcome to " + company + "!"
		text = fmt.Sprintf("Welcome, %s! Thank you for joining %s. Your account has been created successfully.", name, company)
		html = fmt.Sprintf(`<h2>Welcome, %s!</h2>
<p>Thank you for joining %s.</p>
<p>Your account has been created successfully.</p>
<p>You can now browse our products and make purchases.</p>
<br/><p>Best regards,<br/>%s Team</p>`, name, company, company)

	case TemplateOrderConfirmation:
		orderID := str(data, "OrderID")
		amount := str(data, "Amount")
		subject = fmt.Sprintf("Order Confirmation #%s - %s", orderID, company)
		text = fmt.Sprintf("Hi %s, your order %s for $%s has been confirmed.", name, orderID, amount)
		html = fmt.Sprintf(`<h2>Order Confirmed!</h2>
<p>Hi %s,</p>
<p>Thank you for your purchase. Your order has been confirmed.</p>
<p><strong>Order ID:</strong> #%s<br/><strong>Amount:</strong> $%s</p>
<p>We will update you on the shipping status soon.</p>
<br/><p>Best regards,<br/>%s Team</p>`, name, orderID, amount, company)

	case TemplateContactAck:
		subject = "We Received Your Message - " + company
		text = fmt.Sprintf("Thank you, %s! We have received your message and will get back to you as soon as possible.", name)
		html = fmt.Sprintf(`<h2>Thank you, %s!</h2>
<p>We have received your message and will get back to you as soon as possible.</p>
<p>Our team typically responds within 24-48 hours.</p>
<br/><p>Best regards,<br/>%s Support Team</p>`, name, company)

	case TemplatePasswordReset:
		link := str(data, "ResetLink")
		subject = "Password Reset - " + company
		text = "You requested to reset your password. Open this link to continue: " + link
		html = fmt.Sprintf(`<h2>Password Reset Request</h2>
<p>You requested to reset your password.</p>
<p><a href="%s">Reset Password</a></p>
<p>This link expires in 1 hour.</p>
<p>If you didn't request this, please ignore this email.</p>
<br/><p>Best regards,<br/>%s Team</p>`, link, company)
	}
	return subject, text, html
}
