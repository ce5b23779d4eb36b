package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"Garage/Models"
)

// SendEmail sends an email using the provided configuration and message details
func SendEmail(config Models.EmailConfig, message Models.EmailMessage) error {
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", config.FromName, config.FromEmail)
	headers["To"] = strings.Join(message.To, ", ")
	headers["Subject"] = message.Subject

	if len(message.CC) > 0 {
		headers["Cc"] = strings.Join(message.CC, ", ")
	}

	if message.IsHTML {
		headers["MIME-Version"] = "1.0"
		headers["Content-Type"] = "text/html; charset=UTF-8"
	} else {
		headers["Content-Type"] = "text/plain; charset=UTF-8"
	}

	var messageBody strings.Builder
	for key, value := range headers {
		messageBody.WriteString(fmt.Sprintf("%s: %s\r\n", key, value))
	}
	messageBody.WriteString("\r\n")
	messageBody.WriteString(message.Body)

	auth := smtp.PlainAuth("", config.Username, config.Password, config.SMTPServer)

	var recipients []string
	recipients = append(recipients, message.To...)
	recipients = append(recipients, message.CC...)
	recipients = append(recipients, message.BCC...)

	serverAddr := fmt.Sprintf("%s:%d", config.SMTPServer, config.SMTPPort)

	if !config.TLSEnabled {
		return smtp.SendMail(serverAddr, auth, config.FromEmail, recipients, []byte(messageBody.String()))
	}

	tlsConfig := &tls.Config{
		ServerName:         config.SMTPServer,
		InsecureSkipVerify: config.SkipTLSCheck,
	}

	conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %v", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, config.SMTPServer)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %v", err)
	}
	defer client.Close()

	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %v", err)
	}
	if err = client.Mail(config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %v", err)
	}
	for _, recipient := range recipients {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to add recipient %s: %v", recipient, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data connection: %v", err)
	}
	if _, err = w.Write([]byte(messageBody.String())); err != nil {
		return fmt.Errorf("failed to write email body: %v", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data connection: %v", err)
	}

	return client.Quit()
}

// SendInvoiceEmail renders an invoice view model as an HTML message and
// sends it to the recipient. Reads ledger state, never mutates it.
func SendInvoiceEmail(config Models.EmailConfig, invoice *Models.Invoice, recipient string) error {
	var body strings.Builder
	body.WriteString(fmt.Sprintf("<h2>Invoice %s</h2>", invoice.InvoiceNo))
	if invoice.Job.Customer.Name != "" {
		body.WriteString(fmt.Sprintf("<p>Customer: %s</p>", invoice.Job.Customer.Name))
	}
	if invoice.Job.Vehicle.PlateNo != "" {
		body.WriteString(fmt.Sprintf("<p>Vehicle: %s %s (%s)</p>",
			invoice.Job.Vehicle.Make, invoice.Job.Vehicle.VehModel, invoice.Job.Vehicle.PlateNo))
	}

	body.WriteString("<table border=\"1\" cellpadding=\"4\"><tr><th>Item</th><th>Qty</th><th>Unit Price</th><th>Total</th></tr>")
	for _, item := range invoice.Items {
		body.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%g</td><td>%.2f</td><td>%.2f</td></tr>",
			item.ItemName, item.Quantity, item.UnitPrice, item.LineTotal))
	}
	body.WriteString("</table>")

	for _, extra := range invoice.Extras {
		sign := "+"
		if extra.Kind == Models.ExtraKindDeduction {
			sign = "-"
		}
		body.WriteString(fmt.Sprintf("<p>%s: %s%.2f</p>", extra.Label, sign, extra.Amount))
	}

	body.WriteString(fmt.Sprintf("<p><b>Items total: %.2f</b></p>", invoice.ItemsTotal))
	body.WriteString(fmt.Sprintf("<p><b>Final total: %.2f</b></p>", invoice.FinalTotal))
	body.WriteString(fmt.Sprintf("<p>Payment status: %s</p>", invoice.PaymentStatus))

	return SendEmail(config, Models.EmailMessage{
		To:      []string{recipient},
		Subject: fmt.Sprintf("Invoice %s", invoice.InvoiceNo),
		Body:    body.String(),
		IsHTML:  true,
	})
}
