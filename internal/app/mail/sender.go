package mail

import (
	"bytes"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"sync"
	texttemplate "text/template"

	"backend/internal/app/config"
	"backend/internal/app/ds"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// SubjectPrefix is the marker vendors reply to; the fetcher filters the
// inbox on the same token.
const SubjectPrefix = "RFP"

// SendResult is the per-vendor outcome of an RFP announcement.
type SendResult struct {
	VendorEmail string `json:"vendorEmail"`
	Success     bool   `json:"success"`
	MessageID   string `json:"messageId,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Sender delivers RFP announcements over SMTP, one multipart
// (text + HTML) message per vendor.
type Sender struct {
	cfg config.SMTPConfig
}

func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

// SendRFP fans out one message per vendor concurrently. A single
// vendor's failure does not stop the others; it is reported in that
// vendor's result instead.
func (s *Sender) SendRFP(rfp *ds.RFP, vendors []ds.Vendor) ([]SendResult, error) {
	if s.cfg.Host == "" {
		return nil, errors.New("smtp transport is not configured")
	}

	results := make([]SendResult, len(vendors))

	var wg sync.WaitGroup
	for i, vendor := range vendors {
		wg.Add(1)
		go func(i int, vendor ds.Vendor) {
			defer wg.Done()
			messageID, err := s.sendOne(rfp, vendor)
			results[i] = SendResult{
				VendorEmail: vendor.Email,
				Success:     err == nil,
				MessageID:   messageID,
			}
			if err != nil {
				results[i].Error = err.Error()
				logrus.Errorf("failed to send RFP %d to %s: %v", rfp.ID, vendor.Email, err)
				return
			}
			logrus.Infof("RFP %d sent to %s (%s)", rfp.ID, vendor.Email, messageID)
		}(i, vendor)
	}
	wg.Wait()

	return results, nil
}

func (s *Sender) sendOne(rfp *ds.RFP, vendor ds.Vendor) (string, error) {
	htmlBody, err := renderHTML(rfp, vendor)
	if err != nil {
		return "", err
	}
	textBody, err := renderText(rfp, vendor)
	if err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), s.cfg.Host)

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.User)
	m.SetHeader("To", vendor.Email)
	m.SetHeader("Subject", fmt.Sprintf("%s: %s", SubjectPrefix, rfp.Title))
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Pass)
	d.SSL = s.cfg.Secure

	if err := d.DialAndSend(m); err != nil {
		return "", err
	}
	return messageID, nil
}

type emailContext struct {
	VendorName string
	RFP        *ds.RFP
	Data       ds.RFPStructuredData
}

var htmlTemplate = htmltemplate.Must(htmltemplate.New("rfp").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #667eea; color: white; padding: 20px; border-radius: 8px 8px 0 0; }
    .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
    table { width: 100%; border-collapse: collapse; margin: 15px 0; background: white; }
    th, td { padding: 8px; border: 1px solid #ddd; text-align: left; }
    .label { font-weight: bold; color: #667eea; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0;">Request for Proposal</h1>
      <p style="margin: 5px 0 0 0;">{{.RFP.Title}}</p>
    </div>
    <div class="content">
      <p>Dear {{.VendorName}},</p>
      <p>We are requesting proposals for the following procurement:</p>
      <p>{{.RFP.Description}}</p>

      <h3>Required Items:</h3>
      <table>
        <thead>
          <tr><th>Item</th><th>Quantity</th><th>Specifications</th></tr>
        </thead>
        <tbody>
          {{range .Data.Items}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{if .Specifications}}{{.Specifications}}{{else}}N/A{{end}}</td></tr>
          {{end}}
        </tbody>
      </table>

      <h3>Requirements:</h3>
      <p><span class="label">Budget:</span> {{if .Data.Budget}}${{printf "%.2f" .Data.Budget}}{{else}}Not specified{{end}}</p>
      <p><span class="label">Delivery Deadline:</span> {{if .Data.DeliveryDeadline}}{{.Data.DeliveryDeadline.Format "January 2, 2006"}}{{else}}Not specified{{end}}</p>
      <p><span class="label">Payment Terms:</span> {{if .Data.PaymentTerms}}{{.Data.PaymentTerms}}{{else}}Not specified{{end}}</p>
      <p><span class="label">Warranty:</span> {{if .Data.WarrantyRequirements}}{{.Data.WarrantyRequirements}}{{else}}Not specified{{end}}</p>

      {{if .Data.AdditionalRequirements}}<h3>Additional Requirements:</h3>
      <ul>
        {{range .Data.AdditionalRequirements}}<li>{{.}}</li>
        {{end}}
      </ul>{{end}}

      <p style="margin-top: 20px;">Please reply to this email with your proposal including pricing, delivery timeline, and terms.</p>
      <p>Best regards,<br/>Procurement Team</p>
    </div>
  </div>
</body>
</html>
`))

var textTemplate = texttemplate.Must(texttemplate.New("rfp").Parse(`REQUEST FOR PROPOSAL
{{.RFP.Title}}

Dear {{.VendorName}},

We are requesting proposals for the following procurement:

{{.RFP.Description}}

REQUIRED ITEMS:
{{range .Data.Items}}- {{.Name}} (Qty: {{.Quantity}}) - {{if .Specifications}}{{.Specifications}}{{else}}N/A{{end}}
{{end}}
REQUIREMENTS:
Budget: {{if .Data.Budget}}${{printf "%.2f" .Data.Budget}}{{else}}Not specified{{end}}
Delivery Deadline: {{if .Data.DeliveryDeadline}}{{.Data.DeliveryDeadline.Format "January 2, 2006"}}{{else}}Not specified{{end}}
Payment Terms: {{if .Data.PaymentTerms}}{{.Data.PaymentTerms}}{{else}}Not specified{{end}}
Warranty: {{if .Data.WarrantyRequirements}}{{.Data.WarrantyRequirements}}{{else}}Not specified{{end}}
{{if .Data.AdditionalRequirements}}
ADDITIONAL REQUIREMENTS:
{{range .Data.AdditionalRequirements}}- {{.}}
{{end}}{{end}}
Please reply to this email with your proposal including pricing, delivery timeline, and terms.

Best regards,
Procurement Team
`))

func renderHTML(rfp *ds.RFP, vendor ds.Vendor) (string, error) {
	var buf bytes.Buffer
	err := htmlTemplate.Execute(&buf, emailContext{VendorName: vendor.Name, RFP: rfp, Data: rfp.StructuredData})
	return buf.String(), err
}

func renderText(rfp *ds.RFP, vendor ds.Vendor) (string, error) {
	var buf bytes.Buffer
	err := textTemplate.Execute(&buf, emailContext{VendorName: vendor.Name, RFP: rfp, Data: rfp.StructuredData})
	return buf.String(), err
}
