package mail

import (
	"testing"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRFP() *ds.RFP {
	deadline := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return &ds.RFP{
		ID:          1,
		Title:       "Office Laptops",
		Description: "We need 20 laptops for the new office.",
		StructuredData: ds.RFPStructuredData{
			Items: []ds.RFPItem{
				{Name: "Laptop", Quantity: 20, Specifications: "16GB RAM"},
			},
			Budget:                 30000,
			DeliveryDeadline:       &deadline,
			PaymentTerms:           "Net 30",
			WarrantyRequirements:   "2 years",
			AdditionalRequirements: []string{"onsite support"},
		},
	}
}

func TestRenderHTML(t *testing.T) {
	body, err := renderHTML(sampleRFP(), ds.Vendor{Name: "Acme Corp"})
	require.NoError(t, err)

	assert.Contains(t, body, "Dear Acme Corp")
	assert.Contains(t, body, "Office Laptops")
	assert.Contains(t, body, "16GB RAM")
	assert.Contains(t, body, "$30000.00")
	assert.Contains(t, body, "October 1, 2026")
	assert.Contains(t, body, "onsite support")
}

func TestRenderText(t *testing.T) {
	body, err := renderText(sampleRFP(), ds.Vendor{Name: "Acme Corp"})
	require.NoError(t, err)

	assert.Contains(t, body, "Dear Acme Corp")
	assert.Contains(t, body, "Laptop (Qty: 20)")
	assert.Contains(t, body, "Net 30")
}

func TestRenderMissingOptionalFields(t *testing.T) {
	rfp := &ds.RFP{Title: "Chairs", Description: "Some chairs."}

	body, err := renderText(rfp, ds.Vendor{Name: "Acme"})
	require.NoError(t, err)
	assert.Contains(t, body, "Budget: Not specified")
	assert.Contains(t, body, "Delivery Deadline: Not specified")
}

func TestSendRFPUnconfigured(t *testing.T) {
	sender := NewSender(config.SMTPConfig{})
	_, err := sender.SendRFP(sampleRFP(), []ds.Vendor{{Email: "a@b.com"}})
	assert.Error(t, err)
}

func TestHTMLToText(t *testing.T) {
	html := `<html><head><style>p { color: red; }</style></head>
	<body><p>Total: <b>$28,000</b></p><table><tr><td>Laptop</td><td>20</td></tr></table>
	<script>alert(1)</script></body></html>`

	text := HTMLToText(html)
	assert.Contains(t, text, "Total: $28,000")
	assert.Contains(t, text, "Laptop 20")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
}

func TestHTMLToTextPlainInput(t *testing.T) {
	assert.Equal(t, "just text", HTMLToText("just text"))
}
