package ds

import (
	"fmt"
	"time"
)

// EmailData is the inbound message exactly as captured at ingestion.
// It is never re-fetched or mutated afterwards.
type EmailData struct {
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	ReceivedAt  time.Time `json:"receivedAt"`
	Attachments []string  `json:"attachments"`
}

// ItemPrice is a single priced line extracted from a vendor reply.
type ItemPrice struct {
	Item     string  `json:"item"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ParsedData is the structured pricing and terms extracted from the
// vendor's email body.
type ParsedData struct {
	TotalPrice      float64     `json:"totalPrice"`
	ItemPrices      []ItemPrice `json:"itemPrices"`
	DeliveryTime    string      `json:"deliveryTime"`
	PaymentTerms    string      `json:"paymentTerms"`
	Warranty        string      `json:"warranty"`
	AdditionalTerms []string    `json:"additionalTerms"`
}

// AIAnalysis is the per-proposal scoring produced after parsing.
// Scores are on a 0-100 scale.
type AIAnalysis struct {
	CompletenessScore    float64  `json:"completenessScore"`
	CompetitivenessScore float64  `json:"competitivenessScore"`
	Summary              string   `json:"summary"`
	Pros                 []string `json:"pros"`
	Cons                 []string `json:"cons"`
	Recommendation       string   `json:"recommendation"`
}

// Proposal is one ingested vendor reply. Its identity is the ingestion
// event, not the vendor relationship: the same vendor may have several
// proposals against one RFP and nothing deduplicates them.
type Proposal struct {
	ID         uint           `gorm:"primaryKey"`
	RFPID      uint           `gorm:"not null;index"`
	VendorID   uint           `gorm:"not null;index"`
	EmailData  EmailData      `gorm:"serializer:json"`
	ParsedData ParsedData     `gorm:"serializer:json"`
	AIAnalysis AIAnalysis     `gorm:"serializer:json"`
	Status     ProposalStatus `gorm:"type:varchar(20);not null;default:'received'"`

	// Object names of attachments uploaded to the blob store.
	AttachmentKeys []string `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdvanceStatus moves the proposal forward through
// received -> parsed -> evaluated. Regressions are rejected.
func (p *Proposal) AdvanceStatus(to ProposalStatus) error {
	if !p.Status.CanAdvance(to) {
		return fmt.Errorf("proposal %d: illegal status transition %s -> %s", p.ID, p.Status, to)
	}
	p.Status = to
	return nil
}
