package ds

import "time"

// RFPItem is one line of a structured procurement request.
type RFPItem struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	Specifications string `json:"specifications"`
}

// RFPStructuredData is the machine-readable form of an RFP description,
// produced once by the extraction service.
type RFPStructuredData struct {
	Items                  []RFPItem  `json:"items"`
	Budget                 float64    `json:"budget"`
	DeliveryDeadline       *time.Time `json:"deliveryDeadline,omitempty"`
	PaymentTerms           string     `json:"paymentTerms"`
	WarrantyRequirements   string     `json:"warrantyRequirements"`
	AdditionalRequirements []string   `json:"additionalRequirements"`
}

// RFP is one procurement request through its draft -> sent -> closed
// lifecycle.
type RFP struct {
	ID             uint              `gorm:"primaryKey"`
	Title          string            `gorm:"type:varchar(200);not null"`
	Description    string            `gorm:"type:text;not null"`
	StructuredData RFPStructuredData `gorm:"serializer:json"`
	Status         RFPStatus         `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedBy      string            `gorm:"type:varchar(100);default:'Procurement Manager'"`
	SentAt         *time.Time        `gorm:"default:null"`

	// Overwritten (not merged) on every send.
	SelectedVendorIDs []uint `gorm:"serializer:json"`
	// Owned list of proposal references, append-only and idempotent.
	ProposalIDs []uint `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppendProposal adds a proposal reference if it is not already present.
// Returns false when the reference was already there.
func (r *RFP) AppendProposal(proposalID uint) bool {
	for _, id := range r.ProposalIDs {
		if id == proposalID {
			return false
		}
	}
	r.ProposalIDs = append(r.ProposalIDs, proposalID)
	return true
}

// RemoveProposal drops a proposal reference. Missing references are a
// no-op; readers must tolerate dangling ones anyway.
func (r *RFP) RemoveProposal(proposalID uint) {
	out := r.ProposalIDs[:0]
	for _, id := range r.ProposalIDs {
		if id != proposalID {
			out = append(out, id)
		}
	}
	r.ProposalIDs = out
}
