package dto

import (
	"time"

	"backend/internal/app/ai"
	"backend/internal/app/ds"
	"backend/internal/app/mail"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// ============ Vendors ============

type CreateVendorRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Phone      string   `json:"phone"`
	Company    string   `json:"company"`
	Categories []string `json:"categories"`
	Notes      string   `json:"notes"`
}

type UpdateVendorRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email" binding:"omitempty,email"`
	Phone      string   `json:"phone"`
	Company    string   `json:"company"`
	Categories []string `json:"categories"`
	Notes      string   `json:"notes"`
}

type VendorResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Company    string    `json:"company,omitempty"`
	Categories []string  `json:"categories"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ============ RFPs ============

type CreateRFPRequest struct {
	Description string `json:"description" binding:"required"`
}

type UpdateRFPRequest struct {
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	StructuredData *ds.RFPStructuredData `json:"structuredData"`
	Status         string                `json:"status"`
}

type SendRFPRequest struct {
	VendorIDs []uint `json:"vendorIds"`
}

type RFPResponse struct {
	ID              uint                 `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	StructuredData  ds.RFPStructuredData `json:"structuredData"`
	Status          ds.RFPStatus         `json:"status"`
	CreatedBy       string               `json:"createdBy"`
	SentAt          *time.Time           `json:"sentAt,omitempty"`
	SelectedVendors []VendorResponse     `json:"selectedVendors"`
	Proposals       []ProposalResponse   `json:"proposals,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type SendRFPResponse struct {
	RFP     RFPResponse       `json:"rfp"`
	Results []mail.SendResult `json:"results"`
}

// ============ Proposals ============

type ProposalResponse struct {
	ID          uint              `json:"id"`
	RFPID       uint              `json:"rfpId"`
	VendorID    uint              `json:"vendorId"`
	Vendor      *VendorResponse   `json:"vendor,omitempty"`
	EmailData   ds.EmailData      `json:"emailData"`
	ParsedData  ds.ParsedData     `json:"parsedData"`
	AIAnalysis  ds.AIAnalysis     `json:"aiAnalysis"`
	Status      ds.ProposalStatus `json:"status"`
	Attachments []string          `json:"attachments,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type CheckEmailsResponse struct {
	Processed int                `json:"processed"`
	Proposals []ProposalResponse `json:"proposals"`
}

type CompareResponse struct {
	RFPID      uint               `json:"rfpId"`
	Proposals  []ProposalResponse `json:"proposals"`
	Comparison ai.Comparison      `json:"comparison"`
}
