package handler

import (
	"context"
	"net/http"
	"time"

	"backend/internal/app/ai"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/mail"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Store is the persistence surface the handlers work against,
// satisfied by *repository.Repository.
type Store interface {
	GetAllVendors() ([]ds.Vendor, error)
	GetVendorByID(id uint) (*ds.Vendor, error)
	GetVendorsByIDs(ids []uint) ([]ds.Vendor, error)
	CreateVendor(vendor *ds.Vendor) error
	UpdateVendor(vendor *ds.Vendor) error
	DeleteVendor(id uint) error

	CreateRFP(rfp *ds.RFP) error
	GetAllRFPs() ([]ds.RFP, error)
	GetRFPByID(id uint) (*ds.RFP, error)
	SaveRFP(rfp *ds.RFP) error
	DeleteRFP(id uint) error

	GetProposalByID(id uint) (*ds.Proposal, error)
	GetProposalsByRFP(rfpID uint) ([]ds.Proposal, error)
	DeleteProposal(id uint) error
}

// Extractor is the model-backed extraction surface, satisfied by
// *ai.Extractor.
type Extractor interface {
	ParseRFP(ctx context.Context, description string) (*ai.RFPExtraction, error)
	CompareProposals(ctx context.Context, entries []ai.ProposalEntry, rfpData ds.RFPStructuredData) (*ai.Comparison, error)
}

// Sender delivers RFP announcements, satisfied by *mail.Sender.
type Sender interface {
	SendRFP(rfp *ds.RFP, vendors []ds.Vendor) ([]mail.SendResult, error)
}

// Poller runs the inbox ingestion on demand, satisfied by
// *ingest.Poller.
type Poller interface {
	Trigger(ctx context.Context) ([]ds.Proposal, error)
}

type Handler struct {
	Repository Store
	Extractor  Extractor
	Sender     Sender
	Poller     Poller
}

func NewHandler(repo Store, extractor Extractor, sender Sender, poller Poller) *Handler {
	return &Handler{
		Repository: repo,
		Extractor:  extractor,
		Sender:     sender,
		Poller:     poller,
	}
}

// RegisterRoutes registers all REST API routes.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/health", h.HealthCheck)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	api := router.Group("/api")

	vendors := api.Group("/vendors")
	{
		vendors.GET("", h.GetVendors)
		vendors.GET("/:id", h.GetVendor)
		vendors.POST("", h.CreateVendor)
		vendors.PUT("/:id", h.UpdateVendor)
		vendors.DELETE("/:id", h.DeleteVendor)
	}

	rfps := api.Group("/rfps")
	{
		rfps.POST("/create", h.CreateRFP)
		rfps.GET("", h.GetRFPs)
		rfps.GET("/:id", h.GetRFP)
		rfps.PUT("/:id", h.UpdateRFP)
		rfps.DELETE("/:id", h.DeleteRFP)
		rfps.POST("/:id/send", h.SendRFP)
	}

	proposals := api.Group("/proposals")
	{
		proposals.GET("/rfp/:rfpId", h.GetProposalsByRFP)
		proposals.GET("/compare/:rfpId", h.CompareProposals)
		proposals.POST("/check-emails", h.CheckEmails)
		proposals.GET("/:id", h.GetProposal)
		proposals.DELETE("/:id", h.DeleteProposal)
	}

	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Route not found"})
	})
}

// Centralized error responder.
func (h *Handler) errorResponse(ctx *gin.Context, statusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(statusCode, dto.ErrorResponse{Error: err.Error()})
}

// HealthCheck reports service liveness
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (h *Handler) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func toVendorResponse(vendor ds.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:         vendor.ID,
		Name:       vendor.Name,
		Email:      vendor.Email,
		Phone:      vendor.Phone,
		Company:    vendor.Company,
		Categories: vendor.Categories,
		Notes:      vendor.Notes,
		CreatedAt:  vendor.CreatedAt,
		UpdatedAt:  vendor.UpdatedAt,
	}
}

func toProposalResponse(proposal ds.Proposal, vendor *ds.Vendor) dto.ProposalResponse {
	resp := dto.ProposalResponse{
		ID:          proposal.ID,
		RFPID:       proposal.RFPID,
		VendorID:    proposal.VendorID,
		EmailData:   proposal.EmailData,
		ParsedData:  proposal.ParsedData,
		AIAnalysis:  proposal.AIAnalysis,
		Status:      proposal.Status,
		Attachments: proposal.AttachmentKeys,
		CreatedAt:   proposal.CreatedAt,
	}
	if vendor != nil {
		v := toVendorResponse(*vendor)
		resp.Vendor = &v
	}
	return resp
}

// proposalResponses resolves each proposal's vendor in one query.
func (h *Handler) proposalResponses(proposals []ds.Proposal) ([]dto.ProposalResponse, error) {
	ids := make([]uint, 0, len(proposals))
	seen := map[uint]bool{}
	for _, p := range proposals {
		if !seen[p.VendorID] {
			seen[p.VendorID] = true
			ids = append(ids, p.VendorID)
		}
	}

	vendorByID := map[uint]ds.Vendor{}
	if len(ids) > 0 {
		vendors, err := h.Repository.GetVendorsByIDs(ids)
		if err != nil {
			return nil, err
		}
		for _, v := range vendors {
			vendorByID[v.ID] = v
		}
	}

	out := make([]dto.ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		var vendor *ds.Vendor
		if v, ok := vendorByID[p.VendorID]; ok {
			vendor = &v
		}
		out = append(out, toProposalResponse(p, vendor))
	}
	return out, nil
}

// rfpResponse builds the RFP DTO; withProposals also attaches the
// proposals received for it.
func (h *Handler) rfpResponse(rfp *ds.RFP, withProposals bool) (dto.RFPResponse, error) {
	resp := dto.RFPResponse{
		ID:              rfp.ID,
		Title:           rfp.Title,
		Description:     rfp.Description,
		StructuredData:  rfp.StructuredData,
		Status:          rfp.Status,
		CreatedBy:       rfp.CreatedBy,
		SentAt:          rfp.SentAt,
		SelectedVendors: []dto.VendorResponse{},
		CreatedAt:       rfp.CreatedAt,
		UpdatedAt:       rfp.UpdatedAt,
	}

	if len(rfp.SelectedVendorIDs) > 0 {
		vendors, err := h.Repository.GetVendorsByIDs(rfp.SelectedVendorIDs)
		if err != nil {
			return dto.RFPResponse{}, err
		}
		for _, v := range vendors {
			resp.SelectedVendors = append(resp.SelectedVendors, toVendorResponse(v))
		}
	}

	if withProposals {
		proposals, err := h.Repository.GetProposalsByRFP(rfp.ID)
		if err != nil {
			return dto.RFPResponse{}, err
		}
		resp.Proposals, err = h.proposalResponses(proposals)
		if err != nil {
			return dto.RFPResponse{}, err
		}
	}

	return resp, nil
}
