package handler

import (
	"errors"
	"net/http"

	"backend/internal/app/ai"
	"backend/internal/app/dto"
	"backend/internal/app/ingest"

	"github.com/gin-gonic/gin"
)

// GetProposalsByRFP lists proposals received for one RFP
// @Summary List proposals for RFP
// @Tags Proposals
// @Produce json
// @Param rfpId path int true "RFP ID"
// @Success 200 {array} dto.ProposalResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/proposals/rfp/{rfpId} [get]
func (h *Handler) GetProposalsByRFP(ctx *gin.Context) {
	rfpID, err := parseID(ctx, "rfpId")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	if _, err := h.Repository.GetRFPByID(rfpID); err != nil {
		h.notFoundOrInternal(ctx, err, "RFP not found")
		return
	}

	proposals, err := h.Repository.GetProposalsByRFP(rfpID)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}

	resp, err := h.proposalResponses(proposals)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetProposal returns one proposal
// @Summary Get proposal
// @Tags Proposals
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} dto.ProposalResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/proposals/{id} [get]
func (h *Handler) GetProposal(ctx *gin.Context) {
	id, err := parseID(ctx, "id")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	proposal, err := h.Repository.GetProposalByID(id)
	if err != nil {
		h.notFoundOrInternal(ctx, err, "Proposal not found")
		return
	}

	vendor, err := h.Repository.GetVendorByID(proposal.VendorID)
	if err != nil {
		// Vendor may have been deleted since ingestion.
		vendor = nil
	}
	ctx.JSON(http.StatusOK, toProposalResponse(*proposal, vendor))
}

// DeleteProposal removes a proposal and its reference on the owning RFP
// @Summary Delete proposal
// @Tags Proposals
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/proposals/{id} [delete]
func (h *Handler) DeleteProposal(ctx *gin.Context) {
	id, err := parseID(ctx, "id")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	if err := h.Repository.DeleteProposal(id); err != nil {
		h.notFoundOrInternal(ctx, err, "Proposal not found")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// CheckEmails runs the inbox ingestion once, immediately
// @Summary Check inbox for vendor replies
// @Description Fetches unread vendor replies and ingests them as proposals. Rejected with 409 when a check is already running.
// @Tags Proposals
// @Produce json
// @Success 200 {object} dto.CheckEmailsResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/proposals/check-emails [post]
func (h *Handler) CheckEmails(ctx *gin.Context) {
	proposals, err := h.Poller.Trigger(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, ingest.ErrPollInProgress) {
			h.errorResponse(ctx, http.StatusConflict, err)
			return
		}
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}

	resp, err := h.proposalResponses(proposals)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CheckEmailsResponse{
		Processed: len(resp),
		Proposals: resp,
	})
}

// CompareProposals ranks all proposals for an RFP and names a winner
// @Summary Compare proposals
// @Description Runs a fresh cross-proposal comparison for the RFP; nothing is cached between calls
// @Tags Proposals
// @Produce json
// @Param rfpId path int true "RFP ID"
// @Success 200 {object} dto.CompareResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/proposals/compare/{rfpId} [get]
func (h *Handler) CompareProposals(ctx *gin.Context) {
	rfpID, err := parseID(ctx, "rfpId")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	rfp, err := h.Repository.GetRFPByID(rfpID)
	if err != nil {
		h.notFoundOrInternal(ctx, err, "RFP not found")
		return
	}

	proposals, err := h.Repository.GetProposalsByRFP(rfpID)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}
	if len(proposals) == 0 {
		h.errorResponse(ctx, http.StatusNotFound, errors.New("No proposals found for this RFP"))
		return
	}

	entries := make([]ai.ProposalEntry, 0, len(proposals))
	for _, p := range proposals {
		entries = append(entries, ai.ProposalEntry{
			VendorID:   p.VendorID,
			ParsedData: p.ParsedData,
			AIAnalysis: p.AIAnalysis,
		})
	}

	comparison, err := h.Extractor.CompareProposals(ctx.Request.Context(), entries, rfp.StructuredData)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}

	resp, err := h.proposalResponses(proposals)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CompareResponse{
		RFPID:      rfpID,
		Proposals:  resp,
		Comparison: *comparison,
	})
}
