package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CreateRFP turns a free-text purchasing description into a draft RFP
// @Summary Create RFP from description
// @Description Extracts structured data from a natural-language purchasing description and stores a draft RFP
// @Tags RFPs
// @Accept json
// @Produce json
// @Param request body dto.CreateRFPRequest true "Purchasing description"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/rfps/create [post]
func (h *Handler) CreateRFP(ctx *gin.Context) {
	var request dto.CreateRFPRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, errors.New("description is required"))
		return
	}

	extraction, err := h.Extractor.ParseRFP(ctx.Request.Context(), request.Description)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, fmt.Errorf("failed to parse RFP description: %w", err))
		return
	}

	rfp := ds.RFP{
		Title:       extraction.Title,
		Description: request.Description,
		StructuredData: ds.RFPStructuredData{
			Items:                  extraction.Items,
			Budget:                 extraction.Budget,
			DeliveryDeadline:       parseDeadline(extraction.DeliveryDeadline),
			PaymentTerms:           extraction.PaymentTerms,
			WarrantyRequirements:   extraction.WarrantyRequirements,
			AdditionalRequirements: extraction.AdditionalRequirements,
		},
		Status: ds.RFPStatusDraft,
	}
	if err := h.Repository.CreateRFP(&rfp); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}

	resp, err := h.rfpResponse(&rfp, false)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "rfp": resp})
}

// GetRFPs lists all RFPs
// @Summary List RFPs
// @Tags RFPs
// @Produce json
// @Success 200 {array} dto.RFPResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/rfps [get]
func (h *Handler) GetRFPs(ctx *gin.Context) {
	rfps, err := h.Repository.GetAllRFPs()
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}

	resp := make([]dto.RFPResponse, 0, len(rfps))
	for i := range rfps {
		r, err := h.rfpResponse(&rfps[i], true)
		if err != nil {
			h.errorResponse(ctx, http.StatusInternalServerError, err)
			return
		}
		resp = append(resp, r)
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetRFP returns one RFP with vendors and proposals populated
// @Summary Get RFP
// @Tags RFPs
// @Produce json
// @Param id path int true "RFP ID"
// @Success 200 {object} dto.RFPResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/rfps/{id} [get]
func (h *Handler) GetRFP(ctx *gin.Context) {
	id, err := parseID(ctx, "id")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	rfp, err := h.Repository.GetRFPByID(id)
	if err != nil {
		h.notFoundOrInternal(ctx, err, "RFP not found")
		return
	}

	resp, err := h.rfpResponse(rfp, true)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateRFP changes RFP fields
// @Summary Update RFP
// @Tags RFPs
// @Accept json
// @Produce json
// @Param id path int true "RFP ID"
// @Param request body dto.UpdateRFPRequest true "Fields to change"
// @Success 200 {object} dto.RFPResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/rfps/{id} [put]
func (h *Handler) UpdateRFP(ctx *gin.Context) {
	id, err := parseID(ctx, "id")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	var request dto.UpdateRFPRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	rfp, err := h.Repository.GetRFPByID(id)
	if err != nil {
		h.notFoundOrInternal(ctx, err, "RFP not found")
		return
	}

	if request.Title != "" {
		rfp.Title = request.Title
	}
	if request.Description != "" {
		rfp.Description = request.Description
	}
	if request.StructuredData != nil {
		rfp.StructuredData = *request.StructuredData
	}
	if request.Status != "" {
		to := ds.RFPStatus(request.Status)
		if !to.Valid() {
			h.errorResponse(ctx, http.StatusBadRequest, fmt.Errorf("unknown status %q", request.Status))
			return
		}
		if to != rfp.Status && !rfp.Status.CanTransition(to) {
			h.errorResponse(ctx, http.StatusBadRequest, fmt.Errorf("illegal status transition %s -> %s", rfp.Status, to))
			return
		}
		rfp.Status = to
	}

	if err := h.Repository.SaveRFP(rfp); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}

	resp, err := h.rfpResponse(rfp, false)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteRFP removes an RFP; its proposals are kept
// @Summary Delete RFP
// @Tags RFPs
// @Produce json
// @Param id path int true "RFP ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/rfps/{id} [delete]
func (h *Handler) DeleteRFP(ctx *gin.Context) {
	id, err := parseID(ctx, "id")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	if err := h.Repository.DeleteRFP(id); err != nil {
		h.notFoundOrInternal(ctx, err, "RFP not found")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// SendRFP emails the RFP to the selected vendors
// @Summary Send RFP to vendors
// @Description Sends the RFP announcement to each selected vendor and marks the RFP as sent. Resending overwrites the previous vendor selection.
// @Tags RFPs
// @Accept json
// @Produce json
// @Param id path int true "RFP ID"
// @Param request body dto.SendRFPRequest true "Vendor IDs"
// @Success 200 {object} dto.SendRFPResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/rfps/{id}/send [post]
func (h *Handler) SendRFP(ctx *gin.Context) {
	id, err := parseID(ctx, "id")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	var request dto.SendRFPRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}
	if len(request.VendorIDs) == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, errors.New("vendorIds must not be empty"))
		return
	}

	rfp, err := h.Repository.GetRFPByID(id)
	if err != nil {
		h.notFoundOrInternal(ctx, err, "RFP not found")
		return
	}
	if !rfp.Status.CanTransition(ds.RFPStatusSent) {
		h.errorResponse(ctx, http.StatusBadRequest, fmt.Errorf("RFP in status %s cannot be sent", rfp.Status))
		return
	}

	// Unknown ids are dropped; the send goes to the vendors that exist
	// and only an empty match is an error.
	vendors, err := h.Repository.GetVendorsByIDs(request.VendorIDs)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}
	if len(vendors) == 0 {
		h.errorResponse(ctx, http.StatusNotFound, errors.New("No vendors found"))
		return
	}

	results, err := h.Sender.SendRFP(rfp, vendors)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}

	now := time.Now()
	sentIDs := make([]uint, 0, len(vendors))
	for _, v := range vendors {
		sentIDs = append(sentIDs, v.ID)
	}
	rfp.SelectedVendorIDs = sentIDs
	rfp.SentAt = &now
	rfp.Status = ds.RFPStatusSent
	if err := h.Repository.SaveRFP(rfp); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}

	resp, err := h.rfpResponse(rfp, false)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SendRFPResponse{RFP: resp, Results: results})
}

// parseDeadline accepts the date formats the extraction model actually
// produces. An unparseable value is dropped, not an error.
func parseDeadline(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	logrus.Warnf("ignoring unparseable delivery deadline %q", raw)
	return nil
}
