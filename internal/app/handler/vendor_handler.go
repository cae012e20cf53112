package handler

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// GetVendors returns all vendors
// @Summary List vendors
// @Tags Vendors
// @Produce json
// @Success 200 {array} dto.VendorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/vendors [get]
func (h *Handler) GetVendors(ctx *gin.Context) {
	vendors, err := h.Repository.GetAllVendors()
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}

	resp := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		resp = append(resp, toVendorResponse(v))
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetVendor returns one vendor by id
// @Summary Get vendor
// @Tags Vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/vendors/{id} [get]
func (h *Handler) GetVendor(ctx *gin.Context) {
	id, err := parseID(ctx, "id")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	vendor, err := h.Repository.GetVendorByID(id)
	if err != nil {
		h.notFoundOrInternal(ctx, err, "Vendor not found")
		return
	}
	ctx.JSON(http.StatusOK, toVendorResponse(*vendor))
}

// CreateVendor registers a new vendor
// @Summary Create vendor
// @Tags Vendors
// @Accept json
// @Produce json
// @Param request body dto.CreateVendorRequest true "Vendor data"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/vendors [post]
func (h *Handler) CreateVendor(ctx *gin.Context) {
	var request dto.CreateVendorRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	vendor := ds.Vendor{
		Name:       request.Name,
		Email:      request.Email,
		Phone:      request.Phone,
		Company:    request.Company,
		Categories: request.Categories,
		Notes:      request.Notes,
	}
	if err := h.Repository.CreateVendor(&vendor); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusCreated, toVendorResponse(vendor))
}

// UpdateVendor changes vendor fields
// @Summary Update vendor
// @Tags Vendors
// @Accept json
// @Produce json
// @Param id path int true "Vendor ID"
// @Param request body dto.UpdateVendorRequest true "Fields to change"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/vendors/{id} [put]
func (h *Handler) UpdateVendor(ctx *gin.Context) {
	id, err := parseID(ctx, "id")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	var request dto.UpdateVendorRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	vendor, err := h.Repository.GetVendorByID(id)
	if err != nil {
		h.notFoundOrInternal(ctx, err, "Vendor not found")
		return
	}

	if request.Name != "" {
		vendor.Name = request.Name
	}
	if request.Email != "" {
		vendor.Email = request.Email
	}
	if request.Phone != "" {
		vendor.Phone = request.Phone
	}
	if request.Company != "" {
		vendor.Company = request.Company
	}
	if request.Categories != nil {
		vendor.Categories = request.Categories
	}
	if request.Notes != "" {
		vendor.Notes = request.Notes
	}

	if err := h.Repository.UpdateVendor(vendor); err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusOK, toVendorResponse(*vendor))
}

// DeleteVendor removes a vendor
// @Summary Delete vendor
// @Tags Vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/vendors/{id} [delete]
func (h *Handler) DeleteVendor(ctx *gin.Context) {
	id, err := parseID(ctx, "id")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	if err := h.Repository.DeleteVendor(id); err != nil {
		h.notFoundOrInternal(ctx, err, "Vendor not found")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func parseID(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("invalid id: " + raw)
	}
	return uint(id), nil
}

// notFoundOrInternal maps repository not-found errors to 404 with a
// stable message, anything else to 500.
func (h *Handler) notFoundOrInternal(ctx *gin.Context, err error, message string) {
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(ctx, http.StatusNotFound, errors.New(message))
		return
	}
	h.errorResponse(ctx, http.StatusInternalServerError, err)
}
