package repository

import (
	"strings"

	"backend/internal/app/ds"
)

// Vendor emails are normalized (trimmed, lower-cased) before storage so
// that ingestion can match by exact equality.

func (r *Repository) CreateVendor(vendor *ds.Vendor) error {
	vendor.Email = NormalizeEmail(vendor.Email)
	return r.db.Create(vendor).Error
}

func (r *Repository) GetAllVendors() ([]ds.Vendor, error) {
	var vendors []ds.Vendor
	err := r.db.Order("created_at DESC").Find(&vendors).Error
	return vendors, err
}

func (r *Repository) GetVendorByID(id uint) (*ds.Vendor, error) {
	var vendor ds.Vendor
	err := r.db.First(&vendor, id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &vendor, nil
}

// GetVendorByEmail looks up a vendor by the stored (normalized) email.
// The caller passes the address exactly as extracted from the From
// header; normalization here mirrors what CreateVendor did at write
// time.
func (r *Repository) GetVendorByEmail(email string) (*ds.Vendor, error) {
	var vendor ds.Vendor
	err := r.db.Where("email = ?", NormalizeEmail(email)).First(&vendor).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &vendor, nil
}

func (r *Repository) GetVendorsByIDs(ids []uint) ([]ds.Vendor, error) {
	var vendors []ds.Vendor
	err := r.db.Where("id IN ?", ids).Find(&vendors).Error
	return vendors, err
}

func (r *Repository) UpdateVendor(vendor *ds.Vendor) error {
	vendor.Email = NormalizeEmail(vendor.Email)
	return r.db.Save(vendor).Error
}

// DeleteVendor removes the vendor record only. RFP vendor selections and
// proposals keep their references; readers tolerate the dangling IDs.
func (r *Repository) DeleteVendor(id uint) error {
	result := r.db.Delete(&ds.Vendor{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// NormalizeEmail trims whitespace and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
