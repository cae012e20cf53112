package repository

import (
	"backend/internal/app/ds"
)

func (r *Repository) CreateRFP(rfp *ds.RFP) error {
	return r.db.Create(rfp).Error
}

func (r *Repository) GetAllRFPs() ([]ds.RFP, error) {
	var rfps []ds.RFP
	err := r.db.Order("created_at DESC").Find(&rfps).Error
	return rfps, err
}

func (r *Repository) GetRFPByID(id uint) (*ds.RFP, error) {
	var rfp ds.RFP
	err := r.db.First(&rfp, id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &rfp, nil
}

// FindRFPByTitle matches the candidate title as a case-insensitive
// substring of the stored title, the same lookup the ingestion pipeline
// uses against reply subjects.
func (r *Repository) FindRFPByTitle(title string) (*ds.RFP, error) {
	var rfp ds.RFP
	err := r.db.Where("title ILIKE ?", "%"+title+"%").First(&rfp).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &rfp, nil
}

func (r *Repository) SaveRFP(rfp *ds.RFP) error {
	return r.db.Save(rfp).Error
}

// DeleteRFP removes the RFP only. Its proposals survive with dangling
// RFP references, which readers must tolerate.
func (r *Repository) DeleteRFP(id uint) error {
	result := r.db.Delete(&ds.RFP{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
