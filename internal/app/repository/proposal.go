package repository

import (
	"backend/internal/app/ds"
)

func (r *Repository) CreateProposal(proposal *ds.Proposal) error {
	return r.db.Create(proposal).Error
}

func (r *Repository) SaveProposal(proposal *ds.Proposal) error {
	return r.db.Save(proposal).Error
}

func (r *Repository) GetProposalByID(id uint) (*ds.Proposal, error) {
	var proposal ds.Proposal
	err := r.db.First(&proposal, id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &proposal, nil
}

func (r *Repository) GetProposalsByRFP(rfpID uint) ([]ds.Proposal, error) {
	var proposals []ds.Proposal
	err := r.db.Where("rfp_id = ?", rfpID).Order("created_at DESC").Find(&proposals).Error
	return proposals, err
}

// DeleteProposal removes the proposal and drops its reference from the
// owning RFP. A missing or already-deleted RFP is not an error.
func (r *Repository) DeleteProposal(id uint) error {
	proposal, err := r.GetProposalByID(id)
	if err != nil {
		return err
	}

	if err := r.db.Delete(&ds.Proposal{}, id).Error; err != nil {
		return err
	}

	rfp, err := r.GetRFPByID(proposal.RFPID)
	if err != nil {
		// Dangling RFP reference, nothing to unlink.
		return nil
	}
	rfp.RemoveProposal(id)
	return r.SaveRFP(rfp)
}
