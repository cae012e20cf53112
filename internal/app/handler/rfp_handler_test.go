package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/mail"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	vendors   map[uint]ds.Vendor
	rfps      map[uint]*ds.RFP
	proposals map[uint][]ds.Proposal
	savedRFP  *ds.RFP
}

func newStubStore() *stubStore {
	return &stubStore{
		vendors:   map[uint]ds.Vendor{},
		rfps:      map[uint]*ds.RFP{},
		proposals: map[uint][]ds.Proposal{},
	}
}

func (s *stubStore) GetAllVendors() ([]ds.Vendor, error) {
	var out []ds.Vendor
	for _, v := range s.vendors {
		out = append(out, v)
	}
	return out, nil
}

func (s *stubStore) GetVendorByID(id uint) (*ds.Vendor, error) {
	if v, ok := s.vendors[id]; ok {
		return &v, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubStore) GetVendorsByIDs(ids []uint) ([]ds.Vendor, error) {
	var out []ds.Vendor
	for _, id := range ids {
		if v, ok := s.vendors[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubStore) CreateVendor(*ds.Vendor) error { return nil }
func (s *stubStore) UpdateVendor(*ds.Vendor) error { return nil }
func (s *stubStore) DeleteVendor(uint) error       { return nil }

func (s *stubStore) CreateRFP(*ds.RFP) error { return nil }

func (s *stubStore) GetAllRFPs() ([]ds.RFP, error) {
	var out []ds.RFP
	for _, rfp := range s.rfps {
		out = append(out, *rfp)
	}
	return out, nil
}

func (s *stubStore) GetRFPByID(id uint) (*ds.RFP, error) {
	if rfp, ok := s.rfps[id]; ok {
		return rfp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubStore) SaveRFP(rfp *ds.RFP) error {
	s.savedRFP = rfp
	s.rfps[rfp.ID] = rfp
	return nil
}

func (s *stubStore) DeleteRFP(uint) error { return nil }

func (s *stubStore) GetProposalByID(uint) (*ds.Proposal, error) {
	return nil, repository.ErrNotFound
}

func (s *stubStore) GetProposalsByRFP(rfpID uint) ([]ds.Proposal, error) {
	return s.proposals[rfpID], nil
}

func (s *stubStore) DeleteProposal(uint) error { return nil }

type stubSender struct {
	sent []ds.Vendor
}

func (s *stubSender) SendRFP(_ *ds.RFP, vendors []ds.Vendor) ([]mail.SendResult, error) {
	s.sent = vendors
	results := make([]mail.SendResult, 0, len(vendors))
	for _, v := range vendors {
		results = append(results, mail.SendResult{VendorEmail: v.Email, Success: true})
	}
	return results, nil
}

func newStubRouter(store Store, sender Sender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(store, nil, sender, nil).RegisterRoutes(router)
	return router
}

func TestSendRFPPartialVendorMatch(t *testing.T) {
	store := newStubStore()
	store.vendors[1] = ds.Vendor{ID: 1, Name: "Acme", Email: "sales@acme.com"}
	store.rfps[1] = &ds.RFP{ID: 1, Title: "Office Laptops", Status: ds.RFPStatusDraft}
	sender := &stubSender{}

	// One known and one unknown vendor id: the send goes to the known
	// vendor and still succeeds.
	w := perform(newStubRouter(store, sender), http.MethodPost, "/api/rfps/1/send", `{"vendorIds": [1, 99]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, uint(1), sender.sent[0].ID)

	require.NotNil(t, store.savedRFP)
	assert.Equal(t, []uint{1}, store.savedRFP.SelectedVendorIDs)
	assert.Equal(t, ds.RFPStatusSent, store.savedRFP.Status)
	assert.NotNil(t, store.savedRFP.SentAt)
}

func TestSendRFPNoMatchingVendors(t *testing.T) {
	store := newStubStore()
	store.rfps[1] = &ds.RFP{ID: 1, Title: "Office Laptops", Status: ds.RFPStatusDraft}
	sender := &stubSender{}

	w := perform(newStubRouter(store, sender), http.MethodPost, "/api/rfps/1/send", `{"vendorIds": [99]}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No vendors found")
	assert.Empty(t, sender.sent)
	assert.Nil(t, store.savedRFP)
}

func TestSendRFPClosedRFP(t *testing.T) {
	store := newStubStore()
	store.vendors[1] = ds.Vendor{ID: 1, Email: "sales@acme.com"}
	store.rfps[1] = &ds.RFP{ID: 1, Title: "Office Laptops", Status: ds.RFPStatusClosed}

	w := perform(newStubRouter(store, &stubSender{}), http.MethodPost, "/api/rfps/1/send", `{"vendorIds": [1]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRFPsPopulatesRelatedRecords(t *testing.T) {
	store := newStubStore()
	store.vendors[5] = ds.Vendor{ID: 5, Name: "Acme", Email: "sales@acme.com"}
	store.rfps[1] = &ds.RFP{
		ID:                1,
		Title:             "Office Laptops",
		Status:            ds.RFPStatusSent,
		SelectedVendorIDs: []uint{5},
		ProposalIDs:       []uint{7},
	}
	store.proposals[1] = []ds.Proposal{{
		ID:         7,
		RFPID:      1,
		VendorID:   5,
		ParsedData: ds.ParsedData{TotalPrice: 28000},
		Status:     ds.ProposalStatusEvaluated,
	}}

	w := perform(newStubRouter(store, &stubSender{}), http.MethodGet, "/api/rfps", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RFPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)

	// The list route carries the same related records as the detail
	// route.
	require.Len(t, resp[0].SelectedVendors, 1)
	assert.Equal(t, "Acme", resp[0].SelectedVendors[0].Name)
	require.Len(t, resp[0].Proposals, 1)
	assert.Equal(t, 28000.0, resp[0].Proposals[0].ParsedData.TotalPrice)
	require.NotNil(t, resp[0].Proposals[0].Vendor)
	assert.Equal(t, uint(5), resp[0].Proposals[0].Vendor.ID)
}
