package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"backend/internal/app/ds"
	"backend/internal/app/mail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	emails []mail.InboundEmail
	err    error
}

func (s *stubFetcher) FetchUnread(context.Context) ([]mail.InboundEmail, error) {
	return s.emails, s.err
}

type stubExtractor struct {
	parseErr   error
	analyzeErr error
}

func (s *stubExtractor) ParseProposal(_ context.Context, emailBody string, _ ds.RFPStructuredData) (*ds.ParsedData, error) {
	if s.parseErr != nil {
		return nil, s.parseErr
	}
	if strings.Contains(emailBody, "garbage") {
		return nil, errors.New("not parseable")
	}
	return &ds.ParsedData{TotalPrice: 1000, DeliveryTime: "2 weeks"}, nil
}

func (s *stubExtractor) AnalyzeProposal(context.Context, ds.ParsedData, ds.RFPStructuredData) (*ds.AIAnalysis, error) {
	if s.analyzeErr != nil {
		return nil, s.analyzeErr
	}
	return &ds.AIAnalysis{CompletenessScore: 80, CompetitivenessScore: 75, Summary: "fine"}, nil
}

type memStore struct {
	rfps      map[uint]*ds.RFP
	vendors   []ds.Vendor
	proposals []*ds.Proposal
	nextID    uint
}

func newMemStore() *memStore {
	return &memStore{rfps: map[uint]*ds.RFP{}}
}

func (m *memStore) FindRFPByTitle(title string) (*ds.RFP, error) {
	for _, rfp := range m.rfps {
		if strings.Contains(strings.ToLower(rfp.Title), strings.ToLower(title)) {
			return rfp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *memStore) GetVendorByEmail(email string) (*ds.Vendor, error) {
	for i := range m.vendors {
		if m.vendors[i].Email == strings.ToLower(strings.TrimSpace(email)) {
			return &m.vendors[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *memStore) CreateProposal(p *ds.Proposal) error {
	m.nextID++
	p.ID = m.nextID
	m.proposals = append(m.proposals, p)
	return nil
}

func (m *memStore) SaveProposal(*ds.Proposal) error { return nil }

func (m *memStore) SaveRFP(rfp *ds.RFP) error {
	m.rfps[rfp.ID] = rfp
	return nil
}

func inbound(subject, from, body string) mail.InboundEmail {
	return mail.InboundEmail{
		Subject:    subject,
		From:       from,
		Body:       body,
		ReceivedAt: time.Now(),
	}
}

func testStore() *memStore {
	store := newMemStore()
	store.rfps[1] = &ds.RFP{ID: 1, Title: "Office Laptops", Status: ds.RFPStatusSent}
	store.vendors = []ds.Vendor{{ID: 5, Name: "Acme", Email: "jane@acme.com"}}
	return store
}

func TestProcessEmailsAccounting(t *testing.T) {
	store := testStore()
	fetcher := &stubFetcher{emails: []mail.InboundEmail{
		inbound("Re: RFP: Office Laptops", "Jane Doe <jane@acme.com>", "our offer: 1000"),
		inbound("Re: RFP: Office Laptops", "stranger@nowhere.com", "who dis"),
		inbound("Re: RFP: Office Laptops", "jane@acme.com", "garbage"),
	}}

	pipeline := NewPipeline(store, fetcher, &stubExtractor{}, nil)
	processed, err := pipeline.ProcessEmails(context.Background())
	require.NoError(t, err)

	// One good reply, one unknown vendor, one unparseable body.
	assert.Len(t, processed, 1)
	require.Len(t, store.proposals, 1)

	proposal := store.proposals[0]
	assert.Equal(t, uint(1), proposal.RFPID)
	assert.Equal(t, uint(5), proposal.VendorID)
	assert.Equal(t, ds.ProposalStatusEvaluated, proposal.Status)
	assert.Equal(t, []uint{proposal.ID}, store.rfps[1].ProposalIDs)
}

func TestProcessEmailsEmptyInbox(t *testing.T) {
	pipeline := NewPipeline(testStore(), &stubFetcher{}, &stubExtractor{}, nil)

	processed, err := pipeline.ProcessEmails(context.Background())
	require.NoError(t, err)
	assert.Empty(t, processed)
}

func TestProcessEmailsFetchFailure(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("imap down")}
	pipeline := NewPipeline(testStore(), fetcher, &stubExtractor{}, nil)

	_, err := pipeline.ProcessEmails(context.Background())
	assert.Error(t, err)
}

func TestProcessEmailsAnalysisFailureKeepsParsed(t *testing.T) {
	store := testStore()
	fetcher := &stubFetcher{emails: []mail.InboundEmail{
		inbound("RFP: Office Laptops", "jane@acme.com", "offer"),
	}}

	pipeline := NewPipeline(store, fetcher, &stubExtractor{analyzeErr: errors.New("model down")}, nil)
	processed, err := pipeline.ProcessEmails(context.Background())
	require.NoError(t, err)

	// The proposal survives with its parsed data and stays linked, but
	// it is not reported as processed: only evaluation is missing.
	assert.Empty(t, processed)
	require.Len(t, store.proposals, 1)
	assert.Equal(t, ds.ProposalStatusParsed, store.proposals[0].Status)
	assert.Equal(t, []uint{store.proposals[0].ID}, store.rfps[1].ProposalIDs)
}

func TestRFPTitleFromSubject(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"RFP: Office Laptops", "Office Laptops"},
		{"Re: RFP: Office Laptops", "Office Laptops"},
		{"RE: re: RFP: Office Laptops", "Office Laptops"},
		{"rfp: Office Laptops", "Office Laptops"},
		{"Office Laptops", "Office Laptops"},
		{"Re: Office Laptops", "Office Laptops"},
		{"  RFP:   Office Laptops  ", "Office Laptops"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, rfpTitleFromSubject(tc.in), "subject %q", tc.in)
	}
}

func TestSenderAddress(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"jane@acme.com", "jane@acme.com"},
		{"Jane Doe <jane@acme.com>", "jane@acme.com"},
		{"<jane@acme.com>", "jane@acme.com"},
		{"  jane@acme.com  ", "jane@acme.com"},
		{`"Doe, Jane" <jane@acme.com>`, "jane@acme.com"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, senderAddress(tc.in), "from %q", tc.in)
	}
}
