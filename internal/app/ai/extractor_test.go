package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"backend/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.response, s.err
}

func TestParseRFPStripsCodeFence(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + `{
		"title": "Office Laptops",
		"items": [{"name": "Laptop", "quantity": 20, "specifications": "16GB RAM"}],
		"budget": 30000,
		"deliveryDeadline": "2026-10-01",
		"paymentTerms": "Net 30",
		"warrantyRequirements": "2 years",
		"additionalRequirements": ["onsite support"]
	}` + "\n```"}

	result, err := NewExtractor(gen).ParseRFP(context.Background(), "need 20 laptops")
	require.NoError(t, err)

	assert.Equal(t, "Office Laptops", result.Title)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 20, result.Items[0].Quantity)
	assert.Equal(t, "2026-10-01", result.DeliveryDeadline)
	assert.Contains(t, gen.lastPrompt, "need 20 laptops")
}

func TestParseRFPMissingTitle(t *testing.T) {
	gen := &stubGenerator{response: `{"title": "  ", "items": []}`}

	_, err := NewExtractor(gen).ParseRFP(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestParseRFPInvalidJSON(t *testing.T) {
	gen := &stubGenerator{response: "I could not process that request."}

	_, err := NewExtractor(gen).ParseRFP(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestParseRFPGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}

	_, err := NewExtractor(gen).ParseRFP(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrGenerate)
	assert.NotErrorIs(t, err, ErrInvalidJSON)
}

func TestParseProposal(t *testing.T) {
	gen := &stubGenerator{response: `{
		"totalPrice": 28000,
		"itemPrices": [{"item": "Laptop", "price": 1400, "quantity": 20}],
		"deliveryTime": "3 weeks",
		"paymentTerms": "Net 45",
		"warranty": "3 years",
		"additionalTerms": ["free shipping"]
	}`}

	parsed, err := NewExtractor(gen).ParseProposal(context.Background(), "our offer", ds.RFPStructuredData{})
	require.NoError(t, err)

	assert.Equal(t, 28000.0, parsed.TotalPrice)
	assert.Equal(t, "3 weeks", parsed.DeliveryTime)
	assert.Contains(t, gen.lastPrompt, "our offer")
}

func TestParseProposalNegativePrice(t *testing.T) {
	gen := &stubGenerator{response: `{"totalPrice": -5}`}

	_, err := NewExtractor(gen).ParseProposal(context.Background(), "offer", ds.RFPStructuredData{})
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestAnalyzeProposalScoreRange(t *testing.T) {
	cases := []struct {
		name     string
		response string
		wantErr  bool
	}{
		{"valid", `{"completenessScore": 85, "competitivenessScore": 70, "summary": "solid"}`, false},
		{"completeness too high", `{"completenessScore": 150, "competitivenessScore": 70}`, true},
		{"competitiveness negative", `{"completenessScore": 85, "competitivenessScore": -1}`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &stubGenerator{response: tc.response}
			_, err := NewExtractor(gen).AnalyzeProposal(context.Background(), ds.ParsedData{}, ds.RFPStructuredData{})
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrSchemaMismatch)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompareProposals(t *testing.T) {
	entries := []ProposalEntry{
		{VendorID: 3},
		{VendorID: 7},
	}

	// Models occasionally quote ids and return arrays for prose fields.
	gen := &stubGenerator{response: `{
		"recommendedVendorId": "7",
		"reasoning": "Best price and warranty.",
		"comparison": "Vendor 7 undercuts vendor 3 by 10%.",
		"riskFactors": ["longer lead time", "new supplier"]
	}`}

	comparison, err := NewExtractor(gen).CompareProposals(context.Background(), entries, ds.RFPStructuredData{})
	require.NoError(t, err)

	assert.Equal(t, VendorID(7), comparison.RecommendedVendorID)
	assert.Equal(t, "Best price and warranty.", string(comparison.Reasoning))
	assert.True(t, strings.Contains(string(comparison.RiskFactors), "longer lead time"))
}

func TestCompareProposalsUnknownVendor(t *testing.T) {
	gen := &stubGenerator{response: `{"recommendedVendorId": 42, "reasoning": "?"}`}

	_, err := NewExtractor(gen).CompareProposals(context.Background(), []ProposalEntry{{VendorID: 1}}, ds.RFPStructuredData{})
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestCompareProposalsEmpty(t *testing.T) {
	_, err := NewExtractor(&stubGenerator{}).CompareProposals(context.Background(), nil, ds.RFPStructuredData{})
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"{\"a\":1}", `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, extractJSON(tc.in))
	}
}
