package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRFPStatusCanTransition(t *testing.T) {
	cases := []struct {
		from, to RFPStatus
		want     bool
	}{
		{RFPStatusDraft, RFPStatusSent, true},
		{RFPStatusSent, RFPStatusSent, true},
		{RFPStatusSent, RFPStatusClosed, true},
		{RFPStatusDraft, RFPStatusClosed, false},
		{RFPStatusSent, RFPStatusDraft, false},
		{RFPStatusClosed, RFPStatusSent, false},
		{RFPStatusClosed, RFPStatusDraft, false},
		{RFPStatus("bogus"), RFPStatusSent, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestProposalStatusCanAdvance(t *testing.T) {
	cases := []struct {
		from, to ProposalStatus
		want     bool
	}{
		{ProposalStatusReceived, ProposalStatusParsed, true},
		{ProposalStatusReceived, ProposalStatusEvaluated, true},
		{ProposalStatusParsed, ProposalStatusEvaluated, true},
		{ProposalStatusParsed, ProposalStatusReceived, false},
		{ProposalStatusEvaluated, ProposalStatusParsed, false},
		{ProposalStatusEvaluated, ProposalStatusEvaluated, false},
		{ProposalStatus("bogus"), ProposalStatusParsed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanAdvance(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestProposalAdvanceStatusRejectsRegression(t *testing.T) {
	p := Proposal{ID: 1, Status: ProposalStatusEvaluated}

	err := p.AdvanceStatus(ProposalStatusParsed)
	assert.Error(t, err)
	assert.Equal(t, ProposalStatusEvaluated, p.Status)
}

func TestRFPStatusValid(t *testing.T) {
	assert.True(t, RFPStatusDraft.Valid())
	assert.True(t, RFPStatusSent.Valid())
	assert.True(t, RFPStatusClosed.Valid())
	assert.False(t, RFPStatus("archived").Valid())
}
