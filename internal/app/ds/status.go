package ds

// RFPStatus is the lifecycle state of an RFP.
type RFPStatus string

const (
	RFPStatusDraft  RFPStatus = "draft"
	RFPStatusSent   RFPStatus = "sent"
	RFPStatusClosed RFPStatus = "closed"
)

func (s RFPStatus) Valid() bool {
	switch s {
	case RFPStatusDraft, RFPStatusSent, RFPStatusClosed:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to the target status is
// allowed. RFPs only ever move forward: draft -> sent -> closed.
func (s RFPStatus) CanTransition(to RFPStatus) bool {
	switch s {
	case RFPStatusDraft:
		return to == RFPStatusSent
	case RFPStatusSent:
		return to == RFPStatusSent || to == RFPStatusClosed
	}
	return false
}

// ProposalStatus is the processing state of a vendor proposal.
type ProposalStatus string

const (
	ProposalStatusReceived  ProposalStatus = "received"
	ProposalStatusParsed    ProposalStatus = "parsed"
	ProposalStatusEvaluated ProposalStatus = "evaluated"
)

func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusReceived, ProposalStatusParsed, ProposalStatusEvaluated:
		return true
	}
	return false
}

func (s ProposalStatus) rank() int {
	switch s {
	case ProposalStatusReceived:
		return 0
	case ProposalStatusParsed:
		return 1
	case ProposalStatusEvaluated:
		return 2
	}
	return -1
}

// CanAdvance reports whether moving from s to the target status keeps
// the received -> parsed -> evaluated order. Regressions are never
// allowed.
func (s ProposalStatus) CanAdvance(to ProposalStatus) bool {
	if !s.Valid() || !to.Valid() {
		return false
	}
	return to.rank() > s.rank()
}
