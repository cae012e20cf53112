package ingest

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"backend/internal/app/ds"
	"backend/internal/app/mail"

	"github.com/sirupsen/logrus"
)

type recordStore interface {
	FindRFPByTitle(title string) (*ds.RFP, error)
	GetVendorByEmail(email string) (*ds.Vendor, error)
	CreateProposal(proposal *ds.Proposal) error
	SaveProposal(proposal *ds.Proposal) error
	SaveRFP(rfp *ds.RFP) error
}

type emailFetcher interface {
	FetchUnread(ctx context.Context) ([]mail.InboundEmail, error)
}

type extractor interface {
	ParseProposal(ctx context.Context, emailBody string, rfpData ds.RFPStructuredData) (*ds.ParsedData, error)
	AnalyzeProposal(ctx context.Context, parsed ds.ParsedData, rfpData ds.RFPStructuredData) (*ds.AIAnalysis, error)
}

type attachmentStore interface {
	UploadAttachment(ctx context.Context, filename string, data []byte) (string, error)
}

// Pipeline turns unread inbox messages into evaluated proposals. Each
// message is handled in isolation: one bad reply never blocks the rest
// of the batch.
type Pipeline struct {
	store       recordStore
	fetcher     emailFetcher
	extractor   extractor
	attachments attachmentStore // nil when no blob store is configured
}

func NewPipeline(store recordStore, fetcher emailFetcher, extractor extractor, attachments attachmentStore) *Pipeline {
	return &Pipeline{
		store:       store,
		fetcher:     fetcher,
		extractor:   extractor,
		attachments: attachments,
	}
}

// ProcessEmails fetches unread replies and ingests each one. It returns
// the proposals that made it through; messages that could not be
// matched or parsed are logged and dropped.
func (p *Pipeline) ProcessEmails(ctx context.Context) ([]ds.Proposal, error) {
	emails, err := p.fetcher.FetchUnread(ctx)
	if err != nil {
		return nil, err
	}

	processed := make([]ds.Proposal, 0, len(emails))
	for _, email := range emails {
		proposal, err := p.processOne(ctx, email)
		if err != nil {
			logrus.Warnf("skipping email %q from %q: %v", email.Subject, email.From, err)
			continue
		}
		if proposal == nil {
			continue
		}
		processed = append(processed, *proposal)
	}

	if len(emails) > 0 {
		logrus.Infof("processed %d of %d fetched emails", len(processed), len(emails))
	}
	return processed, nil
}

func (p *Pipeline) processOne(ctx context.Context, email mail.InboundEmail) (*ds.Proposal, error) {
	title := rfpTitleFromSubject(email.Subject)
	if title == "" {
		return nil, fmt.Errorf("subject carries no RFP title")
	}

	rfp, err := p.store.FindRFPByTitle(title)
	if err != nil {
		return nil, fmt.Errorf("no RFP matching title %q: %w", title, err)
	}

	sender := senderAddress(email.From)
	vendor, err := p.store.GetVendorByEmail(sender)
	if err != nil {
		return nil, fmt.Errorf("no vendor with address %q: %w", sender, err)
	}

	parsed, err := p.extractor.ParseProposal(ctx, email.Body, rfp.StructuredData)
	if err != nil {
		return nil, fmt.Errorf("parse reply: %w", err)
	}

	proposal := &ds.Proposal{
		RFPID:    rfp.ID,
		VendorID: vendor.ID,
		EmailData: ds.EmailData{
			Subject:     email.Subject,
			Body:        email.Body,
			ReceivedAt:  email.ReceivedAt,
			Attachments: email.Attachments,
		},
		ParsedData: *parsed,
		Status:     ds.ProposalStatusParsed,
	}

	if p.attachments != nil {
		for _, filename := range email.Attachments {
			key, err := p.attachments.UploadAttachment(ctx, filename, email.AttachmentData[filename])
			if err != nil {
				logrus.Errorf("attachment %s upload failed: %v", filename, err)
				continue
			}
			proposal.AttachmentKeys = append(proposal.AttachmentKeys, key)
		}
	}

	if err := p.store.CreateProposal(proposal); err != nil {
		return nil, fmt.Errorf("persist proposal: %w", err)
	}

	// Analysis failure leaves the proposal stored as parsed; it can be
	// re-evaluated by hand later.
	evaluated := true
	if analysis, err := p.extractor.AnalyzeProposal(ctx, *parsed, rfp.StructuredData); err != nil {
		logrus.Warnf("proposal %d analysis failed: %v", proposal.ID, err)
		evaluated = false
	} else {
		proposal.AIAnalysis = *analysis
		if err := proposal.AdvanceStatus(ds.ProposalStatusEvaluated); err != nil {
			return nil, err
		}
		if err := p.store.SaveProposal(proposal); err != nil {
			return nil, fmt.Errorf("save evaluated proposal: %w", err)
		}
	}

	if rfp.AppendProposal(proposal.ID) {
		if err := p.store.SaveRFP(rfp); err != nil {
			return nil, fmt.Errorf("link proposal to RFP: %w", err)
		}
	}

	// A proposal stuck at parsed is stored and linked for manual
	// follow-up but not reported as processed.
	if !evaluated {
		return nil, nil
	}

	logrus.Infof("ingested proposal %d for RFP %d from vendor %d", proposal.ID, rfp.ID, vendor.ID)
	return proposal, nil
}

var subjectPrefixRe = regexp.MustCompile(`(?i)^(re:\s*)*(` + mail.SubjectPrefix + `:\s*)?`)

// rfpTitleFromSubject strips reply markers and the RFP prefix, leaving
// the title used to look the RFP up.
func rfpTitleFromSubject(subject string) string {
	return strings.TrimSpace(subjectPrefixRe.ReplaceAllString(strings.TrimSpace(subject), ""))
}

// senderAddress pulls the addr-spec out of a From header that may carry
// a display name, e.g. "Jane Doe <jane@acme.com>" -> "jane@acme.com".
func senderAddress(from string) string {
	if start := strings.LastIndex(from, "<"); start != -1 {
		if end := strings.Index(from[start:], ">"); end != -1 {
			return strings.TrimSpace(from[start+1 : start+end])
		}
	}
	return strings.TrimSpace(from)
}
