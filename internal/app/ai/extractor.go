package ai

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"backend/internal/app/ds"

	"github.com/sirupsen/logrus"
)

// Extraction failure taxonomy. Transport/model failures, non-JSON
// output and well-formed-but-wrong-shape output are distinguishable via
// errors.Is so callers can decide what to skip and what to surface.
var (
	ErrGenerate       = errors.New("extraction request failed")
	ErrInvalidJSON    = errors.New("extraction response is not valid JSON")
	ErrSchemaMismatch = errors.New("extraction response schema mismatch")
)

//go:embed prompts/*.md
var promptFS embed.FS

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Extractor turns free text into the structured payloads the rest of
// the system works with. Every operation is a single model call with no
// retry or caching.
type Extractor struct {
	generator contentGenerator
}

func NewExtractor(generator contentGenerator) *Extractor {
	return &Extractor{generator: generator}
}

// RFPExtraction is the structured form of a natural-language RFP
// description. DeliveryDeadline stays an ISO date string here; the
// handler parses it into a time.
type RFPExtraction struct {
	Title                  string       `json:"title"`
	Items                  []ds.RFPItem `json:"items"`
	Budget                 float64      `json:"budget"`
	DeliveryDeadline       string       `json:"deliveryDeadline"`
	PaymentTerms           string       `json:"paymentTerms"`
	WarrantyRequirements   string       `json:"warrantyRequirements"`
	AdditionalRequirements []string     `json:"additionalRequirements"`
}

// ProposalEntry is one proposal's view handed to the comparison prompt.
type ProposalEntry struct {
	VendorID   uint          `json:"vendorId"`
	ParsedData ds.ParsedData `json:"parsedData"`
	AIAnalysis ds.AIAnalysis `json:"aiAnalysis"`
}

// Comparison is the cross-proposal verdict.
type Comparison struct {
	RecommendedVendorID VendorID   `json:"recommendedVendorId"`
	Reasoning           FlexString `json:"reasoning"`
	Comparison          FlexString `json:"comparison"`
	RiskFactors         FlexString `json:"riskFactors"`
}

// ParseRFP converts a free-text purchasing description into structured
// RFP data.
func (e *Extractor) ParseRFP(ctx context.Context, description string) (*RFPExtraction, error) {
	prompt := renderPrompt("prompts/parse_rfp.md", map[string]string{
		"{{DESCRIPTION}}": description,
	})

	var result RFPExtraction
	if err := e.generate(ctx, prompt, &result); err != nil {
		return nil, err
	}

	if strings.TrimSpace(result.Title) == "" {
		return nil, fmt.Errorf("%w: missing title", ErrSchemaMismatch)
	}

	return &result, nil
}

// ParseProposal extracts pricing and terms from a vendor's email body.
func (e *Extractor) ParseProposal(ctx context.Context, emailBody string, rfpData ds.RFPStructuredData) (*ds.ParsedData, error) {
	rfpJSON, err := marshalContext(rfpData)
	if err != nil {
		return nil, err
	}

	prompt := renderPrompt("prompts/parse_proposal.md", map[string]string{
		"{{RFP_JSON}}":   rfpJSON,
		"{{EMAIL_BODY}}": emailBody,
	})

	var result ds.ParsedData
	if err := e.generate(ctx, prompt, &result); err != nil {
		return nil, err
	}

	if result.TotalPrice < 0 {
		return nil, fmt.Errorf("%w: negative total price", ErrSchemaMismatch)
	}

	return &result, nil
}

// AnalyzeProposal scores a parsed proposal against the RFP
// requirements.
func (e *Extractor) AnalyzeProposal(ctx context.Context, parsed ds.ParsedData, rfpData ds.RFPStructuredData) (*ds.AIAnalysis, error) {
	rfpJSON, err := marshalContext(rfpData)
	if err != nil {
		return nil, err
	}
	proposalJSON, err := marshalContext(parsed)
	if err != nil {
		return nil, err
	}

	prompt := renderPrompt("prompts/analyze_proposal.md", map[string]string{
		"{{RFP_JSON}}":      rfpJSON,
		"{{PROPOSAL_JSON}}": proposalJSON,
	})

	var result ds.AIAnalysis
	if err := e.generate(ctx, prompt, &result); err != nil {
		return nil, err
	}

	if result.CompletenessScore < 0 || result.CompletenessScore > 100 {
		return nil, fmt.Errorf("%w: completeness score %v out of range", ErrSchemaMismatch, result.CompletenessScore)
	}
	if result.CompetitivenessScore < 0 || result.CompetitivenessScore > 100 {
		return nil, fmt.Errorf("%w: competitiveness score %v out of range", ErrSchemaMismatch, result.CompetitivenessScore)
	}

	return &result, nil
}

// CompareProposals ranks all proposals for one RFP and names a winner.
// The recommended vendor must be one of the supplied entries.
func (e *Extractor) CompareProposals(ctx context.Context, entries []ProposalEntry, rfpData ds.RFPStructuredData) (*Comparison, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no proposals to compare", ErrSchemaMismatch)
	}

	rfpJSON, err := marshalContext(rfpData)
	if err != nil {
		return nil, err
	}
	proposalsJSON, err := marshalContext(entries)
	if err != nil {
		return nil, err
	}

	prompt := renderPrompt("prompts/compare_proposals.md", map[string]string{
		"{{RFP_JSON}}":       rfpJSON,
		"{{PROPOSALS_JSON}}": proposalsJSON,
	})

	var result Comparison
	if err := e.generate(ctx, prompt, &result); err != nil {
		return nil, err
	}

	known := false
	for _, entry := range entries {
		if uint(result.RecommendedVendorID) == entry.VendorID {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: recommended vendor %d is not among the compared proposals", ErrSchemaMismatch, result.RecommendedVendorID)
	}

	return &result, nil
}

func (e *Extractor) generate(ctx context.Context, prompt string, out any) error {
	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGenerate, err)
	}

	logrus.Debugf("extraction raw response: %.200s", raw)

	cleaned := extractJSON(raw)
	if !json.Valid([]byte(cleaned)) {
		return fmt.Errorf("%w: %.120s", ErrInvalidJSON, cleaned)
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	return nil
}

func renderPrompt(name string, vars map[string]string) string {
	data, err := promptFS.ReadFile(name)
	if err != nil {
		// Templates are compiled in; this cannot happen outside a broken build.
		panic(fmt.Sprintf("missing prompt template %s: %v", name, err))
	}
	prompt := string(data)
	for placeholder, value := range vars {
		prompt = strings.ReplaceAll(prompt, placeholder, value)
	}
	return prompt
}

func marshalContext(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal prompt context: %w", err)
	}
	return string(data), nil
}

// extractJSON strips Markdown code-fence wrapping the model sometimes
// adds around its output.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

// VendorID tolerates the model quoting numeric ids.
type VendorID uint

func (v *VendorID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("vendor id %q is not numeric", s)
	}
	*v = VendorID(n)
	return nil
}

// FlexString accepts any JSON value and flattens non-strings back into
// their JSON text, since models occasionally return arrays or objects
// where prose was asked for.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}
	*f = FlexString(strings.TrimSpace(string(b)))
	return nil
}
