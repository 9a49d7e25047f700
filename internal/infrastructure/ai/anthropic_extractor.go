package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/ports"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
)

var _ ports.DocumentExtractor = (*AnthropicExtractor)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	extractionSystemPrompt = `You are a data-entry assistant for an ornamental fish farm. You read supplier
invoices, proformas and packing lists (Hebrew or English) and extract the fish
line items. Return ONLY a valid JSON object (no markdown, no code fences) with
this exact structure:
{
  "supplier": "<supplier name if present, else empty string>",
  "dateReceived": "<document date as YYYY-MM-DD if present, else empty string>",
  "items": [
    {
      "scientificName": "<latin species name>",
      "commonName": "<common or Hebrew name if present>",
      "size": "<size label as written, e.g. S, M, L, 5cm>",
      "code": "<supplier item code if present>",
      "boxNumber": <integer box number, or null if absent>,
      "bagCount": <integer, or null>,
      "quantityPerBag": <integer, or null>,
      "totalQuantity": <integer, or null>,
      "unitPrice": <decimal number, or null>,
      "currency": "<3-letter code if present, else empty string>"
    }
  ]
}

Rules:
- One array element per distinct fish line on the document.
- Keep size labels verbatim, do not normalize them.
- Use null for any numeric field the document does not state. Never guess.
- Box number 0 is a valid value; null only when the document omits it.
- No text outside the JSON object.`
)

// AnthropicExtractor implements the DocumentExtractor port on the Anthropic
// Messages REST API, using net/http directly rather than a vendor SDK. Text,
// PDF and image inputs go through the same endpoint; binary inputs are
// base64-embedded as content blocks.
type AnthropicExtractor struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicExtractor builds the adapter. An empty apiKey yields descriptive
// errors at call time instead of a panic.
func NewAnthropicExtractor(apiKey, model string) *AnthropicExtractor {
	return &AnthropicExtractor{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Transport-level ceiling; the use case applies its own shorter
			// context deadline per call.
			Timeout: 60 * time.Second,
		},
	}
}

// ── Anthropic Messages API wire structures ────────────────────────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *blockSource `json:"source,omitempty"`
}

type blockSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// oraclePayload is the JSON shape the system prompt requests.
type oraclePayload struct {
	Supplier     string                   `json:"supplier"`
	DateReceived string                   `json:"dateReceived"`
	Items        []entity.CandidateRecord `json:"items"`
}

// jsonBlockRe captures the first { … last } block even when the model wraps it
// in prose.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Port implementation ───────────────────────────────────────────────────────

// Extract sends the document to the model and decodes the line items.
// Failures map onto the domain error kinds: network problems become
// ErrOracleUnreachable, deadline hits become ErrOracleTimeout, undecodable
// answers become MalformedOracleResponseError, and an empty item list becomes
// ErrNoItemsExtracted.
func (s *AnthropicExtractor) Extract(ctx context.Context, req ports.OracleRequest) (*ports.OracleResult, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY is not configured", domain.ErrOracleUnreachable)
	}

	blocks, err := buildContent(req)
	if err != nil {
		return nil, err
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 8192,
		System:    extractionSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: blocks},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("serialize oracle request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build HTTP request: %w", err)
	}
	httpReq.Header.Set("x-api-key", s.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	httpReq.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrOracleUnreachable, err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("%w: %s: %s", domain.ErrOracleUnreachable, errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("%w: HTTP %d", domain.ErrOracleUnreachable, resp.StatusCode)
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return nil, &domain.MalformedOracleResponseError{RawPrefix: domain.TruncateRaw(string(rawBody)), Cause: err}
	}
	if len(anthResp.Content) == 0 {
		return nil, &domain.MalformedOracleResponseError{RawPrefix: "", Cause: fmt.Errorf("empty content")}
	}

	rawText := anthResp.Content[0].Text
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, &domain.MalformedOracleResponseError{
			RawPrefix: domain.TruncateRaw(rawText),
			Cause:     fmt.Errorf("no JSON object in model output"),
		}
	}

	var decoded oraclePayload
	if err := json.Unmarshal([]byte(cleanJSON), &decoded); err != nil {
		return nil, &domain.MalformedOracleResponseError{RawPrefix: domain.TruncateRaw(cleanJSON), Cause: err}
	}
	if len(decoded.Items) == 0 {
		return nil, domain.ErrNoItemsExtracted
	}

	return &ports.OracleResult{
		Items:        decoded.Items,
		Supplier:     decoded.Supplier,
		DateReceived: decoded.DateReceived,
	}, nil
}

// buildContent assembles the user message blocks for the request modality.
func buildContent(req ports.OracleRequest) ([]contentBlock, error) {
	switch req.Kind {
	case ports.InputText:
		return []contentBlock{{Type: "text", Text: req.Text}}, nil
	case ports.InputDocument:
		return []contentBlock{
			{Type: "document", Source: &blockSource{
				Type:      "base64",
				MediaType: req.MediaType,
				Data:      base64.StdEncoding.EncodeToString(req.Data),
			}},
			{Type: "text", Text: "Extract the fish line items from this document."},
		}, nil
	case ports.InputImage:
		return []contentBlock{
			{Type: "image", Source: &blockSource{
				Type:      "base64",
				MediaType: req.MediaType,
				Data:      base64.StdEncoding.EncodeToString(req.Data),
			}},
			{Type: "text", Text: "Extract the fish line items from this document."},
		}, nil
	default:
		return nil, fmt.Errorf("unknown input kind %q", req.Kind)
	}
}

// classifyTransportError maps HTTP client failures to domain error kinds,
// keeping deadline hits distinguishable from connectivity problems.
func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrOracleTimeout, context.DeadlineExceeded)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", domain.ErrOracleTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrOracleUnreachable, err)
}

// extractJSON pulls the first well-formed JSON object out of free text.
// Two steps: strip markdown code fences, then fall back to a regex over the
// remaining text.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
