package gemini

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1/models/gemini-1.5-flash:generateContent"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrNoData means a 2xx-or-otherwise reply arrived with an empty body.
	ErrNoData = errors.New("no data received from API")
	// ErrNoCandidates means the payload decoded fine but carried no candidates.
	ErrNoCandidates = errors.New("no candidates found in response")
	// ErrNoParts means the first candidate carried no content parts.
	ErrNoParts = errors.New("no tips found in response")
)

// StatusError is returned for any non-200 HTTP status. The body is not parsed.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Code)
}

// DecodeError wraps a structural failure to decode the response payload.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError carries the error object the API itself reports inside a 200 reply.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
	Error      *APIError   `json:"error"`
}

type Candidate struct {
	Content Content `json:"content"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []Part `json:"parts"`
}

type IGemini interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func NewGeminiClient() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	endpoint := os.Getenv("GEMINI_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &geminiClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{},
	}, nil
}

// GenerateText posts the prompt to the generateContent endpoint and returns
// the text of the first part of the first candidate. Every failure mode maps
// to one of the typed errors above; no retries are attempted.
func (g *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []requestContent{
			{Parts: []Part{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", err
	}

	requestURL := fmt.Sprintf("%s?key=%s", g.endpoint, url.QueryEscape(g.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if len(data) == 0 {
		return "", ErrNoData
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode}
	}

	var decoded GenerateResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", &DecodeError{Err: err}
	}

	if decoded.Error != nil {
		return "", decoded.Error
	}

	if len(decoded.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	if len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoParts
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
