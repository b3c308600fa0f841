// Package imagegen generates presentation images through the Gemini
// image generation API, composing prompts from the extracted style
// signature so every generated asset matches the deck.
package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/charmbracelet/log"

	"github.com/slidekit/slidekit-go/pkg/style"
)

// DefaultEndpoint is the Gemini image generation endpoint.
const DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash-exp-image-generation:generateContent"

const (
	defaultTimeout    = 120 * time.Second
	defaultMaxRetries = 3
	retryInterval     = 2 * time.Second
)

// Image types accepted by BuildPrompt.
const (
	TypeContent    = "content"
	TypeBackground = "background"
)

// ErrNoImage indicates the API responded without image data.
var ErrNoImage = errors.New("no image data in response")

// APIError is a non-retryable API failure with the server's message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
}

// Options configures a Client. Zero values select defaults.
type Options struct {
	Endpoint   string
	Timeout    time.Duration
	MaxRetries int
	Logger     *log.Logger
}

// Client calls the image generation API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	maxRetries int
	logger     *log.Logger
}

// New returns a Client using the given API key.
func New(apiKey string, opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		endpoint:   opts.Endpoint,
		apiKey:     apiKey,
		maxRetries: opts.MaxRetries,
		logger:     opts.Logger,
	}
}

// BuildPrompt composes the generation prompt. A direct prompt wins
// outright; otherwise the style signature is combined with either an
// atmospheric background template or the concept to illustrate.
func BuildPrompt(s *style.ImageStyle, concept, direct, imageType string) (string, error) {
	if direct != "" {
		return direct, nil
	}
	if s == nil {
		return "", errors.New("either a prompt or a style signature is required")
	}

	if imageType == TypeBackground {
		colorDesc := ""
		if s.ColorPalette.Background != "" && s.ColorPalette.Primary != "" {
			colorDesc = fmt.Sprintf("subtle gradient from %s to %s, ",
				s.ColorPalette.Background, s.ColorPalette.Primary)
		}
		prompt := fmt.Sprintf(
			"Abstract atmospheric background, %s, %s"+
				"soft texture, no focal point, no objects, no text, "+
				"suitable for text overlay, professional presentation quality",
			s.Signature, colorDesc)
		return appendNegative(prompt, s.NegativePrompt), nil
	}

	if concept == "" {
		return "", errors.New("a concept is required for content images")
	}

	colorDesc := ""
	if s.ColorPalette.Accent != "" {
		colorDesc = fmt.Sprintf("using accent color %s, ", s.ColorPalette.Accent)
	}
	bg := s.ColorPalette.Background
	if bg == "" {
		bg = "white"
	}
	colorDesc += fmt.Sprintf("clean %s background, ", bg)

	prompt := fmt.Sprintf("%s, %s, %sclean composition, professional presentation quality",
		s.Signature, concept, colorDesc)
	return appendNegative(prompt, s.NegativePrompt), nil
}

func appendNegative(prompt, negative string) string {
	if negative == "" {
		return prompt
	}
	return prompt + ". Avoid: " + negative
}

// AltText suggests alt text for a generated image.
func AltText(concept, imageType string, s *style.ImageStyle) string {
	if imageType == TypeBackground {
		mood := "atmospheric"
		if s != nil && s.Mood != "" {
			mood = s.Mood
		}
		return fmt.Sprintf("Abstract %s background pattern", mood)
	}
	if concept != "" {
		return fmt.Sprintf("Illustration representing %s", concept)
	}
	return "AI-generated illustration"
}

type generateRequest struct {
	Contents         []promptContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type promptContent struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate requests an image for the prompt and returns the decoded
// bytes. Rate limiting and timeouts are retried; other API errors
// stop immediately.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	operation := func() ([]byte, error) {
		data, err := c.generateOnce(ctx, prompt)
		if err == nil {
			return data, nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if apiErr.StatusCode == http.StatusTooManyRequests {
				c.logger.Warn("Rate limited, will retry")
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		if isTimeout(err) {
			c.logger.Warn("Request timed out, will retry")
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), uint64(c.maxRetries)),
		ctx,
	)
	return backoff.RetryWithData(operation, policy)
}

func (c *Client) generateOnce(ctx context.Context, prompt string) ([]byte, error) {
	payload := generateRequest{
		Contents: []promptContent{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    apiErrorMessage(respBody),
		}
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(result.Candidates) == 0 {
		return nil, ErrNoImage
	}
	for _, p := range result.Candidates[0].Content.Parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			return base64.StdEncoding.DecodeString(p.InlineData.Data)
		}
	}
	return nil, ErrNoImage
}

// apiErrorMessage pulls the server's error message out of the JSON
// error body, falling back to the raw body.
func apiErrorMessage(body []byte) string {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return string(body)
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
