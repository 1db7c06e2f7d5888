package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// maxAttempts bounds retries for transient (5xx) failures
const maxAttempts = 3

// Client calls the Google Generative Language API for one model. A client is
// one strategy in the generation chain; quota and availability failures are
// reported with typed errors so the chain can move to the next strategy.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	breaker     *gobreaker.CircuitBreaker[string]
	debug       bool
}

// NewClient creates a generator client for the given model
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	// Free-tier quota is per minute; a modest steady rate with small bursts
	// keeps us under it.
	limiter := rate.NewLimiter(rate.Limit(0.25), 5)

	settings := gobreaker.Settings{
		Name:        "gemini-" + model,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[GEMINI] breaker %s: %s -> %s", name, from.String(), to.String())
		},
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		rateLimiter: limiter,
		breaker:     gobreaker.NewCircuitBreaker[string](settings),
	}
}

// SetDebug toggles request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Name identifies this strategy in logs
func (c *Client) Name() string {
	return "gemini:" + c.model
}

// Generate produces a prose answer for a query result.
func (c *Client) Generate(ctx context.Context, result *domain.QueryResult) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrGeneratorUnavailable
	}

	prompt := BuildPrompt(result)

	text, err := c.breaker.Execute(func() (string, error) {
		return c.generateContent(ctx, prompt)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: circuit open for %s", domain.ErrGeneratorUnavailable, c.model)
		}
		return "", err
	}
	return text, nil
}

// generateContent request/response shapes for the generateContent endpoint
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}

		text, err := c.doGenerate(ctx, reqURL, body)
		if err == nil {
			return text, nil
		}
		lastErr = err

		// Quota rejections move the chain to the next strategy immediately;
		// only transient server errors are worth retrying here.
		if !errors.Is(err, domain.ErrGeneratorFailure) {
			return "", err
		}

		if c.debug {
			log.Printf("[GEMINI] %s attempt %d failed: %v", c.model, attempt, err)
		}
		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}
	}
	return "", lastErr
}

func (c *Client) doGenerate(ctx context.Context, reqURL string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeneratorFailure, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", domain.ErrGeneratorFailure, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: %s", domain.ErrGeneratorQuota, strings.TrimSpace(string(respBody)))
	case resp.StatusCode >= http.StatusInternalServerError:
		return "", fmt.Errorf("%w: status %d", domain.ErrGeneratorFailure, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrGeneratorUnavailable, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates", domain.ErrGeneratorFailure)
	}

	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}
