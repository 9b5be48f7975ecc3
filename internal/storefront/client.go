package storefront

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/FrederickOB/test-hydrogen-app/internal/config"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

var (
	ErrNotFound  = errors.New("storefront: not found")
	ErrThrottled = errors.New("storefront: throttled")
)

const (
	// below this many available cost points the client pauses before the next request
	throttleThreshold = 20.0
	throttleTarget    = 50.0
)

// Client executes GraphQL queries against the Storefront API and decodes `data` into out.
type Client interface {
	Query(ctx context.Context, query string, vars map[string]any, out any) error
}

// GraphQLError joins the messages of a GraphQL `errors` array.
type GraphQLError struct {
	Messages []string
	Codes    []string
}

func (e *GraphQLError) Error() string {
	return "graphql errors: " + strings.Join(e.Messages, "; ")
}

func (e *GraphQLError) Is(target error) bool {
	if target != ErrThrottled {
		return false
	}
	for _, c := range e.Codes {
		if c == "THROTTLED" {
			return true
		}
	}
	return false
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message    string `json:"message"`
		Extensions struct {
			Code string `json:"code"`
		} `json:"extensions"`
	} `json:"errors,omitempty"`
	Extensions struct {
		Cost *struct {
			ThrottleStatus struct {
				MaximumAvailable   float64 `json:"maximumAvailable"`
				CurrentlyAvailable float64 `json:"currentlyAvailable"`
				RestoreRate        float64 `json:"restoreRate"`
			} `json:"throttleStatus"`
		} `json:"cost"`
	} `json:"extensions"`
}

type GraphQLClient struct {
	rl         ratelimit.Limiter
	config     config.StorefrontConfig
	url        string
	httpClient *resty.Client
	cache      Cache
	cacheTTL   time.Duration

	throttleMu     sync.Mutex
	throttledUntil time.Time
}

// NewClient builds a Storefront API client. cache may be nil to disable response caching.
func NewClient(cfg config.StorefrontConfig, cache Cache, cacheTTL time.Duration) *GraphQLClient {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetRetryCount(cfg.MaxRetries).
		// Every query is a POST; storefront queries are reads and safe to repeat.
		SetAllowNonIdempotentRetry(true).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("X-Shopify-Storefront-Access-Token", cfg.AccessToken)

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &GraphQLClient{
		rl:         rl,
		config:     cfg,
		url:        cfg.GraphQLURL(),
		httpClient: httpClient,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// Close releases the underlying HTTP client.
func (c *GraphQLClient) Close() error {
	return c.httpClient.Close()
}

func (c *GraphQLClient) Query(ctx context.Context, query string, vars map[string]any, out any) error {
	vars = c.withContext(vars)

	key, err := cacheKey(query, vars)
	if err != nil {
		return err
	}

	if c.cache != nil {
		if data, ok, err := c.cache.Get(ctx, key); err != nil {
			log.Warnf("Storefront cache read failed, querying API: %v", err)
		} else if ok {
			log.Debugf("Storefront cache hit %s", key[:12])
			return decodeData(data, out)
		}
	}

	data, err := c.execute(ctx, query, vars)
	if err != nil {
		return err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, data, c.cacheTTL); err != nil {
			log.Warnf("Storefront cache write failed: %v", err)
		}
	}

	return decodeData(data, out)
}

// withContext adds the @inContext country and language unless the caller set them.
func (c *GraphQLClient) withContext(vars map[string]any) map[string]any {
	out := make(map[string]any, len(vars)+2)
	for k, v := range vars {
		out[k] = v
	}
	if _, ok := out["country"]; !ok && c.config.Country != "" {
		out["country"] = c.config.Country
	}
	if _, ok := out["language"]; !ok && c.config.Language != "" {
		out["language"] = c.config.Language
	}
	return out
}

func (c *GraphQLClient) execute(ctx context.Context, query string, vars map[string]any) (json.RawMessage, error) {
	if err := c.waitThrottle(ctx); err != nil {
		return nil, err
	}

	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(graphQLRequest{Query: query, Variables: vars}).
		Post(c.url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to call storefront API: %w", err)
	}

	var gqlResp graphQLResponse
	body := resp.String()

	if resp.IsError() {
		if json.Unmarshal([]byte(body), &gqlResp) == nil && len(gqlResp.Errors) > 0 {
			return nil, fmt.Errorf("storefront API status %d: %w", resp.StatusCode(), toGraphQLError(gqlResp))
		}
		return nil, fmt.Errorf("storefront API status %d: %s", resp.StatusCode(), resp.Status())
	}

	if err := json.Unmarshal([]byte(body), &gqlResp); err != nil {
		return nil, fmt.Errorf("failed to decode storefront response: %w", err)
	}

	if cost := gqlResp.Extensions.Cost; cost != nil {
		c.observeThrottle(cost.ThrottleStatus.CurrentlyAvailable, cost.ThrottleStatus.RestoreRate)
	}

	if len(gqlResp.Errors) > 0 {
		return nil, toGraphQLError(gqlResp)
	}

	if len(gqlResp.Data) == 0 || string(gqlResp.Data) == "null" {
		return nil, errors.New("storefront response has no data")
	}

	return gqlResp.Data, nil
}

func (c *GraphQLClient) observeThrottle(available, restoreRate float64) {
	if available >= throttleThreshold || restoreRate <= 0 {
		return
	}

	wait := time.Duration((throttleTarget - available) / restoreRate * float64(time.Second))

	c.throttleMu.Lock()
	defer c.throttleMu.Unlock()

	until := time.Now().Add(wait)
	if until.After(c.throttledUntil) {
		c.throttledUntil = until
		log.Warnf("Storefront query budget low (%.0f available), pausing requests for %v", available, wait.Round(time.Millisecond))
	}
}

func (c *GraphQLClient) waitThrottle(ctx context.Context) error {
	c.throttleMu.Lock()
	wait := time.Until(c.throttledUntil)
	c.throttleMu.Unlock()

	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("waiting for query budget: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

func toGraphQLError(resp graphQLResponse) *GraphQLError {
	gqlErr := &GraphQLError{}
	for _, e := range resp.Errors {
		gqlErr.Messages = append(gqlErr.Messages, e.Message)
		if e.Extensions.Code != "" {
			gqlErr.Codes = append(gqlErr.Codes, e.Extensions.Code)
		}
	}
	return gqlErr
}

func decodeData(data []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode storefront data: %w", err)
	}
	return nil
}

func cacheKey(query string, vars map[string]any) (string, error) {
	// encoding/json sorts map keys, so equal variables hash equally
	b, err := json.Marshal(vars)
	if err != nil {
		return "", fmt.Errorf("failed to encode query variables: %w", err)
	}
	sum := sha256.New()
	sum.Write([]byte(query))
	sum.Write([]byte{0})
	sum.Write(b)
	return hex.EncodeToString(sum.Sum(nil)), nil
}
