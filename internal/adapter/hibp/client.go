package hibp

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"passwordCheckerBackend/internal/core/domain"
	"passwordCheckerBackend/internal/port"
)

const (
	DefaultBaseURL = "https://api.pwnedpasswords.com/range/"
	DefaultTimeout = 5 * time.Second

	hashPrefixLen = 5
)

// Unknown is the degraded status returned when the breach database cannot
// be reached. Count -1 must never be read as "not breached".
var Unknown = domain.BreachStatus{Known: false, Count: -1}

// Client queries the Have I Been Pwned range API using the k-anonymity
// model: only the first five characters of the SHA-1 hash leave the
// process; suffix matching happens locally.
type Client struct {
	baseURL string
	http    *http.Client
	cache   port.RangeCache
	logger  *zap.Logger
}

// NewClient builds an oracle. cache may be nil to disable range caching.
func NewClient(baseURL string, timeout time.Duration, cache port.RangeCache, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cache:   cache,
		logger:  logger,
	}
}

func (c *Client) Lookup(ctx context.Context, password string) (domain.BreachStatus, error) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	prefix, suffix := digest[:hashPrefixLen], digest[hashPrefixLen:]

	body, err := c.fetchRange(ctx, prefix)
	if err != nil {
		return Unknown, err
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		candidate, countField, found := strings.Cut(line, ":")
		if !found || candidate != suffix {
			continue
		}
		count, err := strconv.ParseInt(countField, 10, 64)
		if err != nil {
			return Unknown, fmt.Errorf("malformed range response line %q: %w", line, err)
		}
		return domain.BreachStatus{Known: true, Count: count}, nil
	}

	return domain.BreachStatus{Known: false, Count: 0}, nil
}

func (c *Client) fetchRange(ctx context.Context, prefix string) (string, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, prefix); ok {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+prefix, nil)
	if err != nil {
		return "", fmt.Errorf("build range request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("query breach database: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("breach database returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read range response: %w", err)
	}
	body := string(data)

	if c.cache != nil {
		c.cache.Set(ctx, prefix, body)
	}
	if c.logger != nil {
		c.logger.Debug("fetched breach range", zap.String("prefix", prefix))
	}
	return body, nil
}
