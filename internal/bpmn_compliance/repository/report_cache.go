package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
)

const (
	reportKeyPrefix = "bpmn:report:" // bpmn:report:{sha256 of graph json}
	defaultCacheTTL = time.Hour
)

// ReportCache memoizes validation reports by graph content. Validation is
// deterministic, so equal graphs share one entry.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ReportCache{client: client, ttl: ttl}
}

// Key hashes the JSON encoding of g.
func (c *ReportCache) Key(g *domain.Graph) (string, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return "", fmt.Errorf("failed to marshal graph: %w", err)
	}
	sum := sha256.Sum256(b)
	return reportKeyPrefix + hex.EncodeToString(sum[:]), nil
}

// Get returns the cached report for key. A miss is (nil, false, nil).
func (c *ReportCache) Get(ctx context.Context, key string) (*domain.Report, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get report: %w", err)
	}

	var r domain.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &r, true, nil
}

func (c *ReportCache) Set(ctx context.Context, key string, r *domain.Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set report: %w", err)
	}
	return nil
}
