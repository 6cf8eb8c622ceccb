package orgcache

import (
	"context"
	"fmt"
	"time"

	"followupplan-service/internal/app/config"
	"followupplan-service/internal/app/contracts"
	"followupplan-service/internal/app/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// CachedOrganizationRegistry fronts the organization registry with a TTL
// cache. Only the read paths are cached; a cache failure degrades to a
// direct registry call.
type CachedOrganizationRegistry struct {
	registry      contracts.OrganizationRegistryClient
	cache         contracts.RedisRepository
	log           *zap.Logger
	validationTTL time.Duration
	addressTTL    time.Duration
}

func NewCachedOrganizationRegistry(
	registry contracts.OrganizationRegistryClient,
	cache contracts.RedisRepository,
	log *zap.Logger,
	cfg *config.InternalConfig,
) contracts.OrganizationRegistryClient {
	return &CachedOrganizationRegistry{
		registry:      registry,
		cache:         cache,
		log:           log,
		validationTTL: time.Duration(cfg.OrgCache.ValidationTTLInMinutes) * time.Minute,
		addressTTL:    time.Duration(cfg.OrgCache.AddressTTLInMinutes) * time.Minute,
	}
}

func (c *CachedOrganizationRegistry) ValidateOrganization(ctx context.Context, orgID string) (bool, error) {
	key := fmt.Sprintf("org:valid:%s", orgID)
	if cached, err := c.cache.Get(ctx, key); err == nil && cached != "" {
		var valid bool
		if err := json.Unmarshal([]byte(cached), &valid); err == nil {
			return valid, nil
		}
	}

	valid, err := c.registry.ValidateOrganization(ctx, orgID)
	if err != nil {
		return false, err
	}

	if err := c.cache.Set(ctx, key, valid, c.validationTTL); err != nil {
		c.log.Warn("CachedOrganizationRegistry.ValidateOrganization cache write failed",
			zap.String("org_id", orgID),
			zap.Error(err))
	}
	return valid, nil
}

func (c *CachedOrganizationRegistry) GetOrganizationName(ctx context.Context, orgNumber string) (string, error) {
	key := fmt.Sprintf("org:name:%s", orgNumber)
	if cached, err := c.cache.Get(ctx, key); err == nil && cached != "" {
		var name string
		if err := json.Unmarshal([]byte(cached), &name); err == nil {
			return name, nil
		}
	}

	name, err := c.registry.GetOrganizationName(ctx, orgNumber)
	if err != nil {
		return "", err
	}

	if err := c.cache.Set(ctx, key, name, c.addressTTL); err != nil {
		c.log.Warn("CachedOrganizationRegistry.GetOrganizationName cache write failed",
			zap.String("org_number", orgNumber),
			zap.Error(err))
	}
	return name, nil
}

func (c *CachedOrganizationRegistry) FindOrganizationSummary(ctx context.Context, name string) (*models.OrganizationAddress, error) {
	key := fmt.Sprintf("org:summary:%s", name)
	if cached, err := c.cache.Get(ctx, key); err == nil && cached != "" {
		var address models.OrganizationAddress
		if err := json.Unmarshal([]byte(cached), &address); err == nil {
			return &address, nil
		}
	}

	address, err := c.registry.FindOrganizationSummary(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, address, c.addressTTL); err != nil {
		c.log.Warn("CachedOrganizationRegistry.FindOrganizationSummary cache write failed",
			zap.String("org_name", name),
			zap.Error(err))
	}
	return address, nil
}
