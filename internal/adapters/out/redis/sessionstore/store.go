// Package sessionstore resolves session tokens to identities using Redis.
// Sign-in is handled by a separate account system that writes the session
// document; this adapter only reads it.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// sessionDTO is the JSON document stored under the session key.
type sessionDTO struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

// RedisIdentityProvider resolves session tokens against Redis.
// A missing or malformed session resolves to the guest identity so that an
// expired sign-in degrades to anonymous browsing instead of an error page.
type RedisIdentityProvider struct {
	client *redis.Client
}

// NewRedisIdentityProvider creates an identity provider on the given client.
func NewRedisIdentityProvider(client *redis.Client) *RedisIdentityProvider {
	return &RedisIdentityProvider{client: client}
}

func (p *RedisIdentityProvider) key(sessionToken string) string {
	return fmt.Sprintf("session:%s", sessionToken)
}

// Resolve maps a session token to an identity.
func (p *RedisIdentityProvider) Resolve(ctx context.Context, sessionToken string) (identity.Identity, error) {
	if sessionToken == "" {
		return identity.Guest(), nil
	}

	data, err := p.client.Get(ctx, p.key(sessionToken)).Result()
	if errors.Is(err, redis.Nil) {
		return identity.Guest(), nil
	}
	if err != nil {
		return identity.Identity{}, err
	}

	var dto sessionDTO
	if err = json.Unmarshal([]byte(data), &dto); err != nil {
		return identity.Guest(), nil
	}

	userID, err := kernel.UUIDFromString(dto.UserID)
	if err != nil {
		return identity.Guest(), nil
	}

	return identity.Authenticated(userID, dto.IsAdmin)
}

// StoreSession writes a session document for the given token. Used by seed
// tooling and tests; production sessions are written by the account system.
func (p *RedisIdentityProvider) StoreSession(
	ctx context.Context,
	sessionToken string,
	userID kernel.UUID,
	isAdmin bool,
	ttl time.Duration,
) error {
	data, err := json.Marshal(sessionDTO{
		UserID:  userID.String(),
		IsAdmin: isAdmin,
	})
	if err != nil {
		return err
	}

	return p.client.Set(ctx, p.key(sessionToken), data, ttl).Err()
}
