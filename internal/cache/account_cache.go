package cache

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/accountrest/account-service/internal/models"
)

const accountKeyPrefix = "account:view:"

// AccountCache keeps a JSON projection of each account in Redis so that
// single-record reads can skip PostgreSQL. Cache failures are logged and
// swallowed: Redis being down degrades reads to the database, nothing more.
type AccountCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewAccountCache creates an AccountCache backed by the provided Redis
// client. Pass ttl 0 for entries that should not expire.
func NewAccountCache(client *goredis.Client, ttl time.Duration) *AccountCache {
	return &AccountCache{client: client, ttl: ttl}
}

func accountKey(id int) string {
	return accountKeyPrefix + strconv.Itoa(id)
}

// Get returns the cached account, or (nil, false) on a miss or a broken entry.
func (c *AccountCache) Get(ctx context.Context, id int) (*models.Account, bool) {
	data, err := c.client.Get(ctx, accountKey(id)).Result()
	if err != nil {
		return nil, false
	}
	var account models.Account
	if err := json.Unmarshal([]byte(data), &account); err != nil {
		return nil, false
	}
	return &account, true
}

// Put stores or refreshes the cache entry for an account.
func (c *AccountCache) Put(ctx context.Context, account *models.Account) {
	data, err := json.Marshal(account)
	if err != nil {
		log.Printf("AccountCache: marshal error for account %d: %v", account.ID, err)
		return
	}
	if err := c.client.Set(ctx, accountKey(account.ID), data, c.ttl).Err(); err != nil {
		log.Printf("AccountCache: write error for account %d: %v", account.ID, err)
	}
}

// Invalidate removes the cache entry for a deleted account.
func (c *AccountCache) Invalidate(ctx context.Context, id int) {
	if err := c.client.Del(ctx, accountKey(id)).Err(); err != nil {
		log.Printf("AccountCache: delete error for account %d: %v", id, err)
	}
}
