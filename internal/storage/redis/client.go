package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

// Client wraps the go-redis client used for token revocation and rate limiting.
type Client struct {
	*goredis.Client
}

func NewClient(addr, password string, db int) *Client {
	return &Client{
		Client: goredis.NewClient(&goredis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.Client.Close()
}
