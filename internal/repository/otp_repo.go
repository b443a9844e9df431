package repository

import (
	"context"
	"errors"
	"time"

	"TaskTrackerAPI/internal/services"

	"github.com/redis/go-redis/v9"
)

// OTPRepository keeps verification codes in Redis. Keys expire server-side,
// so a missing key is the only signal callers need for "expired or never
// set".
type OTPRepository struct {
	client *redis.Client
}

func NewOTPRepository(client *redis.Client) *OTPRepository {
	return &OTPRepository{client: client}
}

func (r *OTPRepository) key(email string) string {
	return "otp:" + email
}

// Set overwrites any existing code for email and resets the TTL.
func (r *OTPRepository) Set(ctx context.Context, email string, code int, ttl time.Duration) error {
	return r.client.Set(ctx, r.key(email), code, ttl).Err()
}

func (r *OTPRepository) Get(ctx context.Context, email string) (int, error) {
	code, err := r.client.Get(ctx, r.key(email)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, services.ErrOTPExpired
		}
		return 0, err
	}
	return code, nil
}

func (r *OTPRepository) Delete(ctx context.Context, email string) error {
	return r.client.Del(ctx, r.key(email)).Err()
}
