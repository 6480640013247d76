package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/atapsolar/authhub/internal/pkg/constants"
	"github.com/atapsolar/authhub/internal/pkg/models"
)

// consumeOTPScript atomically deletes the record only when the stored code
// still matches. Read-then-delete without the script would leave a window
// where two concurrent verifications both redeem the same code.
const consumeOTPScript = `
local val = redis.call("GET", KEYS[1])
if not val then
	return 0
end
local rec = cjson.decode(val)
if rec.code ~= ARGV[1] then
	return 0
end
redis.call("DEL", KEYS[1])
return 1
`

// UpsertOTP stores the OTP record under its sanitized phone key, replacing
// any live record. The key TTL mirrors the record expiry.
func (r *AuthRepo) UpsertOTP(ctx context.Context, otp *models.OTP) error {
	ttl := time.Until(otp.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("OTP record already expired at upsert time")
	}

	payload, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP record: %w", err)
	}

	key := fmt.Sprintf(constants.KeyAuthOTP, otp.PhoneNumber)
	if err := r.redisClient.Set(ctx, key, payload, ttl); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	return nil
}

// GetOTP retrieves the live OTP record for a sanitized phone number. A
// missing key and a record past its expiry both read as absent.
func (r *AuthRepo) GetOTP(ctx context.Context, phoneNumber string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyAuthOTP, phoneNumber)

	val, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP record: %w", err)
	}

	// Expiry is checked against current wall-clock, not only the key TTL
	if !otp.ExpiresAt.After(time.Now()) {
		return nil, nil
	}

	return &otp, nil
}

// ConsumeOTP deletes the record for the key if its code still matches,
// enforcing single use under concurrent verification
func (r *AuthRepo) ConsumeOTP(ctx context.Context, phoneNumber, code string) (bool, error) {
	key := fmt.Sprintf(constants.KeyAuthOTP, phoneNumber)

	res, err := r.redisClient.Eval(ctx, consumeOTPScript, []string{key}, code)
	if err != nil {
		return false, fmt.Errorf("failed to consume OTP: %w", err)
	}

	deleted, ok := res.(int64)
	if !ok {
		return false, fmt.Errorf("unexpected consume script result: %v", res)
	}

	return deleted == 1, nil
}
