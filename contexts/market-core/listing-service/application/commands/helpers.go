package commands

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

func hashPayload(payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("hash request payload: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// resolveIdempotencyKey falls back to a request-derived key so callers that
// do not send idempotency headers still get safe retries.
func resolveIdempotencyKey(explicit string, requestHash string) string {
	if key := strings.TrimSpace(explicit); key != "" {
		return key
	}
	return "derived:" + requestHash
}
