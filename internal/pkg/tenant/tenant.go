// Package tenant extracts the authenticated account from request
// context. Every service resolves the tenant this way; repositories
// then scope all queries by the account ID.
package tenant

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// FromContext returns the account ID carried in the JWT claims.
func FromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	accountID, ok := claims["account_id"].(string)
	if !ok || accountID == "" {
		return "", fmt.Errorf("account_id claim is missing or invalid")
	}

	return accountID, nil
}
