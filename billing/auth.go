package billing

import (
	"context"
	"crypto/subtle"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
)

var secrets struct {
	// BillingAPIToken is the static bearer token accepted by the API.
	BillingAPIToken string
}

//encore:authhandler
func AuthHandler(ctx context.Context, token string) (auth.UID, error) {
	if subtle.ConstantTimeCompare([]byte(token), []byte(secrets.BillingAPIToken)) != 1 {
		return "", &errs.Error{Code: errs.Unauthenticated, Message: "invalid token"}
	}
	return auth.UID("api"), nil
}
