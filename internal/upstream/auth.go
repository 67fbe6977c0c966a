package upstream

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

// Identity is the authenticated HR user as seen by the backend, used by
// the assignment matcher.
type Identity struct {
	UserID record.ID
	Email  string
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := c.doJSON(ctx, "POST", "/api/token/", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	r, ok := record.AsRecord(payload)
	if !ok {
		return "", &Error{URL: "/api/token/", Message: "login response is not an object"}
	}
	token := record.ResolveString(r, "access_token", "access", "token")
	if token == "" {
		return "", &Error{URL: "/api/token/", Message: "login response carries no access token"}
	}
	return token, nil
}

// Profile fetches the authenticated user's profile record.
func (c *Client) Profile(ctx context.Context) (record.Record, error) {
	return c.getRecord(ctx, "/api/usuarios/me/")
}

// IdentityFromToken extracts the user id and email from the access
// token's claims without verifying the signature; the backend signed the
// token and remains the authority on it. Missing claims leave zero
// values and callers fall back to the profile endpoint.
func IdentityFromToken(token string) Identity {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Identity{}
	}

	r := record.Record(claims)
	return Identity{
		UserID: record.CoerceID(record.Resolve(r, "user_id", "usuario_id", "sub", "id")),
		Email:  record.ResolveString(r, "email", "correo", "user_email"),
	}
}

// ResolveIdentity returns the token-claim identity, completing missing
// fields from the profile endpoint when needed.
func (c *Client) ResolveIdentity(ctx context.Context) (Identity, error) {
	ident := IdentityFromToken(c.token)
	if !ident.UserID.IsZero() && ident.Email != "" {
		return ident, nil
	}

	profile, err := c.Profile(ctx)
	if err != nil {
		return ident, err
	}
	if ident.UserID.IsZero() {
		ident.UserID = record.CoerceID(record.Resolve(profile, "id", "user_id", "usuario_id"))
	}
	if ident.Email == "" {
		ident.Email = record.ResolveString(profile, "email", "correo", "correo_electronico")
	}
	return ident, nil
}
