package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// The SportMap API issues tokens with xmlsoap-namespaced identity claims.
// The keys are opaque external identifiers; only these four are consumed.
const (
	claimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	claimEmailAddress   = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
	claimGivenName      = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/givenname"
	claimSurname        = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/surname"
)

type identityClaims struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

// decodeClaims extracts identity claims without verifying the signature.
// The client never holds the signing key; trust comes from the server having
// just issued the token (or from it being previously persisted).
func decodeClaims(token string) (identityClaims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return identityClaims{}, err
	}
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return identityClaims{}, errors.New("unexpected claims type")
	}

	return identityClaims{
		ID:        stringClaim(mapClaims, claimNameIdentifier),
		Email:     stringClaim(mapClaims, claimEmailAddress),
		FirstName: stringClaim(mapClaims, claimGivenName),
		LastName:  stringClaim(mapClaims, claimSurname),
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}
	return ""
}
