package couch

import (
	"encoding/base64"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"time"
)

type AuthScheme string

const (
	BearerAuth = AuthScheme("Bearer")
	BasicAuth  = AuthScheme("Basic")
	TokenAuth  = AuthScheme("Token")
)

// Auth produces the Authorization header value for each view request
type Auth interface {
	AuthHeader() (string, error)
}

// AuthToken authenticates with a ready made token under the given scheme
func AuthToken(scheme AuthScheme, token string) Auth {
	return tokenAuth{
		scheme: scheme,
		token:  token,
	}
}

type tokenAuth struct {
	scheme AuthScheme
	token  string
}

func (a tokenAuth) AuthHeader() (string, error) {
	if a.scheme == "" {
		return a.token, nil
	}
	return string(a.scheme) + " " + a.token, nil
}

// AuthUsernamePassword authenticates with basic credentials
func AuthUsernamePassword(username string, password string) Auth {
	return usernamePasswordAuth{
		username: username,
		password: password,
	}
}

type usernamePasswordAuth struct {
	username string
	password string
}

func (a usernamePasswordAuth) AuthHeader() (string, error) {
	return string(BasicAuth) + " " + base64.StdEncoding.EncodeToString([]byte(a.username+":"+a.password)), nil
}

// Jwt authenticates with an HS256-signed JWT minted from the given secret and
// claims - for view servers configured with an hmac jwt authentication secret
//
// example:
//
//	couch.NewClient(couch.Options{
//	    Auth: couch.Jwt("my-secret",
//	        couch.SubjectClaim("my-user"),
//	        couch.ExpireAfterClaim(5 * time.Minute)),
//	})
func Jwt(secret string, claims ...ClaimValue) Auth {
	return jwtAuth{
		signingMethod: jwt.SigningMethodHS256,
		secret:        secret,
		claims:        claims,
	}
}

// JwtHS384 is Jwt with HS384 signing
func JwtHS384(secret string, claims ...ClaimValue) Auth {
	return jwtAuth{
		signingMethod: jwt.SigningMethodHS384,
		secret:        secret,
		claims:        claims,
	}
}

// JwtHS512 is Jwt with HS512 signing
func JwtHS512(secret string, claims ...ClaimValue) Auth {
	return jwtAuth{
		signingMethod: jwt.SigningMethodHS512,
		secret:        secret,
		claims:        claims,
	}
}

type jwtAuth struct {
	signingMethod jwt.SigningMethod
	secret        string
	claims        []ClaimValue
}

func (a jwtAuth) AuthHeader() (string, error) {
	claims := make(jwt.MapClaims, len(a.claims))
	for _, claim := range a.claims {
		if claim != nil {
			v := claim.Value()
			if fn, ok := v.(func() any); ok {
				v = fn()
			}
			claims[claim.Name()] = v
		}
	}
	token, err := jwt.NewWithClaims(a.signingMethod, claims).SignedString([]byte(a.secret))
	if err != nil {
		return "", err
	}
	return string(BearerAuth) + " " + token, nil
}

func (a jwtAuth) String() string {
	return fmt.Sprintf("Jwt(%s, %d claims)", a.signingMethod.Alg(), len(a.claims))
}

type ClaimValue interface {
	Name() string
	Value() any
}

func Claim(name string, value any) ClaimValue {
	return claimValue{
		name:  name,
		value: value,
	}
}

func SubjectClaim(value any) ClaimValue {
	return claimValue{
		name:  "sub",
		value: value,
	}
}

func IssuerClaim(value any) ClaimValue {
	return claimValue{
		name:  "iss",
		value: value,
	}
}

func AudienceClaim(value any) ClaimValue {
	return claimValue{
		name:  "aud",
		value: value,
	}
}

func ExpireAtClaim(expiry time.Time) ClaimValue {
	return claimValue{
		name:  "exp",
		value: expiry.Unix(),
	}
}

// ExpireAfterClaim sets the "exp" claim relative to the time each token is
// minted (not the time the Auth was built)
func ExpireAfterClaim(dur time.Duration) ClaimValue {
	return claimValue{
		name: "exp",
		value: func() any {
			return time.Now().Add(dur).Unix()
		},
	}
}

type claimValue struct {
	name  string
	value any
}

func (c claimValue) Name() string {
	return c.name
}

func (c claimValue) Value() any {
	return c.value
}
