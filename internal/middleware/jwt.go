package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"urban_access/internal/apperr"
	"urban_access/internal/models"
)

const principalKey = "principal"

// Claims is the payload of an UrbanAccess bearer token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 tokens bound to one issuer and audience.
type TokenManager struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewTokenManager(key, issuer, audience string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		key:      []byte(key),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	cp := *m
	cp.now = now
	return &cp
}

// Issue signs a token for user and returns it with its expiry.
func (m *TokenManager) Issue(user *models.User) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// VerifyToken checks signature, issuer, audience and expiry.
func (m *TokenManager) VerifyToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(token *jwt.Token) (interface{}, error) {
			return m.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, apperr.ErrInvalidToken
	}
	return claims, nil
}

// TokenVerifier resolves a raw bearer token into claims.
type TokenVerifier interface {
	VerifyToken(token string) (*Claims, error)
}

// Principal is the authenticated caller, handed explicitly to protected handlers.
type Principal struct {
	UserID uint
	Name   string
	Email  string
}

// RequireAuth ensures a valid JWT is present and stores the caller's Principal.
func RequireAuth(verifier TokenVerifier, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := verifier.VerifyToken(tokenString)
		if err != nil {
			log.WithError(err).WithField("path", c.FullPath()).Debug("Rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrInvalidToken.Message})
			return
		}

		c.Set(principalKey, Principal{
			UserID: claims.UserID,
			Name:   claims.Name,
			Email:  claims.Email,
		})
		c.Next()
	}
}

// PrincipalFrom returns the Principal stored by RequireAuth.
func PrincipalFrom(c *gin.Context) (Principal, error) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, errors.New("no authenticated principal in context")
	}
	p, ok := v.(Principal)
	if !ok {
		return Principal{}, errors.New("principal has unexpected type")
	}
	return p, nil
}

// WithPrincipal adapts a handler that needs the caller into a gin.HandlerFunc.
// Must run behind RequireAuth.
func WithPrincipal(h func(c *gin.Context, p Principal)) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := PrincipalFrom(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrInvalidToken.Message})
			return
		}
		h(c, p)
	}
}
