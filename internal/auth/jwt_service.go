package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTokenTTL is the validity of an issued bearer token.
const DefaultTokenTTL = 60 * time.Minute

// Claims represents JWT claims.
type Claims struct {
	UserID uint `json:"id_usuario"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	log    *zap.Logger
}

// NewTokenService creates a token service signing with secret. A zero ttl falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration, log *zap.Logger) *TokenService {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		log:    log.Named("token"),
	}
}

// IssueToken signs {user id, expiry} for the user.
func (s *TokenService) IssueToken(userID uint) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates signature and expiry and returns the claims.
func (s *TokenService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ExpiresAt == nil {
		return nil, errors.New("token without expiry")
	}
	return claims, nil
}

// VerifyToken returns the user id carried by a valid token. It fails closed and only logs the reason.
func (s *TokenService) VerifyToken(tokenString string) (uint, bool) {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			s.log.Info("token expired")
		} else {
			s.log.Info("token rejected", zap.Error(err))
		}
		return 0, false
	}
	return claims.UserID, true
}
