package auth

import (
	"context"
	"errors"
	"time"

	"github.com/geosohn7/FunRun/internal/user"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type Service struct {
	secret []byte
	users  *user.Service
}

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func NewService(secret string, users *user.Service) *Service {
	return &Service{
		secret: []byte(secret),
		users:  users,
	}
}

// Login resolves the nickname to an account, creating one on first login,
// and issues a token pair for it.
func (s *Service) Login(ctx context.Context, nickname string) (*user.User, TokenResponse, error) {
	if nickname == "" {
		return nil, TokenResponse{}, errors.New("nickname required")
	}
	u, err := s.users.LoginOrCreate(ctx, nickname)
	if err != nil {
		return nil, TokenResponse{}, err
	}
	tokens, err := s.GenerateTokens(u.ID)
	if err != nil {
		return nil, TokenResponse{}, err
	}
	return u, tokens, nil
}

func (s *Service) GenerateTokens(userID string) (TokenResponse, error) {
	access, err := s.signToken(userID, accessTokenTTL)
	if err != nil {
		return TokenResponse{}, err
	}

	refresh, err := s.signToken(userID, refreshTokenTTL)
	if err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
	}, nil
}

func (s *Service) ValidateToken(token string) (string, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

func (s *Service) signToken(userID string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) parseToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("token invalid")
	}
	return claims, nil
}
