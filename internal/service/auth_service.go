package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/repodosen/repositori-backend/internal/config"
	"github.com/repodosen/repositori-backend/internal/model"
	"github.com/repodosen/repositori-backend/internal/repository"
)

// Claims extends JWT standard claims with the lecturer's NIP. The NIP also
// doubles as the registered subject.
type Claims struct {
	jwt.RegisteredClaims
	NIP string `json:"nip"`
}

// AuthService issues and validates lecturer tokens.
//
// Identity is established by an exact nama_lengkap+nip match against the
// dosen table. No secret credential is involved; that is the product's
// contract, not an oversight of this implementation. Tokens are stateless:
// logout performs no server-side revocation and a token stays valid until
// its natural expiry.
type AuthService struct {
	cfg       *config.Config
	dosenRepo repository.DosenRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, dosenRepo repository.DosenRepository) *AuthService {
	return &AuthService{cfg: cfg, dosenRepo: dosenRepo}
}

// Login looks up the lecturer by exact nama_lengkap+nip and returns a signed
// token on success. Any lookup miss collapses into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, namaLengkap, nip string) (string, *model.Dosen, error) {
	dosen, err := s.dosenRepo.GetByNamaAndNIP(ctx, namaLengkap, nip)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup dosen: %w", err)
	}

	token, err := s.generateToken(dosen.NIP)
	if err != nil {
		return "", nil, err
	}
	return token, dosen, nil
}

func (s *AuthService) generateToken(nip string) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   nip,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		NIP: nip,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
