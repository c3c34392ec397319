package middleware

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidPassword = errors.New("invalid admin password")
)

// LoginResult tells the admin client how to authenticate later calls.
// Marker logins fill Header and Value; token logins fill Token and ExpiresAt.
type LoginResult struct {
	Header    string
	Value     string
	Token     string
	ExpiresAt time.Time
}

// Authenticator decides whether a request may reach admin routes.
type Authenticator interface {
	Authenticate(c *fiber.Ctx) error
	Login(password string) (LoginResult, error)
}

// RequireAdmin rejects requests the authenticator refuses with 401.
func RequireAdmin(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.Authenticate(c); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		c.Locals("admin", true)
		return c.Next()
	}
}

func hashPassword(password string) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("admin password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return hash, nil
}

func checkPassword(hash []byte, password string) error {
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}

// MarkerAuthenticator accepts any request carrying a fixed header value.
// It is a shared-secret gate, not real authentication.
type MarkerAuthenticator struct {
	header string
	marker string
	hash   []byte
}

func NewMarkerAuthenticator(header, marker, password string) (*MarkerAuthenticator, error) {
	if header == "" || marker == "" {
		return nil, fmt.Errorf("admin header and marker are required")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	return &MarkerAuthenticator{header: header, marker: marker, hash: hash}, nil
}

func (a *MarkerAuthenticator) Authenticate(c *fiber.Ctx) error {
	got := c.Get(a.header)
	if subtle.ConstantTimeCompare([]byte(got), []byte(a.marker)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

func (a *MarkerAuthenticator) Login(password string) (LoginResult, error) {
	if err := checkPassword(a.hash, password); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Header: a.header, Value: a.marker}, nil
}

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuthenticator issues HS256 tokens on login and checks them as
// "Authorization: Bearer <token>".
type JWTAuthenticator struct {
	secret []byte
	ttl    time.Duration
	hash   []byte
	now    func() time.Time
}

func NewJWTAuthenticator(secret, password string, ttl time.Duration) (*JWTAuthenticator, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required for jwt admin auth")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	return &JWTAuthenticator{secret: []byte(secret), ttl: ttl, hash: hash, now: time.Now}, nil
}

func (a *JWTAuthenticator) Login(password string) (LoginResult, error) {
	if err := checkPassword(a.hash, password); err != nil {
		return LoginResult{}, err
	}
	now := a.now()
	exp := now.Add(a.ttl)
	claims := AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign admin token: %w", err)
	}
	return LoginResult{Token: signed, ExpiresAt: exp}, nil
}

func (a *JWTAuthenticator) Authenticate(c *fiber.Ctx) error {
	auth := c.Get(fiber.HeaderAuthorization)
	if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return ErrUnauthorized
	}
	tokenStr := strings.TrimSpace(auth[7:])

	var claims AdminClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims,
		func(t *jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !token.Valid || claims.Role != "admin" {
		return ErrUnauthorized
	}
	return nil
}

var (
	_ Authenticator = (*MarkerAuthenticator)(nil)
	_ Authenticator = (*JWTAuthenticator)(nil)
)
