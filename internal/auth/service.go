package auth

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	errors "github.com/frahmantamala/recruitment-service/internal"
)

// PersonRepository is the data access surface the auth service needs.
type PersonRepository interface {
	Create(user *User) error
	GetByUsername(username string) (*User, error)
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
}

type Service struct {
	personRepo     PersonRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
	logger         *slog.Logger
}

func NewService(personRepo PersonRepository, tokenGen TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		personRepo:     personRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Register validates the registration payload, hashes the credential and
// creates a person with the applicant role. Uniqueness failures are reported
// as field-level validation errors so the form can highlight them.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	availability, err := s.checkAvailability(dto.Username, dto.Email)
	if err != nil {
		s.logger.Error("availability lookup failed during registration", "error", err)
		return nil, errors.NewInternalError("registration failed", err)
	}
	if availability.UsernameTaken {
		return nil, errors.NewValidationFieldError("username", "username is already taken", errors.ErrCodeUsernameTaken)
	}
	if availability.EmailTaken {
		return nil, errors.NewValidationFieldError("email", "email is already registered", errors.ErrCodeEmailTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, errors.NewInternalError("registration failed", err)
	}

	user := &User{
		Username:     dto.Username,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		PersonNumber: dto.PersonNumber,
		Role:         RoleApplicant,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.personRepo.Create(user); err != nil {
		s.logger.Error("failed to create person", "error", err, "username", dto.Username)
		return nil, errors.NewInternalError("registration failed", err)
	}

	s.logger.Info("person registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Authenticate verifies credentials and mints a session token. It never
// reveals whether the username or the password was wrong.
func (s *Service) Authenticate(dto LoginDTO) (*User, string, time.Time, error) {
	if err := dto.Validate(); err != nil {
		return nil, "", time.Time{}, err
	}

	user, err := s.personRepo.GetByUsername(dto.Username)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenGenerator.GenerateSessionToken(user)
	if err != nil {
		s.logger.Error("failed to generate session token", "error", err, "user_id", user.ID)
		return nil, "", time.Time{}, err
	}

	return user, token, expiresAt, nil
}

// ValidateSession verifies the token and loads the current user by the
// embedded username.
func (s *Service) ValidateSession(tokenString string) (*User, error) {
	claims, err := s.tokenGenerator.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.personRepo.GetByUsername(claims.Username)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CheckAvailability answers the live username/email availability check.
func (s *Service) CheckAvailability(dto AvailabilityQueryDTO) (Availability, error) {
	if err := dto.Validate(); err != nil {
		return Availability{}, err
	}
	return s.checkAvailability(dto.Username, dto.Email)
}

func (s *Service) checkAvailability(username, email string) (Availability, error) {
	var out Availability
	if username != "" {
		taken, err := s.personRepo.UsernameExists(username)
		if err != nil {
			return Availability{}, err
		}
		out.UsernameTaken = taken
	}
	if email != "" {
		taken, err := s.personRepo.EmailExists(email)
		if err != nil {
			return Availability{}, err
		}
		out.EmailTaken = taken
	}
	return out, nil
}

// JWTTokenGenerator signs session tokens with a single HS256 secret.
type JWTTokenGenerator struct {
	Secret     []byte
	SessionTTL time.Duration
}

func NewJWTTokenGenerator(secret string, sessionTTL time.Duration) *JWTTokenGenerator {
	if sessionTTL <= 0 {
		sessionTTL = time.Hour
	}
	return &JWTTokenGenerator{
		Secret:     []byte(secret),
		SessionTTL: sessionTTL,
	}
}

func (j *JWTTokenGenerator) GenerateSessionToken(user *User) (string, time.Time, error) {
	expiresAt := time.Now().Add(j.SessionTTL)

	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.Secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
