package services

import (
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"smarttoll/internal/domain"
	"smarttoll/internal/domain/models"
	"smarttoll/internal/utils"
)

// AuthService is the identity stub behind the login screen. Accounts live in
// memory for the process lifetime; registration is the reference product's
// two-step OTP flow with a fixed delivery delay and no real verification.
type AuthService struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	pending  map[string]*pendingRegistration
	nextID   domain.ID

	Secret   []byte
	TokenTTL time.Duration
	OTPDelay time.Duration

	RequestID string
}

type pendingRegistration struct {
	form    RegisterForm
	readyAt time.Time
}

type RegisterForm struct {
	Name          string      `json:"name" binding:"required"`
	Email         string      `json:"email" binding:"required,email"`
	Phone         string      `json:"phone" binding:"required"`
	VehicleNumber string      `json:"vehicleNumber"`
	Password      string      `json:"password" binding:"required,min=6"`
	Role          domain.Role `json:"role"`
}

func NewAuthService(secret []byte) *AuthService {
	return &AuthService{
		accounts: map[string]*models.Account{},
		pending:  map[string]*pendingRegistration{},
		nextID:   1,
		Secret:   secret,
		TokenTTL: 24 * time.Hour,
		OTPDelay: time.Second,
	}
}

// SeedAccount installs a demo login at boot. Password is hashed here so the
// seeds go through the same code path as registrations.
func (s *AuthService) SeedAccount(name, email, password string, role domain.Role) (models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := &models.Account{
		ID:           s.nextID,
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		Role:         role,
		Status:       "active",
	}
	s.nextID++
	s.accounts[acc.Email] = acc
	return *acc, nil
}

// Register starts the two-step flow: the form is parked and the OTP becomes
// verifiable once the delivery delay elapses.
func (s *AuthService) Register(form RegisterForm) error {
	email := strings.ToLower(strings.TrimSpace(form.Email))
	if email == "" {
		return domain.ValidationError{Field: "email", Msg: "must not be empty"}
	}
	if len(form.Password) < 6 {
		return domain.ValidationError{Field: "password", Msg: "must be at least 6 characters"}
	}
	role := form.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return domain.ValidationError{Field: "role", Msg: "unknown role"}
	}
	form.Role = role
	form.Email = email

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[email]; exists {
		return domain.ConflictError{Resource: "account", Msg: "email already registered"}
	}
	s.pending[email] = &pendingRegistration{form: form, readyAt: time.Now().Add(s.OTPDelay)}
	utils.LogEvent(s.RequestID, "auth", "register", "otp challenge issued for "+email)
	return nil
}

// VerifyOTP completes registration. Any six-digit code passes once the
// delivery delay has elapsed; real verification is a future collaborator.
func (s *AuthService) VerifyOTP(email, code string) (models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	code = strings.TrimSpace(code)
	if len(code) != 6 {
		return models.Account{}, domain.ValidationError{Field: "otp", Msg: "must be 6 digits"}
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return models.Account{}, domain.ValidationError{Field: "otp", Msg: "must be 6 digits"}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[email]
	if !ok {
		return models.Account{}, domain.NotFoundError{Resource: "registration"}
	}
	if time.Now().Before(p.readyAt) {
		return models.Account{}, domain.ValidationError{Field: "otp", Msg: "not delivered yet, try again"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(p.form.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}
	acc := &models.Account{
		ID:            s.nextID,
		Name:          p.form.Name,
		Email:         email,
		Phone:         p.form.Phone,
		VehicleNumber: p.form.VehicleNumber,
		PasswordHash:  string(hash),
		Role:          p.form.Role,
		Status:        "active",
	}
	s.nextID++
	s.accounts[email] = acc
	delete(s.pending, email)
	utils.LogEvent(s.RequestID, "auth", "verify_otp", "account created for "+email)
	return *acc, nil
}

// Login checks credentials and opens a session. The role comes from the
// account record, never from the client.
func (s *AuthService) Login(email, password string) (domain.SessionContext, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	acc, ok := s.accounts[email]
	s.mu.Unlock()
	if !ok {
		return domain.SessionContext{}, "", domain.ValidationError{Msg: "email or password incorrect"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return domain.SessionContext{}, "", domain.ValidationError{Msg: "email or password incorrect"}
	}

	sess := domain.SessionContext{UserID: acc.ID, Email: acc.Email, Role: acc.Role}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": int64(acc.ID),
		"email":   acc.Email,
		"role":    string(acc.Role),
		"exp":     time.Now().Add(s.TokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return domain.SessionContext{}, "", domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "login", "session opened for "+email+" role="+string(acc.Role))
	return sess, signed, nil
}

// Account returns the stored record for an email, for handlers that need
// profile fields after auth.
func (s *AuthService) Account(email string) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return models.Account{}, false
	}
	return *acc, true
}

// Count reports how many accounts are registered, for the admin stats tile.
func (s *AuthService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}
