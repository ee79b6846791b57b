package event

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=event
type Repository interface {
	CreateEvent(ctx context.Context, ev *Event, persons []*Person) error
	GetEvent(ctx context.Context, id uuid.UUID) (*Event, error)
	ListPersons(ctx context.Context, eventID uuid.UUID) ([]*Person, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx is one database transaction holding the event's write lock.
type Tx interface {
	FindEventForUpdate(ctx context.Context, id uuid.UUID) (*Event, error)
	InsertPersons(ctx context.Context, persons []*Person) error
	SoftDeleteEvent(ctx context.Context, id uuid.UUID) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo        Repository
	tokenSecret []byte
	tokenTTL    time.Duration
}

func NewService(repo Repository, tokenSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		repo:        repo,
		tokenSecret: []byte(tokenSecret),
		tokenTTL:    tokenTTL,
	}
}

type CreateParams struct {
	Name        string
	PinCode     string // generated when empty
	CurrencyID  uuid.UUID
	PersonNames []string
}

// Create inserts a new event together with its initial participants.
// The pin code is stored as a bcrypt hash; the plain code is returned
// once so the creator can share it.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Details, string, error) {
	pinCode := params.PinCode
	if pinCode == "" {
		code, err := generatePinCode(4)
		if err != nil {
			return nil, "", fmt.Errorf("generating pin code: %w", err)
		}

		pinCode = code
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pinCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing pin code: %w", err)
	}

	ev := &Event{
		Name:        params.Name,
		PinCodeHash: string(hash),
		CurrencyID:  params.CurrencyID,
	}

	persons := make([]*Person, len(params.PersonNames))
	for i, name := range params.PersonNames {
		persons[i] = &Person{Name: name}
	}

	if err := s.repo.CreateEvent(ctx, ev, persons); err != nil {
		return nil, "", err
	}

	return &Details{Event: ev, Persons: persons}, pinCode, nil
}

// Get returns the event and its participants, gated by pin code or
// share token.
func (s *Service) Get(ctx context.Context, id uuid.UUID, access Access) (*Details, error) {
	ev, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if ev.DeletedAt != nil {
		return nil, ErrDeleted
	}

	if err := s.VerifyAccess(ev, access); err != nil {
		return nil, err
	}

	persons, err := s.repo.ListPersons(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Details{Event: ev, Persons: persons}, nil
}

// Delete soft-deletes the event. The row is locked for the duration of
// the check-then-delete sequence; a deleted event rejects all further
// mutation.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, access Access) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	ev, err := tx.FindEventForUpdate(ctx, id)
	if err != nil {
		return err
	}

	if ev.DeletedAt != nil {
		return ErrDeleted
	}

	if err := s.VerifyAccess(ev, access); err != nil {
		return err
	}

	if err := tx.SoftDeleteEvent(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}

	return nil
}

// AddPersons appends participants to an existing event under the same
// locking discipline as expense writes.
func (s *Service) AddPersons(ctx context.Context, id uuid.UUID, access Access, names []string) ([]*Person, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin add persons: %w", err)
	}
	defer tx.Rollback()

	ev, err := tx.FindEventForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if ev.DeletedAt != nil {
		return nil, ErrDeleted
	}

	if err := s.VerifyAccess(ev, access); err != nil {
		return nil, err
	}

	persons := make([]*Person, len(names))
	for i, name := range names {
		persons[i] = &Person{EventID: id, Name: name}
	}

	if err := tx.InsertPersons(ctx, persons); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit add persons: %w", err)
	}

	return persons, nil
}

// CreateShareToken issues a signed token scoped to the event. A valid
// token substitutes for the pin code on reads.
func (s *Service) CreateShareToken(ctx context.Context, id uuid.UUID, access Access) (string, error) {
	ev, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return "", err
	}

	if ev.DeletedAt != nil {
		return "", ErrDeleted
	}

	if err := s.VerifyAccess(ev, access); err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   ev.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.tokenSecret)
	if err != nil {
		return "", fmt.Errorf("signing share token: %w", err)
	}

	return token, nil
}

// VerifyAccess checks the presented credential against the event. A
// share token is checked first when present; otherwise the pin code is
// compared against the stored hash.
func (s *Service) VerifyAccess(ev *Event, access Access) error {
	if access.ShareToken != "" {
		return s.verifyShareToken(ev, access.ShareToken)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ev.PinCodeHash), []byte(access.PinCode)); err != nil {
		return ErrInvalidPinCode
	}

	return nil
}

func (s *Service) verifyShareToken(ev *Event, token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return s.tokenSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}

		return ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != ev.ID.String() {
		return ErrInvalidToken
	}

	return nil
}

func generatePinCode(length int) (string, error) {
	digits := make([]byte, length)

	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}

		digits[i] = byte('0') + byte(n.Int64())
	}

	return string(digits), nil
}
