package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/inwords/expenses/internal/event"
)

const (
	testSecret = "test-secret"
	testTTL    = time.Hour
)

func hashPin(t *testing.T, pin string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func testEvent(t *testing.T, pin string) *event.Event {
	t.Helper()

	return &event.Event{
		ID:          uuid.New(),
		Name:        "Trip",
		PinCodeHash: hashPin(t, pin),
		CurrencyID:  uuid.New(),
		CreatedAt:   time.Now(),
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name    string
		pinCode string
	}

	tests := []testCase{
		{name: "SuppliedPinCode", pinCode: "4821"},
		{name: "GeneratedPinCode", pinCode: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := event.NewMockRepository(ctrl)
			svc := event.NewService(repo, testSecret, testTTL)

			repo.EXPECT().
				CreateEvent(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, ev *event.Event, persons []*event.Person) error {
					ev.ID = uuid.New()
					ev.CreatedAt = time.Now()
					for _, p := range persons {
						p.ID = uuid.New()
						p.EventID = ev.ID
					}
					return nil
				})

			details, pinCode, err := svc.Create(context.Background(), event.CreateParams{
				Name:        "Trip",
				PinCode:     tt.pinCode,
				CurrencyID:  uuid.New(),
				PersonNames: []string{"Alice", "Bob"},
			})
			require.NoError(t, err)
			require.Len(t, details.Persons, 2)

			if tt.pinCode != "" {
				assert.Equal(t, tt.pinCode, pinCode)
			} else {
				assert.Len(t, pinCode, 4)
			}

			// The returned plain code must verify against the stored hash.
			err = bcrypt.CompareHashAndPassword([]byte(details.Event.PinCodeHash), []byte(pinCode))
			assert.NoError(t, err)
		})
	}
}

func TestService_VerifyAccess_PinCode(t *testing.T) {
	svc := event.NewService(nil, testSecret, testTTL)
	ev := testEvent(t, "4821")

	assert.NoError(t, svc.VerifyAccess(ev, event.Access{PinCode: "4821"}))
	assert.ErrorIs(t, svc.VerifyAccess(ev, event.Access{PinCode: "0000"}), event.ErrInvalidPinCode)
	assert.ErrorIs(t, svc.VerifyAccess(ev, event.Access{}), event.ErrInvalidPinCode)
}

func TestService_ShareToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := event.NewMockRepository(ctrl)
	svc := event.NewService(repo, testSecret, testTTL)

	ev := testEvent(t, "4821")
	repo.EXPECT().GetEvent(gomock.Any(), ev.ID).Return(ev, nil)

	token, err := svc.CreateShareToken(context.Background(), ev.ID, event.Access{PinCode: "4821"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// A valid token substitutes for the pin code.
	assert.NoError(t, svc.VerifyAccess(ev, event.Access{ShareToken: token}))

	// But only for the event it was issued for.
	other := testEvent(t, "1111")
	assert.ErrorIs(t, svc.VerifyAccess(other, event.Access{ShareToken: token}), event.ErrInvalidToken)

	// Garbage is rejected outright.
	assert.ErrorIs(t, svc.VerifyAccess(ev, event.Access{ShareToken: "not-a-token"}), event.ErrInvalidToken)
}

func TestService_ShareToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := event.NewMockRepository(ctrl)
	issuer := event.NewService(repo, testSecret, -time.Minute)

	ev := testEvent(t, "4821")
	repo.EXPECT().GetEvent(gomock.Any(), ev.ID).Return(ev, nil)

	token, err := issuer.CreateShareToken(context.Background(), ev.ID, event.Access{PinCode: "4821"})
	require.NoError(t, err)

	verifier := event.NewService(repo, testSecret, testTTL)
	assert.ErrorIs(t, verifier.VerifyAccess(ev, event.Access{ShareToken: token}), event.ErrTokenExpired)
}

func TestService_ShareToken_WrongPinCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := event.NewMockRepository(ctrl)
	svc := event.NewService(repo, testSecret, testTTL)

	ev := testEvent(t, "4821")
	repo.EXPECT().GetEvent(gomock.Any(), ev.ID).Return(ev, nil)

	_, err := svc.CreateShareToken(context.Background(), ev.ID, event.Access{PinCode: "0000"})
	assert.ErrorIs(t, err, event.ErrInvalidPinCode)
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := event.NewMockRepository(ctrl)
	svc := event.NewService(repo, testSecret, testTTL)

	ev := testEvent(t, "4821")
	persons := []*event.Person{
		{ID: uuid.New(), EventID: ev.ID, Name: "Alice"},
		{ID: uuid.New(), EventID: ev.ID, Name: "Bob"},
	}

	repo.EXPECT().GetEvent(gomock.Any(), ev.ID).Return(ev, nil)
	repo.EXPECT().ListPersons(gomock.Any(), ev.ID).Return(persons, nil)

	details, err := svc.Get(context.Background(), ev.ID, event.Access{PinCode: "4821"})
	require.NoError(t, err)
	assert.Equal(t, ev, details.Event)
	assert.Len(t, details.Persons, 2)
}

func TestService_Get_Deleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := event.NewMockRepository(ctrl)
	svc := event.NewService(repo, testSecret, testTTL)

	ev := testEvent(t, "4821")
	deletedAt := time.Now()
	ev.DeletedAt = &deletedAt

	repo.EXPECT().GetEvent(gomock.Any(), ev.ID).Return(ev, nil)

	// The deletion flag wins over access: even the right pin is rejected.
	_, err := svc.Get(context.Background(), ev.ID, event.Access{PinCode: "4821"})
	assert.ErrorIs(t, err, event.ErrDeleted)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := event.NewMockRepository(ctrl)
	tx := event.NewMockTx(ctrl)
	svc := event.NewService(repo, testSecret, testTTL)

	ev := testEvent(t, "4821")

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().FindEventForUpdate(gomock.Any(), ev.ID).Return(ev, nil)
	tx.EXPECT().SoftDeleteEvent(gomock.Any(), ev.ID).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	err := svc.Delete(context.Background(), ev.ID, event.Access{PinCode: "4821"})
	assert.NoError(t, err)
}

func TestService_Delete_Busy(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := event.NewMockRepository(ctrl)
	tx := event.NewMockTx(ctrl)
	svc := event.NewService(repo, testSecret, testTTL)

	id := uuid.New()

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().FindEventForUpdate(gomock.Any(), id).Return(nil, event.ErrBusy)
	tx.EXPECT().Rollback().Return(nil)

	err := svc.Delete(context.Background(), id, event.Access{PinCode: "4821"})
	assert.ErrorIs(t, err, event.ErrBusy)
}

func TestService_AddPersons(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := event.NewMockRepository(ctrl)
	tx := event.NewMockTx(ctrl)
	svc := event.NewService(repo, testSecret, testTTL)

	ev := testEvent(t, "4821")

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().FindEventForUpdate(gomock.Any(), ev.ID).Return(ev, nil)
	tx.EXPECT().InsertPersons(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, persons []*event.Person) error {
			for _, p := range persons {
				p.ID = uuid.New()
			}
			return nil
		})
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	persons, err := svc.AddPersons(context.Background(), ev.ID, event.Access{PinCode: "4821"}, []string{"Carol"})
	require.NoError(t, err)
	require.Len(t, persons, 1)
	assert.Equal(t, "Carol", persons[0].Name)
	assert.Equal(t, ev.ID, persons[0].EventID)
}

func TestService_AddPersons_Deleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := event.NewMockRepository(ctrl)
	tx := event.NewMockTx(ctrl)
	svc := event.NewService(repo, testSecret, testTTL)

	ev := testEvent(t, "4821")
	deletedAt := time.Now()
	ev.DeletedAt = &deletedAt

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().FindEventForUpdate(gomock.Any(), ev.ID).Return(ev, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.AddPersons(context.Background(), ev.ID, event.Access{PinCode: "4821"}, []string{"Carol"})
	assert.ErrorIs(t, err, event.ErrDeleted)
}
