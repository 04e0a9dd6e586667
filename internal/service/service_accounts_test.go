package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/recook-book/internal/logger"
	"github.com/MKhiriev/recook-book/internal/mock"
	"github.com/MKhiriev/recook-book/internal/store"
	"github.com/MKhiriev/recook-book/internal/utils"
	"github.com/MKhiriev/recook-book/models"
)

func randomAccount() models.Account {
	return models.Account{
		FirstName: randomdata.FirstName(randomdata.RandomGender),
		LastName:  randomdata.LastName(),
		Email:     randomdata.Email(),
		Password:  "Secret123",
	}
}

// ─────────────────────────────────────────────
// ListAccounts / seeding
// ─────────────────────────────────────────────

func TestListAccounts_SeedsDemoAccountWhenEmpty(t *testing.T) {
	// Arrange
	st := newMemoryStorage(t)
	dir := newTestDirectory(t, st)

	// Act
	accounts, err := dir.ListAccounts(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	demo := accounts[0]
	assert.Equal(t, DemoAccountID, demo.ID)
	assert.Equal(t, "Demo", demo.FirstName)
	assert.Equal(t, "User", demo.LastName)
	assert.Equal(t, DemoAccountEmail, demo.Email)
	assert.Equal(t, DemoAccountPassword, demo.Password)
	assert.True(t, demo.Newsletter)
	assert.Equal(t, testNow, demo.CreatedAt)

	var stored []models.Account
	found, err := st.Read(context.Background(), store.TierDurable, store.KeyAccounts, &stored)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, accounts, stored)
}

func TestListAccounts_ReseedsAfterListIsEmptied(t *testing.T) {
	st := newMemoryStorage(t)
	ctx := context.Background()
	require.NoError(t, st.Write(ctx, store.TierDurable, store.KeyAccounts, []models.Account{}))

	accounts, err := newTestDirectory(t, st).ListAccounts(ctx)

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, DemoAccountEmail, accounts[0].Email)
}

func TestListAccounts_CorruptValueIsReseeded(t *testing.T) {
	durable := store.NewMemoryTier()
	st := store.NewStorage(durable, store.NewMemoryTier(), logger.Nop())
	ctx := context.Background()
	require.NoError(t, durable.Set(ctx, store.KeyAccounts, []byte(`{"oops"`)))

	accounts, err := newTestDirectory(t, st).ListAccounts(ctx)

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, DemoAccountEmail, accounts[0].Email)
}

func TestListAccounts_DoesNotSeedWhenAccountsExist(t *testing.T) {
	st := newMemoryStorage(t)
	ctx := context.Background()
	existing := []models.Account{{ID: 9, FirstName: "Only", Email: "only@example.com"}}
	require.NoError(t, st.Write(ctx, store.TierDurable, store.KeyAccounts, existing))

	accounts, err := newTestDirectory(t, st).ListAccounts(ctx)

	require.NoError(t, err)
	assert.Equal(t, existing, accounts)
}

// ─────────────────────────────────────────────
// CreateAccount
// ─────────────────────────────────────────────

func TestCreateAccount_AppendsWithIDAndCreatedAt(t *testing.T) {
	// Arrange
	st := newMemoryStorage(t)
	dir := newTestDirectory(t, st)
	ctx := context.Background()
	in := randomAccount()

	// Act
	created, err := dir.CreateAccount(ctx, in)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(100), created.ID)
	assert.Equal(t, testNow, created.CreatedAt)
	assert.Equal(t, in.Email, created.Email)

	accounts, err := dir.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, DemoAccountEmail, accounts[0].Email)
	assert.Equal(t, created, accounts[1])
}

func TestCreateAccount_TakesIDFromSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mock.NewMockIDSource(ctrl)
	ids.EXPECT().NextID().Return(int64(4242))

	dir := NewAccountDirectory(newMemoryStorage(t), ids, utils.FixedClock{T: testNow}, logger.Nop())
	created, err := dir.CreateAccount(context.Background(), randomAccount())

	require.NoError(t, err)
	assert.Equal(t, int64(4242), created.ID)
}

func TestCreateAccount_DuplicateEmailLeavesListUnchanged(t *testing.T) {
	st := newMemoryStorage(t)
	dir := newTestDirectory(t, st)
	ctx := context.Background()

	before, err := dir.ListAccounts(ctx)
	require.NoError(t, err)

	_, err = dir.CreateAccount(ctx, models.Account{FirstName: "Copy", Email: DemoAccountEmail, Password: "Other123"})

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	after, err := dir.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCreateAccount_EmailIsCaseSensitive(t *testing.T) {
	dir := newTestDirectory(t, newMemoryStorage(t))

	_, err := dir.CreateAccount(context.Background(), models.Account{Email: "DEMO@recookbook.com", Password: "x"})

	assert.NoError(t, err)
}

func TestCreateAccount_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mock.NewMockPersistentStore(ctrl)
	st.EXPECT().Read(gomock.Any(), store.TierDurable, store.KeyAccounts, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ store.Tier, _ string, dst any) (bool, error) {
			*dst.(*[]models.Account) = []models.Account{{ID: 1, Email: DemoAccountEmail}}
			return true, nil
		})
	st.EXPECT().Write(gomock.Any(), store.TierDurable, store.KeyAccounts, gomock.Any()).
		Return(errors.New("disk full"))

	dir := NewAccountDirectory(st, utils.NewSequenceIDSource(1), utils.FixedClock{T: testNow}, logger.Nop())
	_, err := dir.CreateAccount(context.Background(), randomAccount())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save accounts")
}

// ─────────────────────────────────────────────
// FindByEmail / VerifyCredentials
// ─────────────────────────────────────────────

func TestFindByEmail(t *testing.T) {
	dir := newTestDirectory(t, newMemoryStorage(t))
	ctx := context.Background()

	acc, err := dir.FindByEmail(ctx, DemoAccountEmail)
	require.NoError(t, err)
	assert.Equal(t, DemoAccountID, acc.ID)

	_, err = dir.FindByEmail(ctx, "Demo@recookbook.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestVerifyCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "demo", email: DemoAccountEmail, password: DemoAccountPassword},
		{name: "wrong password", email: DemoAccountEmail, password: "demo123!", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@example.com", password: DemoAccountPassword, wantErr: ErrInvalidCredentials},
		{name: "email case differs", email: "DEMO@RECOOKBOOK.COM", password: DemoAccountPassword, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newTestDirectory(t, newMemoryStorage(t))

			acc, err := dir.VerifyCredentials(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, acc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, acc.Email)
		})
	}
}

func TestVerifyCredentials_NewAccount(t *testing.T) {
	dir := newTestDirectory(t, newMemoryStorage(t))
	ctx := context.Background()
	in := randomAccount()
	created, err := dir.CreateAccount(ctx, in)
	require.NoError(t, err)

	acc, err := dir.VerifyCredentials(ctx, in.Email, in.Password)

	require.NoError(t, err)
	assert.Equal(t, created, acc)
}

func TestCreateAccount_ConcurrentSignupsAllPersist(t *testing.T) {
	dir := newTestDirectory(t, newMemoryStorage(t))
	ctx := context.Background()
	const n = 20

	errs := make(chan error, n)
	for i := range n {
		go func() {
			_, err := dir.CreateAccount(ctx, models.Account{
				Email:    randomdata.StringNumber(3, "") + "-" + string(rune('a'+i)) + "@example.com",
				Password: "Secret123",
			})
			errs <- err
		}()
	}
	for range n {
		require.NoError(t, <-errs)
	}

	accounts, err := dir.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, n+1)
}
