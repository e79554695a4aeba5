package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/platform/postgres"
	"github.com/taskflowhq/taskflow-api/internal/store"
	"github.com/taskflowhq/taskflow-api/internal/testutils"
	"golang.org/x/crypto/bcrypt"
)

func TestPostgresUserStore_Create(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("hashes the password and stores the user", func(t *testing.T) {
		testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost)

			user, err := domain.NewUser(testutils.UniqueEmail("create"), "password123")
			require.NoError(t, err, "Failed to create test user")

			err = userStore.Create(ctx, user)
			require.NoError(t, err, "Create should succeed for a new user")

			assert.Empty(t, user.Password, "Plaintext password should be cleared after Create")
			require.NotEmpty(t, user.HashedPassword, "HashedPassword should be set after Create")
			err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("password123"))
			assert.NoError(t, err, "Stored hash should verify against the original password")

			found, err := userStore.GetByID(ctx, user.ID)
			require.NoError(t, err, "GetByID should find the created user")
			assert.Equal(t, user.Email, found.Email, "Stored email should match")
		})
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost)
			email := testutils.UniqueEmail("duplicate")

			first, err := domain.NewUser(email, "password123")
			require.NoError(t, err, "Failed to create first user")
			require.NoError(t, userStore.Create(ctx, first), "First Create should succeed")

			second, err := domain.NewUser(email, "different456")
			require.NoError(t, err, "Failed to create second user")

			err = userStore.Create(ctx, second)
			assert.ErrorIs(t, err, store.ErrEmailExists, "Create should report the duplicate email")
		})
	})

	t.Run("rejects an invalid user", func(t *testing.T) {
		testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost)

			user := &domain.User{ID: uuid.New(), Email: testutils.UniqueEmail("short"), Password: "tiny"}
			err := userStore.Create(ctx, user)
			assert.ErrorIs(t, err, domain.ErrPasswordTooShort, "Create should surface the validation error")
		})
	})
}

func TestPostgresUserStore_GetByID(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("returns the stored user", func(t *testing.T) {
		testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost)
			email := testutils.UniqueEmail("getbyid")
			id := testutils.MustInsertUser(ctx, t, tx, email)

			user, err := userStore.GetByID(ctx, id)
			require.NoError(t, err, "GetByID should find the inserted user")
			assert.Equal(t, id, user.ID, "ID should match")
			assert.Equal(t, email, user.Email, "Email should match")
			assert.NotEmpty(t, user.HashedPassword, "HashedPassword should be populated")
		})
	})

	t.Run("reports a missing user", func(t *testing.T) {
		testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost)

			_, err := userStore.GetByID(ctx, uuid.New())
			assert.ErrorIs(t, err, store.ErrUserNotFound, "GetByID should report a missing user")
		})
	})
}

func TestPostgresUserStore_GetByEmail(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("returns the stored user", func(t *testing.T) {
		testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost)
			email := testutils.UniqueEmail("getbyemail")
			id := testutils.MustInsertUser(ctx, t, tx, email)

			user, err := userStore.GetByEmail(ctx, email)
			require.NoError(t, err, "GetByEmail should find the inserted user")
			assert.Equal(t, id, user.ID, "ID should match")
		})
	})

	t.Run("reports a missing user", func(t *testing.T) {
		testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost)

			_, err := userStore.GetByEmail(ctx, testutils.UniqueEmail("missing"))
			assert.ErrorIs(t, err, store.ErrUserNotFound, "GetByEmail should report a missing user")
		})
	})
}

func TestPostgresUserStore_WithTx(t *testing.T) {
	t.Parallel()
	db := testutils.GetTestDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		base := postgres.NewPostgresUserStore(db, bcrypt.MinCost)
		txStore := base.WithTx(tx)

		user, err := domain.NewUser(testutils.UniqueEmail("withtx"), "password123")
		require.NoError(t, err, "Failed to create test user")
		require.NoError(t, txStore.Create(ctx, user), "Create through the transaction should succeed")

		// Visible inside the transaction.
		_, err = txStore.GetByID(ctx, user.ID)
		assert.NoError(t, err, "User should be visible inside the transaction")

		// Invisible outside it.
		_, err = base.GetByID(ctx, user.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound, "User should not be visible outside the transaction")
	})
}
