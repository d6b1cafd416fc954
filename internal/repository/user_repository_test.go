package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/repository"
)

func TestPostgresUserRepository_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		testDB.Reset(t)

		u := domain.User{Email: "ann@example.com", Name: "Ann", Role: domain.RoleUser, PasswordHash: "hash"}
		require.NoError(t, repo.Create(ctx, &u))
		assert.NotEmpty(t, u.ID)
		assert.False(t, u.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ann", got.Name)
		assert.Equal(t, "hash", got.PasswordHash)

		byEmail, err := repo.GetByEmail(ctx, "ANN@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		testDB.Reset(t)

		first := domain.User{Email: "dup@example.com", Name: "One", Role: domain.RoleUser}
		require.NoError(t, repo.Create(ctx, &first))

		second := domain.User{Email: "dup@example.com", Name: "Two", Role: domain.RoleUser}
		err := repo.Create(ctx, &second)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unknown and malformed ids are not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = repo.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("search by name or email", func(t *testing.T) {
		testDB.Reset(t)

		for _, u := range []domain.User{
			{Email: "alice@example.com", Name: "Alice", Role: domain.RoleUser},
			{Email: "bob@example.com", Name: "Bob", Role: domain.RoleUser},
			{Email: "carol@other.org", Name: "Carol Alison", Role: domain.RoleUser},
		} {
			u := u
			require.NoError(t, repo.Create(ctx, &u))
		}

		found, err := repo.Search(ctx, "ali", 10)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "Alice", found[0].Name)
		assert.Equal(t, "Carol Alison", found[1].Name)

		found, err = repo.Search(ctx, "other.org", 10)
		require.NoError(t, err)
		assert.Len(t, found, 1)

		found, err = repo.Search(ctx, "%", 10)
		require.NoError(t, err)
		assert.Empty(t, found, "wildcards must be matched literally")
	})
}

func TestPostgresUserRepository_BulkInsert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	newUser := func(email string) domain.User {
		return domain.User{ID: uuid.New().String(), Email: email, Name: "Seed User", Role: domain.RoleUser}
	}

	t.Run("insert multiple users successfully", func(t *testing.T) {
		testDB.Reset(t)

		users := make([]domain.User, 10)
		for i := range users {
			users[i] = newUser(uuid.New().String() + "@example.com")
		}

		result := repo.BulkInsert(ctx, users)

		assert.Equal(t, 10, result.SuccessCount)
		assert.Equal(t, 0, result.FailedCount)
		assert.Empty(t, result.Errors)
	})

	t.Run("handle duplicate emails in same batch", func(t *testing.T) {
		testDB.Reset(t)

		result := repo.BulkInsert(ctx, []domain.User{
			newUser("duplicate@example.com"),
			newUser("Duplicate@example.com"),
		})

		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 1, result.FailedCount)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "duplicate_email_in_batch", result.Errors[0].Reason)
		assert.Equal(t, 2, result.Errors[0].Row)
	})

	t.Run("handle pre-existing duplicate email", func(t *testing.T) {
		testDB.Reset(t)

		require.Equal(t, 1, repo.BulkInsert(ctx, []domain.User{newUser("existing@example.com")}).SuccessCount)

		result := repo.BulkInsert(ctx, []domain.User{newUser("existing@example.com")})
		assert.Equal(t, 0, result.SuccessCount)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "duplicate_email", result.Errors[0].Reason)
		assert.Equal(t, "email", result.Errors[0].Field)
	})

	t.Run("empty users slice", func(t *testing.T) {
		result := repo.BulkInsert(ctx, []domain.User{})

		assert.Equal(t, 0, result.SuccessCount)
		assert.Equal(t, 0, result.FailedCount)
		assert.Empty(t, result.Errors)
	})

	t.Run("context cancellation", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		result := repo.BulkInsert(cancelCtx, []domain.User{newUser("cancelled@example.com")})

		assert.Equal(t, 0, result.SuccessCount)
		assert.Equal(t, 1, result.FailedCount)
	})

	t.Run("stream all users", func(t *testing.T) {
		testDB.Reset(t)
		require.Equal(t, 3, repo.BulkInsert(ctx, []domain.User{
			newUser("a@example.com"), newUser("b@example.com"), newUser("c@example.com"),
		}).SuccessCount)

		var streamed []domain.User
		err := repo.StreamAll(ctx, func(u domain.User) error {
			streamed = append(streamed, u)
			return nil
		})
		require.NoError(t, err)
		assert.Len(t, streamed, 3)
	})

	t.Run("stream stops on cancelled callback", func(t *testing.T) {
		count := 0
		err := repo.StreamAll(ctx, func(u domain.User) error {
			count++
			return context.Canceled
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
