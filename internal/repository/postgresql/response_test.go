package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/mealdash/provider-service/internal/db/mocks"
	"github.com/mealdash/provider-service/internal/repository"
	"github.com/mealdash/provider-service/internal/repository/postgresql"
)

type countRow struct {
	count int
	err   error
}

func (r countRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = r.count
	return nil
}

func TestResponseRepo_Create(t *testing.T) {
	ctx := context.Background()
	menuDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	testResponse := &repository.Response{
		ID:         "resp-123",
		ProviderID: "provider-1",
		CustomerID: "customer-1",
		MenuDate:   menuDate,
		MealType:   "lunch",
		Status:     "pending",
		Source:     "manual",
		CreatedAt:  menuDate,
		UpdatedAt:  menuDate,
	}

	t.Run("inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewResponseRepo(mockDB)

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(testResponse.ID),
			gomock.Eq(testResponse.ProviderID),
			gomock.Eq(testResponse.CustomerID),
			gomock.Eq(testResponse.MenuDate),
			gomock.Eq(testResponse.MealType),
			gomock.Eq(testResponse.Status),
			gomock.Eq(testResponse.Source),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		inserted, err := repo.Create(ctx, testResponse)
		assert.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("conflict leaves existing row untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewResponseRepo(mockDB)

		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(pgconn.CommandTag("INSERT 0 0"), nil)

		inserted, err := repo.Create(ctx, testResponse)
		assert.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewResponseRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(nil, expectedErr)

		_, err := repo.Create(ctx, testResponse)
		assert.Equal(t, expectedErr, err)
	})
}

func TestResponseRepo_GetByKey(t *testing.T) {
	ctx := context.Background()
	menuDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewResponseRepo(mockDB)

		want := &repository.Response{
			ID:         "resp-123",
			ProviderID: "provider-1",
			CustomerID: "customer-1",
			MenuDate:   menuDate,
			MealType:   "lunch",
			Status:     "pending",
		}

		mockDB.EXPECT().Get(
			gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Eq("provider-1"), gomock.Eq("customer-1"), gomock.Eq(menuDate), gomock.Eq("lunch"),
		).DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
			*(dest.(*repository.Response)) = *want
			return nil
		})

		got, err := repo.GetByKey(ctx, "provider-1", "customer-1", menuDate, "lunch")
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewResponseRepo(mockDB)

		mockDB.EXPECT().Get(
			gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(pgx.ErrNoRows)

		_, err := repo.GetByKey(ctx, "provider-1", "customer-1", menuDate, "lunch")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestResponseRepo_ConfirmIfPending(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)

	t.Run("pending row is confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewResponseRepo(mockDB)

		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Eq("10:30 AM"), gomock.Eq(now), gomock.Eq("resp-123"),
		).Return(pgconn.CommandTag("UPDATE 1"), nil)

		confirmed, err := repo.ConfirmIfPending(ctx, "resp-123", "10:30 AM", now)
		assert.NoError(t, err)
		assert.True(t, confirmed)
	})

	t.Run("row no longer pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewResponseRepo(mockDB)

		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(pgconn.CommandTag("UPDATE 0"), nil)

		confirmed, err := repo.ConfirmIfPending(ctx, "resp-123", "10:30 AM", now)
		assert.NoError(t, err)
		assert.False(t, confirmed)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewResponseRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(nil, expectedErr)

		_, err := repo.ConfirmIfPending(ctx, "resp-123", "10:30 AM", now)
		assert.Equal(t, expectedErr, err)
	})
}

func TestResponseRepo_CountPending(t *testing.T) {
	ctx := context.Background()
	menuDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("count returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewResponseRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(
			gomock.Any(), gomock.Any(),
			gomock.Eq("provider-1"), gomock.Eq(menuDate), gomock.Eq("lunch"),
		).Return(countRow{count: 4})

		count, err := repo.CountPending(ctx, "provider-1", menuDate, "lunch")
		assert.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("scan error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewResponseRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(
			gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(countRow{err: errors.New("scan failed")})

		_, err := repo.CountPending(ctx, "provider-1", menuDate, "lunch")
		assert.Error(t, err)
	})
}

func TestResponseRepo_GetPending(t *testing.T) {
	ctx := context.Background()
	menuDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewResponseRepo(mockDB)

	want := []*repository.Response{
		{ID: "resp-1", Status: "pending"},
		{ID: "resp-2", Status: "pending"},
	}

	mockDB.EXPECT().Select(
		gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Eq("provider-1"), gomock.Eq(menuDate), gomock.Eq("lunch"),
	).DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
		*(dest.(*[]*repository.Response)) = want
		return nil
	})

	got, err := repo.GetPending(ctx, "provider-1", menuDate, "lunch")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
