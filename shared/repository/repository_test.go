package repository_test

import (
	"context"
	"database/sql/driver"
	otelMock "deskbooker/infras/otel/mocks"
	"deskbooker/infras/postgres"
	"deskbooker/shared"
	"deskbooker/shared/dto"
	"deskbooker/shared/repository"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seat struct {
	ID    int    `db:"id"`
	Label string `db:"label"`
	Zone  string `db:"zone"`
}

var seatColumns = []string{"id", "label", "zone"}

func setup(t *testing.T) (sqlmock.Sqlmock, repository.Repository[seat]) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := &postgres.Connection{
		Read:  sqlx.NewDb(db, "postgres"),
		Write: sqlx.NewDb(db, "postgres"),
	}

	return mock, repository.NewRepository[seat]("seat", "seats", "id", conn, otelMock.NewOtel())
}

func TestGetAll(t *testing.T) {
	tests := []struct {
		name   string
		params dto.QueryParams
		filter dto.FilterGroup
		query  string
		args   []driver.Value
	}{
		{
			name:   "page and limit",
			params: dto.QueryParams{Page: 3, Limit: 10},
			query:  "ORDER BY seats.id ASC LIMIT $1 OFFSET $2",
			args:   []driver.Value{10, 20},
		},
		{
			name:   "first page starts at zero",
			params: dto.QueryParams{Page: 1, Limit: 5},
			query:  "ORDER BY seats.id ASC LIMIT $1 OFFSET $2",
			args:   []driver.Value{5, 0},
		},
		{
			name:   "limit without page",
			params: dto.QueryParams{Limit: 5},
			query:  "ORDER BY seats.id ASC LIMIT $1",
			args:   []driver.Value{5},
		},
		{
			name:   "sort by column descending",
			params: dto.QueryParams{SortBy: "label", SortDir: dto.SortDirDesc},
			query:  "ORDER BY seats.label DESC",
		},
		{
			name:   "sort direction defaults to ascending",
			params: dto.QueryParams{SortBy: "zone"},
			query:  "ORDER BY seats.zone ASC",
		},
		{
			name:   "filter args come before paging",
			params: dto.QueryParams{Page: 2, Limit: 10},
			filter: shared.FilterByID("north", "zone", "seats"),
			query:  "WHERE (seats.zone = $1)  ORDER BY seats.id ASC LIMIT $2 OFFSET $3",
			args:   []driver.Value{"north", 10, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := setup(t)

			query := mock.ExpectPrepare(regexp.QuoteMeta(tt.query)).ExpectQuery()
			if len(tt.args) > 0 {
				query.WithArgs(tt.args...)
			}

			query.WillReturnRows(sqlmock.NewRows(seatColumns).AddRow(1, "A1", "north"))

			seats, err := repo.GetAll(context.Background(), tt.params, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, []seat{{ID: 1, Label: "A1", Zone: "north"}}, seats)
		})
	}
}

func TestGetAllSelectsEveryColumn(t *testing.T) {
	mock, repo := setup(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT seats.id, seats.label, seats.zone FROM seats")).
		ExpectQuery().
		WithArgs(25, 50).
		WillReturnRows(sqlmock.NewRows(seatColumns))

	seats, err := repo.GetAll(context.Background(), dto.QueryParams{Page: 3, Limit: 25, SortBy: "label", SortDir: dto.SortDirDesc}, dto.FilterGroup{})

	require.NoError(t, err)
	assert.Empty(t, seats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertReturningID(t *testing.T) {
	insertQuery := regexp.QuoteMeta("INSERT INTO seats (label, zone) VALUES ($1, $2) RETURNING id")

	t.Run("returns the generated id", func(t *testing.T) {
		mock, repo := setup(t)

		mock.ExpectQuery(insertQuery).
			WithArgs("A1", "north").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		id, err := repo.InsertReturningID(context.Background(), seat{ID: 9, Label: "A1", Zone: "north"})

		require.NoError(t, err)
		assert.Equal(t, 42, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row returned", func(t *testing.T) {
		mock, repo := setup(t)

		mock.ExpectQuery(insertQuery).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		id, err := repo.InsertReturningID(context.Background(), seat{Label: "A1"})

		require.Error(t, err)
		assert.ErrorContains(t, err, "insert returned no id")
		assert.Zero(t, id)
	})

	t.Run("row error", func(t *testing.T) {
		mock, repo := setup(t)
		errRow := errors.New("row decode failed")

		mock.ExpectQuery(insertQuery).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).RowError(0, errRow))

		_, err := repo.InsertReturningID(context.Background(), seat{Label: "A1"})

		assert.ErrorIs(t, err, errRow)
	})

	t.Run("query error", func(t *testing.T) {
		mock, repo := setup(t)
		errDB := errors.New("connection reset")

		mock.ExpectQuery(insertQuery).WillReturnError(errDB)

		_, err := repo.InsertReturningID(context.Background(), seat{Label: "A1"})

		assert.ErrorIs(t, err, errDB)
	})
}

func TestGetNoRows(t *testing.T) {
	mock, repo := setup(t)

	mock.ExpectPrepare(regexp.QuoteMeta("WHERE (seats.id = $1)  LIMIT 1")).
		ExpectQuery().
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(seatColumns))

	got, err := repo.Get(context.Background(), shared.FilterByID(7, "id", "seats"))

	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCount(t *testing.T) {
	mock, repo := setup(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT(seats.id) FROM seats")).
		ExpectQuery().
		WithArgs("north").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.Count(context.Background(), shared.FilterByID("north", "zone", "seats"))

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
