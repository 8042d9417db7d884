package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	storedomain "github.com/ghuser/stockroom/services/store/domain"
	"github.com/ghuser/stockroom/services/store/domain/models"
)

const itemColumnsPattern = `SELECT id, name, COALESCE\(description, ''\), price, quantity, user_id FROM items`

func itemRows(items ...*models.Item) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "name", "description", "price", "quantity", "user_id"})
	for _, i := range items {
		rows.AddRow(i.ID, i.Name, i.Description, i.Price, i.Quantity, i.UserID)
	}
	return rows
}

func TestItemRepository_GetByID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewItemRepository(db)
	ctx := context.Background()
	item := &models.Item{
		ID: uuid.New(), Name: "kettle", Description: "copper",
		Price: 129.99, Quantity: 3, UserID: uuid.New(),
	}

	mock.ExpectQuery(itemColumnsPattern + ` WHERE id = \$1`).
		WithArgs(item.ID).
		WillReturnRows(itemRows(item))
	got, err := r.GetByID(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, item, got)

	mock.ExpectQuery(itemColumnsPattern + ` WHERE id = \$1`).
		WithArgs(item.ID).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByID(ctx, item.ID)
	require.ErrorIs(t, err, storedomain.ErrItemNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_FindByUserID_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewItemRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	a := &models.Item{ID: uuid.New(), Name: "kettle", Price: 10, Quantity: 1, UserID: userID}
	b := &models.Item{ID: uuid.New(), Name: "teapot", Price: 20, Quantity: 2, UserID: userID}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users WHERE id = \$1\)`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(itemColumnsPattern + ` WHERE user_id = \$1 ORDER BY id`).
		WithArgs(userID).
		WillReturnRows(itemRows(a, b))
	mock.ExpectCommit()

	items, err := r.FindByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, []*models.Item{a, b}, items)
}

func TestItemRepository_FindByUserID_EmptyList(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewItemRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users WHERE id = \$1\)`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(itemColumnsPattern + ` WHERE user_id = \$1 ORDER BY id`).
		WithArgs(userID).
		WillReturnRows(itemRows())
	mock.ExpectCommit()

	items, err := r.FindByUserID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestItemRepository_FindByUserID_UserMissing(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewItemRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users WHERE id = \$1\)`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := r.FindByUserID(ctx, userID)
	require.ErrorIs(t, err, storedomain.ErrUserNotFound)
}

func TestItemRepository_Update_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewItemRepository(db)
	ctx := context.Background()
	item := &models.Item{
		ID: uuid.New(), Name: "kettle", Description: "copper",
		Price: 99.5, Quantity: 7, UserID: uuid.New(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT 1 FROM items WHERE id = \$1 FOR UPDATE`).
		WithArgs(item.ID).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users WHERE id = \$1\)`).
		WithArgs(item.UserID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(`UPDATE items SET name = \$2, description = \$3, price = \$4, quantity = \$5, user_id = \$6\s+WHERE id = \$1`).
		WithArgs(item.ID, item.Name, item.Description, item.Price, item.Quantity, item.UserID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	require.NoError(t, r.Update(ctx, item))
}

func TestItemRepository_Update_ItemMissing(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewItemRepository(db)
	ctx := context.Background()
	item := &models.Item{ID: uuid.New(), Name: "kettle", Price: 1, Quantity: 1, UserID: uuid.New()}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT 1 FROM items WHERE id = \$1 FOR UPDATE`).
		WithArgs(item.ID).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	err := r.Update(ctx, item)
	require.ErrorIs(t, err, storedomain.ErrItemNotFound)
}

func TestItemRepository_Update_NewOwnerMissing(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewItemRepository(db)
	ctx := context.Background()
	item := &models.Item{ID: uuid.New(), Name: "kettle", Price: 1, Quantity: 1, UserID: uuid.New()}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT 1 FROM items WHERE id = \$1 FOR UPDATE`).
		WithArgs(item.ID).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users WHERE id = \$1\)`).
		WithArgs(item.UserID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	err := r.Update(ctx, item)
	require.ErrorIs(t, err, storedomain.ErrUserNotFound)
}
