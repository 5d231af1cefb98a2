package store

import (
	"context"
	"errors"
	"fmt"

	"user-api/internal/database"
	"user-api/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrUserNotFound 表示指定 id 沒有對應的資料列
var ErrUserNotFound = errors.New("user not found")

// UserStore 為 users 資料表的存取介面
type UserStore interface {
	All(ctx context.Context) ([]model.User, error)
	Find(ctx context.Context, id int) (*model.User, error)
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Update(ctx context.Context, id int, ch model.UserChanges) (*model.User, error)
	Delete(ctx context.Context, id int) (bool, error)
}

const userColumns = `id, name, email, password_hash, is_customer, created_at, updated_at`

type pgUserStore struct {
	db database.DB
}

// NewUserStore 以 PostgreSQL 實作 UserStore
func NewUserStore(db database.DB) UserStore {
	return &pgUserStore{db: db}
}

// All 依 id 排序回傳全部使用者，無資料時回傳空 slice
func (s *pgUserStore) All(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("AllUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("AllUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("AllUsers: %w", err)
	}
	return users, nil
}

func (s *pgUserStore) Find(ctx context.Context, id int) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		id,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, notFoundOr("FindUser", err)
	}
	return u, nil
}

func (s *pgUserStore) Create(ctx context.Context, u *model.User) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, is_customer)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.IsCustomer,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// Update 只覆寫 ch 中非 nil 的欄位；沒有欄位時等同 Find
func (s *pgUserStore) Update(ctx context.Context, id int, ch model.UserChanges) (*model.User, error) {
	if ch.Empty() {
		return s.Find(ctx, id)
	}
	row := s.db.QueryRow(ctx,
		`UPDATE users SET
		     name = COALESCE($1, name),
		     email = COALESCE($2, email),
		     password_hash = COALESCE($3, password_hash),
		     is_customer = COALESCE($4, is_customer),
		     updated_at = now()
		 WHERE id = $5
		 RETURNING `+userColumns,
		ch.Name,
		ch.Email,
		ch.PasswordHash,
		ch.IsCustomer,
		id,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, notFoundOr("UpdateUser", err)
	}
	return u, nil
}

// Delete 回傳是否真的刪除了資料列
func (s *pgUserStore) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("DeleteUser: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.IsCustomer,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}

func notFoundOr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrUserNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
