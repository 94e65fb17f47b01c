package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ridloal/rodamientos-backoffice/internal/platform/database"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"github.com/ridloal/rodamientos-backoffice/internal/user/domain"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserConflict = errors.New("user with this username already exists")

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

// CreateUser menyimpan person dan user dalam satu transaksi.
func (r *postgresUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		p := &user.Person
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO people (first_name, last_name, phone) VALUES ($1, $2, $3) RETURNING id`,
			p.FirstName, p.LastName, p.Phone,
		).Scan(&p.ID); err != nil {
			return fmt.Errorf("insert person: %w", err)
		}
		return tx.QueryRowContext(ctx,
			`INSERT INTO users (username, password_hash, person_id) VALUES ($1, $2, $3)
			 RETURNING id, created_at, updated_at`,
			user.Username, user.PasswordHash, p.ID,
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			logger.Warn("CreateUser: unique violation")
			return ErrUserConflict
		}
		logger.Error("CreateUser: failed to insert user", err)
		return err
	}
	return nil
}

func (r *postgresUserRepository) getUserBy(ctx context.Context, field string, value any) (*domain.User, error) {
	query := `SELECT u.id, u.username, u.password_hash, u.created_at, u.updated_at,
	                 p.id, p.first_name, p.last_name, p.phone
	          FROM users u JOIN people p ON p.id = u.person_id
	          WHERE u.` + field + ` = $1`
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
		&user.Person.ID, &user.Person.FirstName, &user.Person.LastName, &user.Person.Phone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error("GetUserBy "+field+": query failed", err)
		return nil, err
	}
	return user, nil
}

func (r *postgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *postgresUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getUserBy(ctx, "id", id)
}
