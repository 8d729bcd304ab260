package user

import (
	"context"

	"github.com/evanfuller/learntrack/internal/infrastructure/driver"
	"github.com/evanfuller/learntrack/internal/infrastructure/uuid"
	"github.com/go-sql-driver/mysql"
)

type SQLUserRepository struct {
	Conn          driver.ITransactionalDB
	UUIDGenerator uuid.Generator
}

var _ UserRepository = &SQLUserRepository{}

func NewSQLUserRepository(Conn driver.ITransactionalDB, UUIDGenerator uuid.Generator) *SQLUserRepository {
	return &SQLUserRepository{Conn, UUIDGenerator}
}

// FindByCredential query user with provided credential
func (repo *SQLUserRepository) FindByCredential(ctx context.Context, post *UserModel) (*UserModel, error) {
	conn := repo.Conn
	username := post.Username
	row, err := conn.QueryContext(ctx, `SELECT id, username, password, email, login_retry, last_login
	FROM user WHERE username=$1 OR email=$2`, username, username)
	if err != nil {
		return nil, err
	}
	defer row.Close()

	if row.Next() {
		user := new(UserModel)
		if err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Email, &user.LoginRetry, &user.LastLogin); err != nil {
			return nil, err
		}
		return user, nil
	}
	return nil, nil
}

func (repo *SQLUserRepository) SaveUser(ctx context.Context, post *UserModel) error {
	conn := repo.Conn
	// generate id
	UUIDGenerator := repo.UUIDGenerator
	if uuid, err := UUIDGenerator.Generate(); err == nil {
		post.ID = uuid
	} else {
		return err
	}

	_, err := conn.ExecContext(ctx, `INSERT INTO user(id, username, password, email)
	VALUES($1,$2,$3,$4)`, post.ID, post.Username, post.Password, post.Email)

	if err, ok := err.(*mysql.MySQLError); ok && err.Number == 1062 {
		return ErrDuplicatedUser
	}
	return err
}

func (repo *SQLUserRepository) UpdateUser(ctx context.Context, post *UserModel) error {
	conn := repo.Conn
	_, err := conn.ExecContext(ctx, `UPDATE user
	SET email=$1,
			login_retry=$2,
			last_login=$3
	WHERE id = $4;`, post.Email, post.LoginRetry, post.LastLogin, post.ID)
	return err
}
