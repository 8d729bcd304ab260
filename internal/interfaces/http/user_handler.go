package http

import (
	"database/sql"
	"errors"
	"net/http"

	infra "github.com/evanfuller/learntrack/internal/infrastructure"
	"github.com/evanfuller/learntrack/internal/infrastructure/auth"
	"github.com/evanfuller/learntrack/internal/infrastructure/driver"
	"github.com/evanfuller/learntrack/internal/infrastructure/validate"
	"github.com/evanfuller/learntrack/internal/user"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler user related operations
type UserHandler struct {
	jwtUtil      *auth.JWTUtil
	conn         driver.ITransactionalDB
	userRepo     user.UserRepository
	kvStore      driver.KeyValueDB
	userUseCase  user.UserUseCase
	validator    validate.Validator
	maximumRetry int
}

// NewUserHandler create an user controller instance
func NewUserHandler(
	JWTUtil *auth.JWTUtil,
	Conn driver.ITransactionalDB,
	UserRepo user.UserRepository,
	KVStore driver.KeyValueDB,
	UserUseCase user.UserUseCase,
	MaximumRetry int,
	Validator validate.Validator,
) *UserHandler {
	handler := &UserHandler{
		jwtUtil:      JWTUtil,
		conn:         Conn,
		userRepo:     UserRepo,
		kvStore:      KVStore,
		userUseCase:  UserUseCase,
		validator:    Validator,
		maximumRetry: MaximumRetry,
	}
	return handler
}

// HandleSignIn ...
func (uh *UserHandler) HandleSignIn(c echo.Context) (err error) {
	ju := uh.jwtUtil
	repo := uh.userRepo

	// parse body
	post := new(user.UserModel)
	if err = c.Bind(&post); err != nil {
		internal := err.(*echo.HTTPError).Internal
		return c.JSON(http.StatusUnprocessableEntity,
			infra.NewRESTStandardError(http.StatusUnprocessableEntity, internal.Error()))
	}
	post.Email = post.Username

	ctx := c.Request().Context()
	tx, err := uh.conn.BeginTx(ctx, &driver.TxOptions{
		Isolation: sql.LevelRepeatableRead,
	})
	if err != nil {
		return err
	}
	defer tx.Commit(ctx)

	found, err := repo.FindByCredential(ctx, post)
	if err != nil {
		return err
	}
	if found == nil {
		return c.JSON(http.StatusUnauthorized, infra.NewRESTStandardError(http.StatusUnauthorized, user.ErrNoSuchUser.Error()))
	}
	if found.LoginRetry >= uh.maximumRetry {
		return c.JSON(http.StatusForbidden, infra.NewRESTStandardError(http.StatusForbidden, user.ErrUserTooManyRetry.Error()))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(post.Password)); err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			found.LoginRetry++
			repo.UpdateUser(ctx, found)
			return c.JSON(http.StatusUnauthorized, infra.NewRESTStandardError(http.StatusUnauthorized, user.ErrNoSuchUser.Error()))
		}
		return err
	}

	// reset retry number
	found.LoginRetry = 0
	repo.UpdateUser(ctx, found)
	// issue JWT
	tokenStr, err := ju.GenerateTokenStr(found)
	if err != nil {
		return err
	}
	ju.SetClientToken(c, tokenStr)
	return nil
}

// HandleSignUp ...
func (uh *UserHandler) HandleSignUp(c echo.Context) (err error) {
	UserUseCase := uh.userUseCase
	post := new(user.UserModel)

	if err = c.Bind(&post); err != nil {
		internal := err.(*echo.HTTPError).Internal
		return c.JSON(http.StatusUnprocessableEntity,
			infra.NewRESTStandardError(http.StatusUnprocessableEntity, internal.Error()))
	}

	// validation
	if err := uh.validator.Struct(post); err != nil {
		return c.JSON(http.StatusBadRequest,
			infra.NewRESTValidationError(http.StatusBadRequest, "Failed to validate fields", err))
	}

	// hash password
	if password, err := bcrypt.GenerateFromPassword([]byte(post.Password), bcrypt.DefaultCost); err == nil {
		post.Password = string(password)
	} else {
		return err
	}

	// register
	_, err = UserUseCase.SignUp(c.Request().Context(), post)
	if err != nil {
		if errors.Is(err, user.ErrDuplicatedUser) {
			return c.JSON(http.StatusConflict, infra.NewRESTStandardError(http.StatusConflict, err.Error()))
		}
		return err
	}
	return
}

// HandleSignOut ...
func (uh *UserHandler) HandleSignOut(c echo.Context) (err error) {
	ju := uh.jwtUtil
	kv := uh.kvStore

	if tokenStr, err := ju.ExtractToken(c); err == nil {
		if token, err := ju.Validate(tokenStr); err == nil {
			ju.ClearClientToken(c)
			return kv.SetEX(tokenStr, "", token.TimeRemaining())
		}
		return c.NoContent(http.StatusUnauthorized)
	}
	return nil
}

// HandleUserExists ...
func (uh *UserHandler) HandleUserExists(c echo.Context) (err error) {
	UserUseCase := uh.userUseCase
	post := new(user.UserModel)
	post.Username = c.QueryParam("username")
	post.Email = c.QueryParam("email")

	if err := uh.validator.AllEmpty([]string{"username", "email"}, post.Username, post.Email); err != nil {
		return c.JSON(http.StatusBadRequest, infra.NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", []*validate.FieldError{err}))
	}

	existing, err := UserUseCase.Exists(c.Request().Context(), post)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, existing)
}
