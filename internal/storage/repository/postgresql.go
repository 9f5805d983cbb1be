// Package repository реализует хранилище данных на основе PostgreSQL
// для управления предметами инвентаря и пользователями. Предоставляет методы
// создания, чтения, обновления, удаления и постраничного чтения записей.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки хранилища. Вызывающий слой отображает их в HTTP-статусы.
var (
	// ErrUserNotFound — пользователь с таким username отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists — username занят; приходит из UNIQUE-ограничения,
	// поэтому гонка двух одновременных регистраций исключена.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrItemNotFound — предмет с таким id отсутствует.
	ErrItemNotFound = errors.New("item not found")
	// ErrItemAlreadyExists — предмет с таким именем уже есть.
	ErrItemAlreadyExists = errors.New("item already exists")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с предметами и пользователями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// isUniqueViolation сообщает, является ли ошибка нарушением UNIQUE-ограничения.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
