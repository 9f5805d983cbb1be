package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

const itemColumns = "id, name, description, category, quantity, price, created_at"

func scanItem(row interface{ Scan(...any) error }) (*models.Item, error) {
	var item models.Item
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Category,
		&item.Quantity, &item.Price, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem вставляет новый предмет и возвращает созданную запись
// с назначенными id и created_at. Дубликат имени превращается в ErrItemAlreadyExists.
func (s *Storage) CreateItem(ctx context.Context, item models.Item) (*models.Item, error) {
	const op = "storage.CreateItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO items (name, description, category, quantity, price)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + itemColumns
	created, err := scanItem(s.DB.QueryRowContext(ctx, query,
		item.Name, item.Description, item.Category, item.Quantity, item.Price))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrItemAlreadyExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// ReadItem возвращает предмет по его ID.
func (s *Storage) ReadItem(ctx context.Context, id int) (*models.Item, error) {
	const op = "storage.ReadItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrItemNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

// UpdateItem перезаписывает только явно переданные (не nil) поля предмета
// и возвращает обновлённую запись. Пустой запрос возвращает предмет без изменений.
// Проверки версий нет — последняя запись побеждает.
func (s *Storage) UpdateItem(ctx context.Context, id int, upd models.UpdateItem) (*models.Item, error) {
	const op = "storage.UpdateItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var sets []string
	var args []any
	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Name != nil {
		addSet("name", *upd.Name)
	}
	if upd.Description != nil {
		addSet("description", *upd.Description)
	}
	if upd.Category != nil {
		addSet("category", *upd.Category)
	}
	if upd.Quantity != nil {
		addSet("quantity", *upd.Quantity)
	}
	if upd.Price != nil {
		addSet("price", *upd.Price)
	}

	if len(sets) == 0 {
		return s.ReadItem(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE items SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), itemColumns)
	item, err := scanItem(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrItemNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrItemAlreadyExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

// RemoveItem удаляет предмет по ID. Отсутствующий предмет — ErrItemNotFound.
func (s *Storage) RemoveItem(ctx context.Context, id int) error {
	const op = "storage.RemoveItem"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM items WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrItemNotFound)
	}
	return nil
}

// ListItems возвращает страницу предметов, упорядоченных по дате создания
// по убыванию. Страница за пределами данных — пустой срез, не ошибка.
func (s *Storage) ListItems(ctx context.Context, limit, offset int) ([]*models.Item, error) {
	const op = "storage.ListItems"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + itemColumns + `
			  FROM items
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []*models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountItems возвращает общее количество предметов.
func (s *Storage) CountItems(ctx context.Context) (int, error) {
	const op = "storage.CountItems"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var total int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}
