// Package services содержит бизнес-логику для управления предметами инвентаря,
// включая кеширование чтений и публикацию событий об изменениях.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/inventory-keeper/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// ItemRepository определяет методы для работы с предметами в хранилище.
type ItemRepository interface {
	// CreateItem добавляет новый предмет и возвращает созданную запись.
	CreateItem(ctx context.Context, item models.Item) (*models.Item, error)
	// ReadItem возвращает предмет по ID.
	ReadItem(ctx context.Context, id int) (*models.Item, error)
	// UpdateItem перезаписывает только непустые поля и возвращает обновлённую запись.
	UpdateItem(ctx context.Context, id int, upd models.UpdateItem) (*models.Item, error)
	// RemoveItem удаляет предмет по ID.
	RemoveItem(ctx context.Context, id int) error
	// ListItems возвращает страницу предметов, новые сверху.
	ListItems(ctx context.Context, limit, offset int) ([]*models.Item, error)
	// CountItems возвращает общее количество предметов.
	CountItems(ctx context.Context) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// EventPublisher публикует события об изменении предметов.
type EventPublisher interface {
	PublishItemEvent(event rabbitmq.ItemEvent) error
}

// ItemService реализует бизнес-логику работы с предметами.
// Публикация событий необязательна: nil-publisher просто отключает её.
type ItemService struct {
	repo   ItemRepository
	cache  Cache
	events EventPublisher
	log    *slog.Logger
}

// NewItemService создает новый экземпляр ItemService.
func NewItemService(repo ItemRepository, cache Cache, events EventPublisher, log *slog.Logger) *ItemService {
	return &ItemService{
		repo:   repo,
		cache:  cache,
		events: events,
		log:    log,
	}
}

func itemCacheKey(id int) string {
	return fmt.Sprintf("item:%d", id)
}

func (s *ItemService) publish(action string, item *models.Item) {
	if s.events == nil {
		return
	}
	event := rabbitmq.ItemEvent{
		Action: action,
		ItemID: item.ID,
		Name:   item.Name,
	}
	if err := s.events.PublishItemEvent(event); err != nil {
		s.log.Warn("failed to publish item event", slog.String("action", action), sl.Err(err))
	}
}

// Create создает новый предмет, кеширует его и возвращает созданную запись.
func (s *ItemService) Create(ctx context.Context, req models.DummyItem) (*models.Item, error) {
	item := models.Item{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Price:       req.Price,
	}

	created, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new item", slog.Int("id", created.ID))

	cacheKey := itemCacheKey(created.ID)
	if err := s.cache.Set(ctx, cacheKey, created, time.Hour); err != nil {
		s.log.Warn("failed to cache item", slog.String("key", cacheKey), sl.Err(err))
	}
	s.publish("created", created)

	return created, nil
}

// Read возвращает предмет по ID, используя кеш или репозиторий.
func (s *ItemService) Read(ctx context.Context, id int) (*models.Item, error) {
	var result *models.Item
	cacheKey := itemCacheKey(id)
	found, err := s.cache.Get(ctx, cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// Update перезаписывает только переданные поля предмета и обновляет кеш.
func (s *ItemService) Update(ctx context.Context, id int, upd models.UpdateItem) (*models.Item, error) {
	updated, err := s.repo.UpdateItem(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated item in storage", slog.Int("id", id))

	cacheKey := itemCacheKey(id)
	if err := s.cache.Set(ctx, cacheKey, updated, time.Hour); err != nil {
		s.log.Warn("failed to cache item", slog.String("key", cacheKey), sl.Err(err))
	}
	s.publish("updated", updated)
	return updated, nil
}

// Remove удаляет предмет по ID и инвалидирует кеш.
func (s *ItemService) Remove(ctx context.Context, id int) error {
	cacheKey := itemCacheKey(id)
	if err := s.cache.Invalidate(ctx, cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), sl.Err(err))
	}

	if err := s.repo.RemoveItem(ctx, id); err != nil {
		return err
	}
	s.publish("removed", &models.Item{ID: id})
	return nil
}

// List возвращает страницу предметов с метаданными пагинации.
// Номера страниц начинаются с единицы; неположительные page и size
// приводятся к дефолтам, чтобы контракт не зависел от вызывающего слоя.
func (s *ItemService) List(ctx context.Context, page, size int) (*models.ItemPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	items, err := s.repo.ListItems(ctx, size, (page-1)*size)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountItems(ctx)
	if err != nil {
		return nil, err
	}
	pages := (total + size - 1) / size
	return &models.ItemPage{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}, nil
}
