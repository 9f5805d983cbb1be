// Package jwt реализует генерацию и парсинг JWT токенов доступа.
//
// Maker определяет интерфейс для выпуска и проверки токенов с субъектом (username).
// MakerImpl — конкретная реализация с использованием секретного ключа и срока жизни.
package jwt

import (
	"errors"
	"time"
)

// ErrInvalidToken возвращается, когда токен повреждён, подпись не сходится,
// срок жизни истёк или в токене отсутствует субъект. Проверка токена —
// "всё или ничего", частично доверенного результата не бывает.
var ErrInvalidToken = errors.New("invalid token")

// DefaultTokenTTL используется, когда срок жизни не задан конфигурацией.
const DefaultTokenTTL = 15 * time.Minute

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken выпускает подписанный токен с субъектом subject.
	GenerateToken(subject string) (string, error)
	// ParseToken проверяет подпись и срок жизни токена и возвращает субъект.
	ParseToken(tokenStr string) (string, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
// При неположительном TTL используется DefaultTokenTTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
