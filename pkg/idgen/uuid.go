package idgen

import "github.com/google/uuid"

// UUIDGenerator генерирует идентификаторы новых записей в формате UUID v4
type UUIDGenerator struct{}

// NewUUIDGenerator создает новый генератор идентификаторов
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID возвращает новый случайный UUID
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// IsValid проверяет, что строка является корректным UUID
func IsValid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
