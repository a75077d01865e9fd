package domain

import "time"

// Point - точка на плоскости карты
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Array возвращает точку в проводном формате [x, y]
func (pt Point) Array() []float64 {
	return []float64{pt.X, pt.Y}
}

// Audit - поля аудита, общие для всех сущностей
type Audit struct {
	DateCreate     time.Time `json:"date_create"`
	DateUpdate     time.Time `json:"date_update"`
	UsernameCreate string    `json:"username_create"`
	UsernameUpdate string    `json:"username_update"`
}

// NewAudit создает аудит для новой записи
func NewAudit(username string, at time.Time) Audit {
	return Audit{
		DateCreate:     at,
		DateUpdate:     at,
		UsernameCreate: username,
		UsernameUpdate: username,
	}
}

// Touched возвращает аудит с отметкой об изменении
func (a Audit) Touched(username string, at time.Time) Audit {
	a.DateUpdate = at
	a.UsernameUpdate = username
	return a
}
