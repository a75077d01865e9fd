package domain

import (
	"time"

	"github.com/geography-microservice/internal/pkg/errors"
)

// CoordinateType - тип координаты (компендиум с цветами отображения)
type CoordinateType struct {
	ID              int64     `json:"id"`
	Alias           string    `json:"alias"`
	Name            string    `json:"name"`
	BackgroundColor string    `json:"background_color"`
	BorderColor     string    `json:"border_color"`
	Audit           Audit     `json:"audit"`
	Lifecycle       Lifecycle `json:"-"`
}

func (t CoordinateType) Close(at time.Time, username string) (CoordinateType, error) {
	lc, err := t.Lifecycle.close(at, errors.ErrDeletedCoordinateType)
	if err != nil {
		return t, err
	}
	t.Lifecycle = lc
	t.Audit = t.Audit.Touched(username, at)
	return t, nil
}

func (t CoordinateType) Restore(at time.Time, username string) (CoordinateType, error) {
	lc, err := t.Lifecycle.restore(errors.ErrNotDeletedCoordinateType)
	if err != nil {
		return t, err
	}
	t.Lifecycle = lc
	t.Audit = t.Audit.Touched(username, at)
	return t, nil
}

// Coordinate - одна неизменяемая версия полигона. Физически не удаляется.
type Coordinate struct {
	ID        int64           `json:"id"`
	Polygon   Polygon         `json:"-"`
	TypeID    *int64          `json:"type_id,omitempty"`
	Type      *CoordinateType `json:"type,omitempty"`
	IsSystem  bool            `json:"is_system"`
	Audit     Audit           `json:"audit"`
	Lifecycle Lifecycle       `json:"-"`
}

// NewCoordinate создает новую версию координаты с указанным типом
func NewCoordinate(polygon Polygon, coordinateType *CoordinateType, username string, at time.Time) (Coordinate, error) {
	if polygon.IsEmpty() {
		return Coordinate{}, errors.ErrEmptyCoordinates
	}

	c := Coordinate{
		Polygon:   polygon,
		Audit:     NewAudit(username, at),
		Lifecycle: Active(),
	}

	if coordinateType != nil {
		if coordinateType.Lifecycle.IsClosed() {
			return Coordinate{}, errors.ErrDeletedCoordinateType
		}
		typeID := coordinateType.ID
		c.TypeID = &typeID
		c.Type = coordinateType
	}

	return c, nil
}

// WithPolygon возвращает координату с новым полигоном; совпадающий полигон - ошибка, а не no-op
func (c Coordinate) WithPolygon(polygon Polygon, at time.Time, username string) (Coordinate, error) {
	if c.Lifecycle.IsClosed() {
		return c, errors.ErrDeletedCoordinate
	}
	if polygon.IsEmpty() {
		return c, errors.ErrEmptyCoordinates
	}
	if c.Polygon.Equal(polygon) {
		return c, errors.ErrNotChangesCoordinate
	}
	c.Polygon = polygon
	c.Audit = c.Audit.Touched(username, at)
	return c, nil
}

// Successor создает следующую версию координаты: новый полигон, тот же тип.
// Текущая версия не меняется и остаётся в истории.
func (c Coordinate) Successor(polygon Polygon, username string, at time.Time) (Coordinate, error) {
	if c.Lifecycle.IsClosed() {
		return Coordinate{}, errors.ErrDeletedCoordinate
	}
	if polygon.IsEmpty() {
		return Coordinate{}, errors.ErrEmptyCoordinates
	}
	if c.Polygon.Equal(polygon) {
		return Coordinate{}, errors.ErrNotChangesCoordinate
	}

	next := Coordinate{
		Polygon:   polygon,
		Type:      c.Type,
		Audit:     NewAudit(username, at),
		Lifecycle: Active(),
	}
	if c.TypeID != nil {
		typeID := *c.TypeID
		next.TypeID = &typeID
	}
	return next, nil
}

func (c Coordinate) Close(at time.Time, username string) (Coordinate, error) {
	lc, err := c.Lifecycle.close(at, errors.ErrDeletedCoordinate)
	if err != nil {
		return c, err
	}
	c.Lifecycle = lc
	c.Audit = c.Audit.Touched(username, at)
	return c, nil
}

func (c Coordinate) Restore(at time.Time, username string) (Coordinate, error) {
	lc, err := c.Lifecycle.restore(errors.ErrNotDeletedCoordinate)
	if err != nil {
		return c, err
	}
	c.Lifecycle = lc
	c.Audit = c.Audit.Touched(username, at)
	return c, nil
}
