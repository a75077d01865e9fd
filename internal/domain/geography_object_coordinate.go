package domain

import (
	"time"

	"github.com/geography-microservice/internal/pkg/errors"
)

const (
	MinZoom = 3
	MaxZoom = 24
)

// GeographyObjectCoordinate - связь географического объекта с версией координаты.
// Center и Area - снимок, вычисленный из полигона при вставке.
type GeographyObjectCoordinate struct {
	ID                int64     `json:"id"`
	GeographyObjectID int64     `json:"geography_object_id"`
	CoordinateID      int64     `json:"coordinate_id"`
	Center            Point     `json:"center"`
	Area              float64   `json:"area"`
	Zoom              int       `json:"zoom"`
	IsSystem          bool      `json:"is_system"`
	Audit             Audit     `json:"audit"`
	Lifecycle         Lifecycle `json:"-"`

	GeographyObject *GeographyObject `json:"geography_object,omitempty"`
	Coordinate      *Coordinate      `json:"coordinate,omitempty"`
}

// ValidateZoom проверяет наличие и диапазон коэффициента масштаба
func ValidateZoom(zoom *int) error {
	if zoom == nil {
		return errors.ErrEmptyZoom
	}
	if *zoom < MinZoom || *zoom > MaxZoom {
		return errors.ErrIncorrectZoom.WithDetails(map[string]interface{}{"zoom": *zoom})
	}
	return nil
}

// NewGeographyObjectCoordinate проверяет участников связи и создает активную связь
func NewGeographyObjectCoordinate(
	object *GeographyObject,
	coordinate *Coordinate,
	zoom *int,
	username string,
	at time.Time,
) (GeographyObjectCoordinate, error) {
	if object == nil {
		return GeographyObjectCoordinate{}, errors.ErrNotFoundGeographyObject
	}
	if coordinate == nil {
		return GeographyObjectCoordinate{}, errors.ErrNotFoundCoordinate
	}
	if zoom == nil {
		return GeographyObjectCoordinate{}, errors.ErrEmptyZoom
	}
	if object.Lifecycle.IsClosed() {
		return GeographyObjectCoordinate{}, errors.ErrDeletedGeographyObject
	}
	if coordinate.Lifecycle.IsClosed() {
		return GeographyObjectCoordinate{}, errors.ErrDeletedCoordinate
	}
	if err := ValidateZoom(zoom); err != nil {
		return GeographyObjectCoordinate{}, err
	}

	return GeographyObjectCoordinate{
		GeographyObjectID: object.ID,
		CoordinateID:      coordinate.ID,
		Zoom:              *zoom,
		Audit:             NewAudit(username, at),
		Lifecycle:         Active(),
		GeographyObject:   object,
		Coordinate:        coordinate,
	}, nil
}

func (l GeographyObjectCoordinate) Close(at time.Time, username string) (GeographyObjectCoordinate, error) {
	lc, err := l.Lifecycle.close(at, errors.ErrDeletedGeographyObjectCoordinate)
	if err != nil {
		return l, err
	}
	l.Lifecycle = lc
	l.Audit = l.Audit.Touched(username, at)
	return l, nil
}

func (l GeographyObjectCoordinate) Restore(at time.Time, username string) (GeographyObjectCoordinate, error) {
	lc, err := l.Lifecycle.restore(errors.ErrNotDeletedGeographyObjectCoordinate)
	if err != nil {
		return l, err
	}
	l.Lifecycle = lc
	l.Audit = l.Audit.Touched(username, at)
	return l, nil
}
