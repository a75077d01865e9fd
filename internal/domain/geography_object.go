package domain

import (
	"time"

	"github.com/geography-microservice/internal/pkg/errors"
)

// GeographyObjectType - тип географического объекта (континент, море, остров, ...)
type GeographyObjectType struct {
	ID        int64     `json:"id"`
	Alias     string    `json:"alias"`
	Name      string    `json:"name"`
	Audit     Audit     `json:"audit"`
	Lifecycle Lifecycle `json:"-"`
}

// GeographyObject - именованный объект дерева географии
type GeographyObject struct {
	ID        int64                `json:"id"`
	Alias     string               `json:"alias"`
	Name      string               `json:"name"`
	TypeID    int64                `json:"type_id"`
	Type      *GeographyObjectType `json:"type,omitempty"`
	ParentID  *int64               `json:"parent_id,omitempty"`
	Audit     Audit                `json:"audit"`
	Lifecycle Lifecycle            `json:"-"`
}

// IsRoot - объект верхнего уровня
func (o GeographyObject) IsRoot() bool {
	return o.ParentID == nil
}

func (o GeographyObject) Close(at time.Time, username string) (GeographyObject, error) {
	lc, err := o.Lifecycle.close(at, errors.ErrDeletedGeographyObject)
	if err != nil {
		return o, err
	}
	o.Lifecycle = lc
	o.Audit = o.Audit.Touched(username, at)
	return o, nil
}

func (o GeographyObject) Restore(at time.Time, username string) (GeographyObject, error) {
	lc, err := o.Lifecycle.restore(errors.ErrNotDeletedGeographyObject)
	if err != nil {
		return o, err
	}
	o.Lifecycle = lc
	o.Audit = o.Audit.Touched(username, at)
	return o, nil
}

// GeographyObjectFilter - фильтры списка географических объектов
type GeographyObjectFilter struct {
	HasCoordinates *bool
	TypeID         *int64
	TypeIDs        []int64
}
