package usecase

import (
	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/usecase/dto"
)

func toCoordinateTypeItem(t *domain.CoordinateType) *dto.CoordinateTypeItem {
	if t == nil {
		return nil
	}
	return &dto.CoordinateTypeItem{
		ID:              t.ID,
		Alias:           t.Alias,
		Name:            t.Name,
		BackgroundColor: t.BackgroundColor,
		BorderColor:     t.BorderColor,
	}
}

func toCoordinateItem(c domain.Coordinate) dto.CoordinateItem {
	return dto.CoordinateItem{
		ID:          c.ID,
		TypeID:      c.TypeID,
		IsSystem:    c.IsSystem,
		Coordinates: c.Polygon.Coordinates(),
		Type:        toCoordinateTypeItem(c.Type),
		DateUpdate:  c.Audit.DateUpdate,
	}
}

func toGeographyObjectItem(o domain.GeographyObject) dto.GeographyObjectItem {
	return dto.GeographyObjectItem{
		ID:       o.ID,
		Alias:    o.Alias,
		Name:     o.Name,
		TypeID:   o.TypeID,
		ParentID: o.ParentID,
	}
}

func toGeographyObjectCoordinateItem(l domain.GeographyObjectCoordinate) dto.GeographyObjectCoordinateItem {
	return dto.GeographyObjectCoordinateItem{
		ID:                l.ID,
		GeographyObjectID: l.GeographyObjectID,
		CoordinateID:      l.CoordinateID,
		Center:            l.Center.Array(),
		Area:              l.Area,
		Zoom:              l.Zoom,
	}
}

// toPolygonItem - полигон связи; цвета пустые, если у координаты нет типа
func toPolygonItem(l domain.GeographyObjectCoordinate) dto.PolygonItem {
	item := dto.PolygonItem{
		ID:           l.ID,
		CoordinateID: l.CoordinateID,
		Coordinates:  [][][]float64{},
	}
	if l.Coordinate != nil {
		item.Coordinates = l.Coordinate.Polygon.Coordinates()
		if l.Coordinate.Type != nil {
			item.BackgroundColor = l.Coordinate.Type.BackgroundColor
			item.BorderColor = l.Coordinate.Type.BorderColor
		}
	}
	return item
}
