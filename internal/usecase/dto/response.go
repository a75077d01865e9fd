package dto

import "time"

// BaseResponse - общий ответ операции
type BaseResponse struct {
	Success bool   `json:"success"`
	ID      *int64 `json:"id,omitempty"`
}

// ListResponse - ответ со списком
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Items   []T  `json:"items"`
}

// CoordinateTypeItem - тип координаты
type CoordinateTypeItem struct {
	ID              int64  `json:"id"`
	Alias           string `json:"alias"`
	Name            string `json:"name"`
	BackgroundColor string `json:"background_color"`
	BorderColor     string `json:"border_color"`
}

// CoordinateItem - координата с полигоном
type CoordinateItem struct {
	ID          int64               `json:"id"`
	TypeID      *int64              `json:"type_id,omitempty"`
	IsSystem    bool                `json:"is_system"`
	Coordinates [][][]float64       `json:"coordinates"`
	Type        *CoordinateTypeItem `json:"type,omitempty"`
	DateUpdate  time.Time           `json:"date_update"`
}

// GeographyObjectTypeItem - тип географического объекта
type GeographyObjectTypeItem struct {
	ID    int64  `json:"id"`
	Alias string `json:"alias"`
	Name  string `json:"name"`
}

// GeographyObjectItem - географический объект
type GeographyObjectItem struct {
	ID       int64  `json:"id"`
	Alias    string `json:"alias"`
	Name     string `json:"name"`
	TypeID   int64  `json:"type_id"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// GeographyObjectCoordinateItem - связь объекта с координатой
type GeographyObjectCoordinateItem struct {
	ID                int64     `json:"id"`
	GeographyObjectID int64     `json:"geography_object_id"`
	CoordinateID      int64     `json:"coordinate_id"`
	Center            []float64 `json:"center"`
	Area              float64   `json:"area"`
	Zoom              int       `json:"zoom"`
}

// PolygonItem - полигон связи с цветами типа координаты
type PolygonItem struct {
	ID              int64         `json:"id"`
	CoordinateID    int64         `json:"coordinate_id"`
	Coordinates     [][][]float64 `json:"coordinates"`
	BackgroundColor string        `json:"background_color"`
	BorderColor     string        `json:"border_color"`
}

// GeographyObjectCoordinatesResponse - координаты одного объекта: центр и масштаб берутся
// из связи с наибольшей площадью
type GeographyObjectCoordinatesResponse struct {
	Success bool          `json:"success"`
	Name    string        `json:"name"`
	Center  []float64     `json:"center"`
	Zoom    int           `json:"zoom"`
	Items   []PolygonItem `json:"items"`
}

// GeographyObjectWithCoordinatesItem - объект со всеми активными полигонами
type GeographyObjectWithCoordinatesItem struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Center      []float64     `json:"center"`
	Zoom        int           `json:"zoom"`
	Coordinates []PolygonItem `json:"coordinates"`
}
