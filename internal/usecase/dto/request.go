package dto

// UpgradeGeographyObjectCoordinateRequest - запрос на замену полигона географического объекта новой версией
type UpgradeGeographyObjectCoordinateRequest struct {
	GeographyObjectID *int64        `json:"geography_object_id" validate:"omitempty,gt=0"`
	CoordinateID      *int64        `json:"coordinate_id" validate:"omitempty,gt=0"`
	Coordinates       [][][]float64 `json:"coordinates"`
}

// AddGeographyObjectCoordinateRequest - запрос на привязку координаты к географическому объекту
type AddGeographyObjectCoordinateRequest struct {
	GeographyObjectID *int64 `json:"geography_object_id" validate:"omitempty,gt=0"`
	CoordinateID      *int64 `json:"coordinate_id" validate:"omitempty,gt=0"`
	Zoom              *int   `json:"zoom"`
}

// AddCoordinateRequest - запрос на создание координаты
type AddCoordinateRequest struct {
	Coordinates [][][]float64 `json:"coordinates"`
	TypeID      *int64        `json:"type_id" validate:"omitempty,gt=0"`
}

// EditCoordinateRequest - запрос на изменение полигона координаты
type EditCoordinateRequest struct {
	ID          *int64        `json:"id" validate:"omitempty,gt=0"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// IDRequest - запрос с идентификатором сущности (закрытие, восстановление)
type IDRequest struct {
	ID *int64 `json:"id" validate:"omitempty,gt=0"`
}

// GeographyObjectListQuery - фильтры списка географических объектов
type GeographyObjectListQuery struct {
	HasCoordinates *bool   `query:"has_coordinates"`
	TypeID         *int64  `query:"type_id" validate:"omitempty,gt=0"`
	TypeIDs        []int64 `query:"type_ids" validate:"omitempty,dive,gt=0"`
}
