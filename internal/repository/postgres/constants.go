package postgres

// Таблицы схем insania_geography и insania_logs_api_geography
const (
	tableCoordinatesTypes            = "insania_geography.c_coordinates_types"
	tableCoordinates                 = "insania_geography.r_coordinates"
	tableGeographyObjectsTypes       = "insania_geography.c_geography_objects_types"
	tableGeographyObjects            = "insania_geography.c_geography_objects"
	tableGeographyObjectsCoordinates = "insania_geography.u_geography_objects_coordinates"
	tableAPILogs                     = "insania_logs_api_geography.r_logs_api_geography"
)

// geoJSONPrecision - число знаков после запятой в ST_AsGeoJSON для центров связей.
// Полигоны читаются через ST_AsBinary без округления.
const geoJSONPrecision = "15"

// sqlStateUniqueViolation - нарушение уникального индекса
const sqlStateUniqueViolation = "23505"
