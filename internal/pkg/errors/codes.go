package errors

import "net/http"

// Ошибки запроса
var (
	ErrEmptyRequest = New(
		KindEmptyRequest,
		"EMPTY_REQUEST",
		"Empty request",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		KindValidation,
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrEmptyID = New(
		KindValidation,
		"EMPTY_ID",
		"Empty identifier",
		http.StatusBadRequest,
	)

	ErrEmptyGeographyObjectID = New(
		KindValidation,
		"EMPTY_GEOGRAPHY_OBJECT_ID",
		"Empty geography object identifier",
		http.StatusBadRequest,
	)

	ErrEmptyCoordinateID = New(
		KindValidation,
		"EMPTY_COORDINATE_ID",
		"Empty coordinate identifier",
		http.StatusBadRequest,
	)

	ErrEmptyCoordinates = New(
		KindValidation,
		"EMPTY_COORDINATES",
		"Empty coordinates",
		http.StatusBadRequest,
	)

	ErrIncorrectCoordinates = New(
		KindValidation,
		"INCORRECT_COORDINATES",
		"Incorrect coordinates",
		http.StatusBadRequest,
	)

	ErrEmptyZoom = New(
		KindValidation,
		"EMPTY_ZOOM",
		"Empty zoom",
		http.StatusBadRequest,
	)

	ErrIncorrectZoom = New(
		KindValidation,
		"INCORRECT_ZOOM",
		"Incorrect zoom: must be between 3 and 24",
		http.StatusBadRequest,
	)

	ErrNotFoundCurrentUser = New(
		KindUnauthorized,
		"NOT_FOUND_CURRENT_USER",
		"Current user not found",
		http.StatusUnauthorized,
	)
)

// Ошибки поиска
var (
	ErrNotFoundCoordinate = New(
		KindNotFound,
		"NOT_FOUND_COORDINATE",
		"Coordinate not found",
		http.StatusBadRequest,
	)

	ErrNotFoundCoordinateType = New(
		KindNotFound,
		"NOT_FOUND_COORDINATE_TYPE",
		"Coordinate type not found",
		http.StatusBadRequest,
	)

	ErrNotFoundGeographyObject = New(
		KindNotFound,
		"NOT_FOUND_GEOGRAPHY_OBJECT",
		"Geography object not found",
		http.StatusBadRequest,
	)

	ErrNotFoundGeographyObjectType = New(
		KindNotFound,
		"NOT_FOUND_GEOGRAPHY_OBJECT_TYPE",
		"Geography object type not found",
		http.StatusBadRequest,
	)

	ErrNotFoundGeographyObjectCoordinate = New(
		KindNotFound,
		"NOT_FOUND_GEOGRAPHY_OBJECT_COORDINATE",
		"Geography object coordinate not found",
		http.StatusBadRequest,
	)
)

// Ошибки жизненного цикла
var (
	ErrDeletedCoordinate = New(
		KindAlreadyDeleted,
		"DELETED_COORDINATE",
		"Coordinate is deleted",
		http.StatusBadRequest,
	)

	ErrDeletedCoordinateType = New(
		KindAlreadyDeleted,
		"DELETED_COORDINATE_TYPE",
		"Coordinate type is deleted",
		http.StatusBadRequest,
	)

	ErrDeletedGeographyObject = New(
		KindAlreadyDeleted,
		"DELETED_GEOGRAPHY_OBJECT",
		"Geography object is deleted",
		http.StatusBadRequest,
	)

	ErrDeletedGeographyObjectCoordinate = New(
		KindAlreadyDeleted,
		"DELETED_GEOGRAPHY_OBJECT_COORDINATE",
		"Geography object coordinate is deleted",
		http.StatusBadRequest,
	)

	ErrNotDeletedCoordinate = New(
		KindNotDeleted,
		"NOT_DELETED_COORDINATE",
		"Coordinate is not deleted",
		http.StatusBadRequest,
	)

	ErrNotDeletedCoordinateType = New(
		KindNotDeleted,
		"NOT_DELETED_COORDINATE_TYPE",
		"Coordinate type is not deleted",
		http.StatusBadRequest,
	)

	ErrNotDeletedGeographyObject = New(
		KindNotDeleted,
		"NOT_DELETED_GEOGRAPHY_OBJECT",
		"Geography object is not deleted",
		http.StatusBadRequest,
	)

	ErrNotDeletedGeographyObjectCoordinate = New(
		KindNotDeleted,
		"NOT_DELETED_GEOGRAPHY_OBJECT_COORDINATE",
		"Geography object coordinate is not deleted",
		http.StatusBadRequest,
	)

	ErrNotChangesCoordinate = New(
		KindNoChange,
		"NOT_CHANGES_COORDINATE",
		"Coordinate has no changes",
		http.StatusBadRequest,
	)

	ErrExistsGeographyObjectCoordinate = New(
		KindConflict,
		"EXISTS_GEOGRAPHY_OBJECT_COORDINATE",
		"Geography object coordinate already exists",
		http.StatusBadRequest,
	)
)

// Инфраструктурные ошибки
var (
	ErrDatabaseError = New(
		KindInternal,
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		KindInternal,
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		KindInternal,
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
