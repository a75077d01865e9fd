package postgres

import (
	"database/sql"
	"time"

	"github.com/geography-microservice/internal/domain"
)

// auditColumns - общие колонки аудита и мягкого удаления
type auditColumns struct {
	DateCreate     time.Time  `db:"date_create"`
	DateUpdate     time.Time  `db:"date_update"`
	UsernameCreate string     `db:"username_create"`
	UsernameUpdate string     `db:"username_update"`
	DateDeleted    *time.Time `db:"date_deleted"`
}

func (a auditColumns) audit() domain.Audit {
	return domain.Audit{
		DateCreate:     a.DateCreate,
		DateUpdate:     a.DateUpdate,
		UsernameCreate: a.UsernameCreate,
		UsernameUpdate: a.UsernameUpdate,
	}
}

func (a auditColumns) lifecycle() domain.Lifecycle {
	return domain.LifecycleFromDateDeleted(a.DateDeleted)
}

// coordinateTypeColumns - колонки типа координаты из LEFT JOIN
type coordinateTypeColumns struct {
	TypeAlias           sql.NullString `db:"type_alias"`
	TypeName            sql.NullString `db:"type_name"`
	TypeBackgroundColor sql.NullString `db:"type_background_color"`
	TypeBorderColor     sql.NullString `db:"type_border_color"`
	TypeDateDeleted     *time.Time     `db:"type_date_deleted"`
}

func (t coordinateTypeColumns) toDomain(typeID sql.NullInt64) *domain.CoordinateType {
	if !typeID.Valid || !t.TypeAlias.Valid {
		return nil
	}
	return &domain.CoordinateType{
		ID:              typeID.Int64,
		Alias:           t.TypeAlias.String,
		Name:            t.TypeName.String,
		BackgroundColor: t.TypeBackgroundColor.String,
		BorderColor:     t.TypeBorderColor.String,
		Lifecycle:       domain.LifecycleFromDateDeleted(t.TypeDateDeleted),
	}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
