package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"

	"github.com/geography-microservice/internal/pkg/errors"
)

// minRingPoints - минимальное число точек замкнутого кольца (треугольник + точка замыкания)
const minRingPoints = 4

// Ring - замкнутая последовательность точек
type Ring []Point

// Polygon - неизменяемый полигон: первое кольцо внешняя граница, остальные дыры.
// Значение создаётся только через ParsePolygon / NewPolygon, срезы наружу отдаются копиями.
type Polygon struct {
	rings []Ring
}

// NewPolygon проверяет кольца и собирает полигон
func NewPolygon(rings []Ring) (Polygon, error) {
	if len(rings) == 0 {
		return Polygon{}, errors.ErrEmptyCoordinates
	}

	copied := make([]Ring, 0, len(rings))
	for _, ring := range rings {
		if err := validateRing(ring); err != nil {
			return Polygon{}, err
		}
		copied = append(copied, append(Ring(nil), ring...))
	}

	return Polygon{rings: copied}, nil
}

// ParsePolygon преобразует проводной формат [кольцо][точка][x, y] в полигон
func ParsePolygon(coordinates [][][]float64) (Polygon, error) {
	if len(coordinates) == 0 {
		return Polygon{}, errors.ErrEmptyCoordinates
	}

	rings := make([]Ring, 0, len(coordinates))
	for _, rawRing := range coordinates {
		ring := make(Ring, 0, len(rawRing))
		for _, rawPoint := range rawRing {
			if len(rawPoint) != 2 {
				return Polygon{}, errors.ErrIncorrectCoordinates
			}
			ring = append(ring, Point{X: rawPoint[0], Y: rawPoint[1]})
		}
		rings = append(rings, ring)
	}

	return NewPolygon(rings)
}

func validateRing(ring Ring) error {
	if len(ring) < minRingPoints {
		return errors.ErrIncorrectCoordinates
	}
	for _, p := range ring {
		if !p.IsFinite() {
			return errors.ErrIncorrectCoordinates
		}
	}
	if ring[0] != ring[len(ring)-1] {
		return errors.ErrIncorrectCoordinates
	}
	return nil
}

// Coordinates сериализует полигон обратно в проводной формат
func (p Polygon) Coordinates() [][][]float64 {
	result := make([][][]float64, 0, len(p.rings))
	for _, ring := range p.rings {
		points := make([][]float64, 0, len(ring))
		for _, pt := range ring {
			points = append(points, []float64{pt.X, pt.Y})
		}
		result = append(result, points)
	}
	return result
}

// Rings возвращает копию колец
func (p Polygon) Rings() []Ring {
	result := make([]Ring, 0, len(p.rings))
	for _, ring := range p.rings {
		result = append(result, append(Ring(nil), ring...))
	}
	return result
}

func (p Polygon) IsEmpty() bool {
	return len(p.rings) == 0
}

// Equal - точное структурное равенство: порядок колец и точек значим, допуска нет
func (p Polygon) Equal(other Polygon) bool {
	if len(p.rings) != len(other.rings) {
		return false
	}
	for i := range p.rings {
		if len(p.rings[i]) != len(other.rings[i]) {
			return false
		}
		for j := range p.rings[i] {
			if p.rings[i][j] != other.rings[i][j] {
				return false
			}
		}
	}
	return true
}

type geoJSONPolygon struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// GeoJSON возвращает геометрию для ST_GeomFromGeoJSON
func (p Polygon) GeoJSON() (string, error) {
	geom := geoJSONPolygon{Type: "Polygon", Coordinates: make([][][2]float64, 0, len(p.rings))}
	for _, ring := range p.rings {
		points := make([][2]float64, 0, len(ring))
		for _, pt := range ring {
			points = append(points, [2]float64{pt.X, pt.Y})
		}
		geom.Coordinates = append(geom.Coordinates, points)
	}

	data, err := json.Marshal(geom)
	if err != nil {
		return "", fmt.Errorf("marshal polygon to GeoJSON: %w", err)
	}
	return string(data), nil
}

// ParsePolygonGeoJSON разбирает результат ST_AsGeoJSON
func ParsePolygonGeoJSON(data []byte) (Polygon, error) {
	var geom geoJSONPolygon
	if err := json.Unmarshal(data, &geom); err != nil {
		return Polygon{}, fmt.Errorf("unmarshal polygon geometry: %w", err)
	}
	if geom.Type != "Polygon" {
		return Polygon{}, fmt.Errorf("expected Polygon type, got %s", geom.Type)
	}

	rings := make([]Ring, 0, len(geom.Coordinates))
	for _, rawRing := range geom.Coordinates {
		ring := make(Ring, 0, len(rawRing))
		for _, pt := range rawRing {
			ring = append(ring, Point{X: pt[0], Y: pt[1]})
		}
		rings = append(rings, ring)
	}

	return NewPolygon(rings)
}

// Value implements driver.Valuer: GeoJSON строка для ST_GeomFromGeoJSON
func (p Polygon) Value() (driver.Value, error) {
	if p.IsEmpty() {
		return nil, nil
	}
	return p.GeoJSON()
}

// Scan implements sql.Scanner для колонки, выбранной через ST_AsBinary (WKB) или ST_AsGeoJSON
func (p *Polygon) Scan(value interface{}) error {
	if value == nil {
		*p = Polygon{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to scan Polygon: expected []byte or string, got %T", value)
	}

	parse := ParsePolygonGeoJSON
	if len(data) > 0 && (data[0] == wkbLittleEndian || data[0] == wkbBigEndian) {
		parse = ParsePolygonWKB
	}

	parsed, err := parse(data)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

type geoJSONPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Scan implements sql.Scanner для точки, выбранной через ST_AsGeoJSON
func (pt *Point) Scan(value interface{}) error {
	if value == nil {
		*pt = Point{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to scan Point: expected []byte or string, got %T", value)
	}

	var geom geoJSONPoint
	if err := json.Unmarshal(data, &geom); err != nil {
		return fmt.Errorf("unmarshal point geometry: %w", err)
	}
	if geom.Type != "Point" {
		return fmt.Errorf("expected Point type, got %s", geom.Type)
	}

	*pt = Point{X: geom.Coordinates[0], Y: geom.Coordinates[1]}
	return nil
}

// IsFinite проверяет, что обе координаты конечны
func (pt Point) IsFinite() bool {
	return !math.IsNaN(pt.X) && !math.IsInf(pt.X, 0) &&
		!math.IsNaN(pt.Y) && !math.IsInf(pt.Y, 0)
}
