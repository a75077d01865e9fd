package domain

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Порядок байт и код типа WKB (OGC Simple Features)
const (
	wkbBigEndian    byte   = 0
	wkbLittleEndian byte   = 1
	wkbPolygonType  uint32 = 3
)

// ParsePolygonWKB разбирает результат ST_AsBinary без потери точности
func ParsePolygonWKB(data []byte) (Polygon, error) {
	r := wkbReader{data: data}

	switch order := r.readByte(); order {
	case wkbLittleEndian:
		r.order = binary.LittleEndian
	case wkbBigEndian:
		r.order = binary.BigEndian
	default:
		return Polygon{}, fmt.Errorf("unknown WKB byte order %d", order)
	}

	if geomType := r.readUint32(); r.err == nil && geomType != wkbPolygonType {
		return Polygon{}, fmt.Errorf("expected WKB Polygon type, got %d", geomType)
	}

	ringCount := r.readUint32()
	rings := make([]Ring, 0, r.capacity(ringCount, 4))
	for i := uint32(0); i < ringCount && r.err == nil; i++ {
		pointCount := r.readUint32()
		ring := make(Ring, 0, r.capacity(pointCount, 16))
		for j := uint32(0); j < pointCount && r.err == nil; j++ {
			ring = append(ring, Point{X: r.readFloat64(), Y: r.readFloat64()})
		}
		rings = append(rings, ring)
	}

	if r.err != nil {
		return Polygon{}, r.err
	}
	if r.pos != len(data) {
		return Polygon{}, fmt.Errorf("unexpected %d trailing bytes in WKB polygon", len(data)-r.pos)
	}

	return NewPolygon(rings)
}

type wkbReader struct {
	data  []byte
	pos   int
	order binary.ByteOrder
	err   error
}

func (r *wkbReader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.data)-r.pos < n {
		r.err = fmt.Errorf("truncated WKB polygon at offset %d", r.pos)
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *wkbReader) readByte() byte {
	if b := r.next(1); b != nil {
		return b[0]
	}
	return 0
}

func (r *wkbReader) readUint32() uint32 {
	if b := r.next(4); b != nil {
		return r.order.Uint32(b)
	}
	return 0
}

func (r *wkbReader) readFloat64() float64 {
	if b := r.next(8); b != nil {
		return math.Float64frombits(r.order.Uint64(b))
	}
	return 0
}

// capacity ограничивает предвыделение объёмом оставшихся байт
func (r *wkbReader) capacity(count uint32, itemSize int) int {
	if limit := (len(r.data) - r.pos) / itemSize; int(count) > limit {
		return limit
	}
	return int(count)
}

// WKB кодирует полигон в little-endian WKB
func (p Polygon) WKB() []byte {
	size := 9
	for _, ring := range p.rings {
		size += 4 + 16*len(ring)
	}

	buf := make([]byte, 0, size)
	buf = append(buf, wkbLittleEndian)
	buf = binary.LittleEndian.AppendUint32(buf, wkbPolygonType)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(p.rings)))
	for _, ring := range p.rings {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(ring)))
		for _, pt := range ring {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(pt.X))
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(pt.Y))
		}
	}
	return buf
}
