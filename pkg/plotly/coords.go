package plotly

import (
	"math"
	"strconv"
)

// Coords is a coordinate sequence. NaN entries are the disconnected
// line segment sentinel and marshal as null, which is how plotly.js
// expects segment breaks on the wire. An empty sequence marshals as [].
type Coords []float64

// MarshalJSON implements json.Marshaler.
func (c Coords) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2+len(c)*8)
	buf = append(buf, '[')
	for i, v := range c {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
	buf = append(buf, ']')
	return buf, nil
}
