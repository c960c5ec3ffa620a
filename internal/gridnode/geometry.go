package gridnode

import (
	"math"

	"geoavail/internal/spatialtypes"
)

// toPixel maps a lat/lon point into this node's pixel grid. Latitude
// decreases as y grows (north is row 0); longitude increases as x grows
// (west is column 0). The result is not yet clamped — callers that write
// into the node clamp it with spatialtypes.Pixel.Clamp, callers that only
// rasterize a query polygon let out-of-range pixels fall outside every scan
// line naturally.
func (n *Node) toPixel(lat, lon float64) spatialtypes.Pixel {
	xDiff := lon - n.BaseRange.West
	yDiff := n.BaseRange.North - lat
	return spatialtypes.Pixel{
		X: int(math.Floor(xDiff / n.XPx)),
		Y: int(math.Floor(yDiff / n.YPx)),
	}
}
