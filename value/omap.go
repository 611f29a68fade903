package value

// Omap is the ordered map collection. It behaves as a Map but keeps its own
// type so callers can tell the two tags apart.
type Omap struct {
	Map
}

func NewOmap() *Omap {
	return &Omap{Map: *NewMap()}
}
