package component

import "image/color"

// Appearance is the flat color a host draws an entity with.
type Appearance struct {
	Color color.Color
}

var AppearanceComponent = NewComponent[Appearance]()
