package component

// Label is an optional debug caption any entity can carry.
type Label struct {
	Name    string
	Text    string
	Visible bool
}

var LabelComponent = NewComponent[Label]()
