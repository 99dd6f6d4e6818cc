package action

// Group namespaces the events of one source.
type Group struct {
	source string
}

// Source returns the group source name.
func (g *Group) Source() string {
	return g.source
}

// TypeOf returns the type tag of an event in this group.
func (g *Group) TypeOf(event string) Type {
	return Type("[" + g.source + "] " + event)
}

// NewGroup creates a group for events of source.
func NewGroup(source string) *Group {
	return &Group{source: source}
}
