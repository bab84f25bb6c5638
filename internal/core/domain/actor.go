package domain

// Actor is the authenticated principal behind a request. The zero value is
// an anonymous caller.
type Actor struct {
	ID    string
	Role  Role
	Name  string
	Email string
}

// Anonymous reports whether the actor carries no identity.
func (a Actor) Anonymous() bool {
	return a.ID == ""
}

// Is reports whether the actor holds role r.
func (a Actor) Is(r Role) bool {
	return !a.Anonymous() && a.Role == r
}
