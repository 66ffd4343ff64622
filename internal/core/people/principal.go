package people

// Principal is the acting party of a request. The anonymous case is an
// explicit variant rather than a nil *Person, so every authorization call
// site is forced to handle unauthenticated requests.
type Principal struct {
	person *Person
}

// Anonymous returns the unauthenticated principal.
func Anonymous() Principal {
	return Principal{}
}

// NewPrincipal wraps an authenticated person. A nil person yields the
// anonymous principal.
func NewPrincipal(p *Person) Principal {
	return Principal{person: p}
}

// Person returns the authenticated person, or false for anonymous requests.
func (pr Principal) Person() (*Person, bool) {
	if pr.person == nil {
		return nil, false
	}
	return pr.person, true
}
