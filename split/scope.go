package split

// Scope collects release funcs of transient subscriptions so they can all be
// dropped at once.
type Scope struct {
	releases []func()
}

// Add records a release func. Nil funcs are ignored.
func (s *Scope) Add(release func()) {
	if release == nil {
		return
	}
	s.releases = append(s.releases, release)
}

// Len returns the number of pending releases.
func (s *Scope) Len() int {
	return len(s.releases)
}

// Release calls every recorded func, last added first, and empties the scope.
func (s *Scope) Release() {
	for len(s.releases) > 0 {
		last := len(s.releases) - 1
		fn := s.releases[last]
		s.releases = s.releases[:last]
		fn()
	}
}
