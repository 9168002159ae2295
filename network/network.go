package network

// Network indexes regions and canals by name and preserves insertion order.
//
// Order matters: Regions() and Canals() return entries in the order they were
// added, which keeps feasibility sums, reset passes and reports deterministic
// across runs of the same scenario.
type Network struct {
	regionOrder []*Region
	canalOrder  []*Canal

	regions map[string]*Region
	canals  map[string]*Canal
}

// New returns an empty Network.
// Complexity: O(1)
func New() *Network {
	return &Network{
		regions: make(map[string]*Region),
		canals:  make(map[string]*Canal),
	}
}

// AddRegion registers r under its name.
//
// Returns ErrEmptyName for a blank name and ErrDuplicateRegion when the name
// is already taken. The Network stores the pointer as given; callers keep
// mutating the same Region the simulation sees.
func (n *Network) AddRegion(r *Region) error {
	if r == nil || r.Name == "" {
		return ErrEmptyName
	}
	if _, ok := n.regions[r.Name]; ok {
		return ErrDuplicateRegion
	}
	n.regions[r.Name] = r
	n.regionOrder = append(n.regionOrder, r)
	return nil
}

// AddCanal registers c under its name after checking both endpoints resolve
// to known regions.
//
// Returns ErrEmptyName, ErrDuplicateCanal, or ErrUnknownRegion.
func (n *Network) AddCanal(c *Canal) error {
	if c == nil || c.Name == "" {
		return ErrEmptyName
	}
	if _, ok := n.canals[c.Name]; ok {
		return ErrDuplicateCanal
	}
	if _, ok := n.regions[c.From]; !ok {
		return ErrUnknownRegion
	}
	if _, ok := n.regions[c.To]; !ok {
		return ErrUnknownRegion
	}
	n.canals[c.Name] = c
	n.canalOrder = append(n.canalOrder, c)
	return nil
}

// Regions returns all regions in insertion order.
// The slice is shared; do not reorder it.
func (n *Network) Regions() []*Region { return n.regionOrder }

// Canals returns all canals in insertion order.
// The slice is shared; do not reorder it.
func (n *Network) Canals() []*Canal { return n.canalOrder }

// Region returns the region with the given name, or nil when absent.
func (n *Network) Region(name string) *Region { return n.regions[name] }

// Canal returns the canal with the given name, or nil when absent.
func (n *Network) Canal(name string) *Canal { return n.canals[name] }
