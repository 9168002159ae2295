package scenario

import (
	"fmt"
	"strings"

	"acequia/network"
	"acequia/sim"
)

// legacyRole describes one entry of the letter convention: the canal whose
// name contains Letter is expected to run From→To, at this position in the
// priority order.
type legacyRole struct {
	Letter   string
	From, To string
}

// legacyRoles lists the convention in priority order: A (North→South),
// C (North→East), B (South→East), D (East→North).
var legacyRoles = []legacyRole{
	{Letter: "A", From: "North", To: "South"},
	{Letter: "C", From: "North", To: "East"},
	{Letter: "B", From: "South", To: "East"},
	{Letter: "D", From: "East", To: "North"},
}

// legacyLetters is the matching order, distinct from the priority order.
// The order matters: every classic canal name contains the "C" of "Canal",
// so "CanalA" must be claimed by A before C is ever considered.
var legacyLetters = []string{"A", "B", "C", "D"}

// Build assembles cfg into a simulation Manager and the route plan the
// balancer should run.
//
// Explicit routes in the config win; without them the legacy letter
// convention is resolved. Network assembly errors (duplicate or empty names)
// are wrapped and returned as-is.
func Build(cfg Config) (*sim.Manager, network.RoutePlan, error) {
	net := network.New()
	for _, r := range cfg.Regions {
		err := net.AddRegion(&network.Region{
			Name:          r.Name,
			WaterLevel:    r.Level,
			WaterNeed:     r.Need,
			WaterCapacity: r.Capacity,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("scenario: region %q: %w", r.Name, err)
		}
	}
	for _, c := range cfg.Canals {
		err := net.AddCanal(&network.Canal{Name: c.Name, From: c.From, To: c.To})
		if err != nil {
			return nil, nil, fmt.Errorf("scenario: canal %q: %w", c.Name, err)
		}
	}

	var plan network.RoutePlan
	if len(cfg.Routes) > 0 {
		for _, rt := range cfg.Routes {
			plan = append(plan, network.Route{
				From:  net.Region(rt.From),
				To:    net.Region(rt.To),
				Canal: net.Canal(rt.Canal),
			})
		}
	} else {
		var err error
		if plan, err = ResolveLegacyRoutes(net); err != nil {
			return nil, nil, err
		}
	}

	return sim.NewManager(net, cfg.MaxHours), plan, nil
}

// ResolveLegacyRoutes maps canals onto the letter convention and returns the
// resulting plan in priority order.
//
// Each canal is claimed by the first letter of A, B, C, D its name contains
// (first match wins, so "CanalA" is letter A despite also containing the "C"
// of "Canal"). A letter claimed by two canals yields ErrAmbiguousCanalName:
// there is no defensible tie-break, and explicit routes exist for exactly
// these topologies. Letters with no matching canal, and region names absent
// from the network, produce routes with nil members, which the balancer
// skips.
func ResolveLegacyRoutes(net *network.Network) (network.RoutePlan, error) {
	claimed := make(map[string]*network.Canal, len(legacyRoles))
	for _, c := range net.Canals() {
		for _, letter := range legacyLetters {
			if !strings.Contains(c.Name, letter) {
				continue
			}
			if prev := claimed[letter]; prev != nil {
				return nil, fmt.Errorf("%w: %q and %q both claim letter %s",
					ErrAmbiguousCanalName, prev.Name, c.Name, letter)
			}
			claimed[letter] = c
			break
		}
	}

	plan := make(network.RoutePlan, 0, len(legacyRoles))
	for _, role := range legacyRoles {
		plan = append(plan, network.Route{
			From:  net.Region(role.From),
			To:    net.Region(role.To),
			Canal: claimed[role.Letter],
		})
	}
	return plan, nil
}
