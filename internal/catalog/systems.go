package catalog

import (
	"sort"

	"github.com/san-kum/resonancex/internal/units"
)

// Group collects rows by host in order of first appearance.
func Group(rows []Row) (hosts []string, byHost map[string][]Row) {
	byHost = make(map[string][]Row)
	for _, r := range rows {
		if _, seen := byHost[r.Host]; !seen {
			hosts = append(hosts, r.Host)
		}
		byHost[r.Host] = append(byHost[r.Host], r)
	}
	return hosts, byHost
}

// Systems converts rows into systems of planets in simulation units. Rows
// without a valid period are dropped; hosts left with no planets are
// omitted. starMass <= 0 selects units.ReferenceStarMass.
func Systems(rows []Row, starMass float64) []System {
	hosts, byHost := Group(rows)
	systems := make([]System, 0, len(hosts))
	for _, host := range hosts {
		sys := System{Host: host}
		for _, r := range byHost[host] {
			if !r.HasPeriod() {
				continue
			}
			sys.Planets = append(sys.Planets, NewPlanet(r.Letter, r.PeriodDays, units.PlanetMass(r.MassJup), starMass))
		}
		if len(sys.Planets) > 0 {
			systems = append(systems, sys)
		}
	}
	return systems
}

// Find returns the system for host.
func Find(rows []Row, host string, starMass float64) (System, bool) {
	var subset []Row
	for _, r := range rows {
		if r.Host == host {
			subset = append(subset, r)
		}
	}
	systems := Systems(subset, starMass)
	if len(systems) == 0 {
		return System{}, false
	}
	return systems[0], true
}

// ValidSystems lists, sorted, the hosts with at least two valid periods.
func ValidSystems(rows []Row) []string {
	var out []string
	for _, sys := range Systems(rows, units.ReferenceStarMass) {
		if sys.Resonant() {
			out = append(out, sys.Host)
		}
	}
	sort.Strings(out)
	return out
}
