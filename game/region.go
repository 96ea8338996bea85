package game

// Region is a proxy territory with an owner (a bloc or neutral), a control
// level visualized as a die face, and a base GDP contribution. Owner and
// influence mutate only through card resolution and event effects.
type Region struct {
	Name      string
	Owner     string // bloc name, "" when neutral
	Influence int    // 0..MaxInfluence, the owner's grip on the region
	GDP       int    // base GDP contribution when controlled
}

// Neutral reports whether no bloc controls the region.
func (r *Region) Neutral() bool {
	return r.Owner == ""
}

// Static region data. The board is fixed: nine proxy regions, each bloc
// starting with two, three uncontested.

type regionSpec struct {
	name  string
	owner string
	gdp   int
}

var regionTable = []regionSpec{
	{"Arctic Council", "", 1},
	{"North Atlantic", "EU", 3},
	{"Latin America", "USA", 2},
	{"Africa", "EU", 2},
	{"Middle East", "", 3},
	{"Central Asia", "China", 2},
	{"Southeast Asia", "China", 3},
	{"Pacific Rim", "USA", 3},
	{"Indo-Pacific", "", 2},
}

// CreateRegions builds the starting board. Owned regions begin at a middling
// grip, neutral ones uncontested.
func CreateRegions() []*Region {
	regions := make([]*Region, 0, len(regionTable))
	for _, spec := range regionTable {
		influence := 0
		if spec.owner != "" {
			influence = 3
		}
		regions = append(regions, &Region{
			Name:      spec.name,
			Owner:     spec.owner,
			Influence: influence,
			GDP:       spec.gdp,
		})
	}
	return regions
}

// RegionsOwnedBy counts regions controlled by the named bloc.
func RegionsOwnedBy(regions []*Region, bloc string) int {
	count := 0
	for _, r := range regions {
		if r.Owner == bloc {
			count++
		}
	}
	return count
}
