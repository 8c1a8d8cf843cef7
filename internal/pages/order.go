package pages

import "sort"

// NormalizeSectionOrder sorts sections by their order field and rewrites each
// order to its index, cascading into every section's components. Structural
// mutations call this so persisted order values never drift from positions.
func NormalizeSectionOrder(sections []Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
	for i := range sections {
		sections[i].Order = i
		NormalizeComponentOrder(sections[i].Components)
	}
}

// NormalizeComponentOrder sorts components by order and rewrites each order to
// its index.
func NormalizeComponentOrder(components []Component) {
	sort.SliceStable(components, func(i, j int) bool {
		return components[i].Order < components[j].Order
	})
	for i := range components {
		components[i].Order = i
	}
}
