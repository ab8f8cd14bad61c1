package catalog

import "sort"

// Profile bundles the compiler flags applied to both toolchains for one
// comparison run. The reference side may carry extra flags (e.g. LTO at O3)
// to keep the baseline honest about what a production build would use.
type Profile struct {
	Name           string
	CandidateFlags string
	ReferenceFlags string
	Description    string
}

// DefaultProfileName is used when the CLI does not select a profile.
const DefaultProfileName = "O2"

// Profiles enumerates the supported optimization levels.
var Profiles = map[string]Profile{
	"O0": {Name: "O0", CandidateFlags: "-O0", ReferenceFlags: "-O0", Description: "No optimizations (debug)"},
	"O1": {Name: "O1", CandidateFlags: "-O1", ReferenceFlags: "-O1", Description: "Basic optimizations"},
	"O2": {Name: "O2", CandidateFlags: "-O2", ReferenceFlags: "-O2", Description: "Standard optimizations"},
	"O3": {Name: "O3", CandidateFlags: "-O3", ReferenceFlags: "-O3 -march=native -flto", Description: "Aggressive optimizations"},
	"Os": {Name: "Os", CandidateFlags: "-Os", ReferenceFlags: "-Os", Description: "Size optimizations"},
}

// ProfileNames returns the profile names in lexicographic order.
func ProfileNames() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupProfile resolves a profile by name.
func LookupProfile(name string) (Profile, bool) {
	p, ok := Profiles[name]
	return p, ok
}
