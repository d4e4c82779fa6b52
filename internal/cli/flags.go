package cli

import "qsnap/internal/config"

// Flags holds command-line flags
type Flags struct {
	NoBuild bool
	Filter  string
	NoSave  bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		NoBuild:    f.NoBuild,
		NameFilter: f.Filter,
		NoSave:     f.NoSave,
	}
}
