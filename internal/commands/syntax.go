package commands

// Argument prefixes
const (
	PrefixName       = "n/"
	PrefixPhone      = "p/"
	PrefixEmail      = "e/"
	PrefixAddress    = "a/"
	PrefixClientType = "c/"
)
