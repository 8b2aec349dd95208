package fragment

// Section is one recognized README fragment slot.
type Section struct {
	Name    string // Fragment file basename, e.g. "DESCRIPTION"
	Heading string // Heading text in the composed document; empty means no heading
}

// Sections is the fixed table of recognized fragments in output order.
// Reordering or adding a section is a one-place change here.
var Sections = []Section{
	{Name: "DESCRIPTION", Heading: ""},
	{Name: "INSTALL", Heading: "Installation"},
	{Name: "CONFIGURE", Heading: "Configuration"},
	{Name: "USAGE", Heading: "Usage"},
	{Name: "ROADMAP", Heading: "Known issues / Roadmap"},
	{Name: "DEVELOP", Heading: "Development"},
	{Name: "CONTRIBUTORS", Heading: "Contributors"},
	{Name: "CREDITS", Heading: "Credits"},
	{Name: "HISTORY", Heading: "Changelog"},
}

// FragmentsDir is the conventional documentation subfolder of an addon.
const FragmentsDir = "readme"
