package browser

// Tab identifies one of the two browser panels.
type Tab int

const (
	// TabGallery lists curated workflow templates.
	TabGallery Tab = iota
	// TabSaved lists user-saved workflow files.
	TabSaved
)

// String returns the tab identity used in URLs and templates.
func (t Tab) String() string {
	if t == TabSaved {
		return "saved"
	}
	return "gallery"
}

// ParseTab maps a tab identity back to a Tab. Unknown values fall back to
// the gallery tab, the default on page load.
func ParseTab(s string) Tab {
	if s == "saved" {
		return TabSaved
	}
	return TabGallery
}

// Panel is the rendered content of one tab: its cards plus visibility and
// selector state. The card list is rebuilt in full on every refresh.
type Panel struct {
	Cards    []Card
	Visible  bool
	Selected bool
}
