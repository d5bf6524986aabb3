package browser

import "github.com/me/workdeck/pkg/model"

// Card is the renderable representation of one workflow: a thumbnail
// region, a title line, optional author and date lines, a Load action and
// an optional Delete action.
type Card struct {
	// Name is the raw workflow name handed to the Load and Delete actions.
	// For saved workflows it keeps the file extension the display title
	// strips.
	Name       string
	Title      string
	Author     string
	Time       string
	Thumbnail  string // image data URI
	ShowDelete bool
}

// HasAuthor reports whether the card renders an "Author:" line.
func (c Card) HasAuthor() bool { return c.Author != "" }

// HasTime reports whether the card renders a "Date:" line.
func (c Card) HasTime() bool { return c.Time != "" }

// BuildCard constructs a card from a workflow summary. It is a pure
// function: the caller owns appending the card to a panel.
func BuildCard(name string, sum model.WorkflowSummary, showDelete bool) Card {
	return Card{
		Name:       name,
		Title:      sum.Title,
		Author:     sum.Author,
		Time:       sum.Time,
		Thumbnail:  sum.Thumbnail,
		ShowDelete: showDelete,
	}
}
