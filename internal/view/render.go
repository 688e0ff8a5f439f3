// Package view renders the person view-model. Rendering is a pure function of
// the status tag and the loaded record; PersonView adds the subscriptions that
// keep a host informed of changes.
package view

import "github.com/trknhr/personview/internal/model/entity"

const (
	TextNotStarted = "Do nothing"
	TextLoading    = "Loading data"
	TextError      = "there is an error"
	TextNoData     = "No data"

	PersonIcon = "👤"
)

// Content is one rendered presentation.
type Content struct {
	Status entity.Status
	// Icon is set only for a loaded record.
	Icon bool
	Text string
}

func (c Content) String() string {
	if c.Icon {
		return PersonIcon + "\n" + c.Text
	}
	return c.Text
}

func Render(status entity.Status, p *entity.Person) Content {
	switch status {
	case entity.StatusNotStarted:
		return Content{Status: status, Text: TextNotStarted}
	case entity.StatusLoading:
		return Content{Status: status, Text: TextLoading}
	case entity.StatusLoaded:
		if p == nil {
			return Content{Status: status, Text: TextNoData}
		}
		return Content{Status: status, Icon: true, Text: p.FullName()}
	default:
		return Content{Status: status, Text: TextError}
	}
}
