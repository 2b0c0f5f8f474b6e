package console

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mmcdole/rosterctl/pkg/roster"
)

// EmptyRosterMessage is printed instead of a table for an empty roster
const EmptyRosterMessage = "User data is empty."

// tableStyle draws ASCII borders with a separator after every row. Header
// text is printed as given so the Styler decides its look.
var tableStyle = func() table.Style {
	style := table.StyleDefault
	style.Format.Header = text.FormatDefault
	style.Options.SeparateRows = true
	return style
}()

// RenderTable prints users as a two-column Name/Age table
func (c *IO) RenderTable(users []roster.User) {
	if len(users) == 0 {
		c.Println(EmptyRosterMessage)
		return
	}

	t := table.NewWriter()
	t.SetStyle(tableStyle)
	t.AppendHeader(table.Row{c.styler.Header("Name"), c.styler.Header("Age")})
	for _, u := range users {
		t.AppendRow(table.Row{u.Name, u.Age})
	}

	c.Println(t.Render())
}
