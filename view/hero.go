package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Section(
		Class("hero"),
		H1(g.Text("Lower energy bills without touching your operations")),
		P(
			Class("lead"),
			g.Text("Our controls learn how your building runs and trim waste from heating, cooling and lighting. Most sites pay the system back in under two years."),
		),
		Div(
			Class("hero-actions"),
			A(Href("#calculator"), Class("btn btn-primary"), g.Text("Estimate your savings")),
			A(Href("#waitlist"), Class("btn btn-ghost"), g.Text("Join the waitlist")),
		),
	)
}
