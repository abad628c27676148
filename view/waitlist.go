package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Waitlist() g.Node {
	return Section(
		ID("waitlist"),
		Class("waitlist"),
		H2(g.Text("Get early access")),
		P(g.Text("We're onboarding a handful of facilities each month. Leave your email and we'll be in touch.")),
		Form(
			ID("waitlist-form"),
			g.Attr("data-endpoint", "/api/waitlist"),
			Input(
				Type("email"),
				Name("email"),
				Placeholder("you@company.com"),
				g.Attr("required"),
				g.Attr("autocomplete", "email"),
			),
			Input(Type("hidden"), Name("source"), Value("landing")),
			Button(Type("submit"), Class("btn btn-primary"), g.Text("Join the waitlist")),
		),
		P(ID("waitlist-status"), Class("status"), g.Attr("role", "status")),
	)
}

func PageFooter() g.Node {
	return Footer(
		Class("footer"),
		P(g.Text("Savings figures are estimates based on typical deployments and are not a quote.")),
	)
}
