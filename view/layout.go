package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Brightwatt - Cut facility energy costs"
	}

	if config.Description == "" {
		config.Description = "Smart building controls that cut commercial energy bills by up to 16%. Estimate your savings in seconds."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				g.Group(content),

				Script(Type("module"), Src("/static/js/waitlist.js")),
			),
		),
	})
}
