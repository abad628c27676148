package view

import (
	"embed"
	"io/fs"

	g "maragu.dev/gomponents"
)

//go:embed static
var staticFS embed.FS

// Static returns the embedded assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func LandingPage(state CalculatorState) g.Node {
	return Layout(
		PageConfig{},
		Hero(),
		Calculator(state),
		Waitlist(),
		PageFooter(),
	)
}
