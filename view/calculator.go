package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"savings-site/domain"
	"savings-site/service"
)

// CalculatorState is what the calculator section renders: the submitted
// inputs and the estimate derived from them.
type CalculatorState struct {
	Request domain.EstimateRequest
	Result  domain.EstimateResult
}

func Calculator(state CalculatorState) g.Node {
	req := state.Request

	return Section(
		ID("calculator"),
		Class("calculator"),
		H2(g.Text("ROI calculator")),
		P(g.Text("Move the inputs to see what a retrofit could return for your facility.")),

		Form(
			g.Attr("method", "get"),
			g.Attr("action", "/#calculator"),
			Class("calculator-form"),

			numberField("cost", "Annual energy cost (USD)", req.AnnualEnergyCost,
				service.MinAnnualEnergyCost, service.MaxAnnualEnergyCost, 10_000),
			numberField("size", "Facility size (sq ft)", req.FacilitySizeSqFt,
				service.MinFacilitySizeSqFt, service.MaxFacilitySizeSqFt, 5_000),

			Div(
				Class("field"),
				Label(g.Attr("for", "complexity"), g.Text("System complexity")),
				Select(
					ID("complexity"),
					Name("complexity"),
					g.Group(g.Map(complexityTiers(), func(c domain.Complexity) g.Node {
						return Option(
							Value(strconv.Itoa(int(c))),
							g.If(c == req.SystemComplexity, g.Attr("selected")),
							g.Textf("Tier %d", int(c)),
						)
					})),
				),
			),

			Div(
				Class("field"),
				Label(g.Attr("for", "currency"), g.Text("Currency")),
				Select(
					ID("currency"),
					Name("currency"),
					g.Group(g.Map(domain.Currencies(), func(c domain.Currency) g.Node {
						return Option(
							Value(c.Code),
							g.If(c.Code == state.Result.Currency.Code, g.Attr("selected")),
							g.Textf("%s (%s)", c.Name, c.Symbol),
						)
					})),
				),
			),

			Button(Type("submit"), Class("btn btn-primary"), g.Text("Calculate")),
		),

		Results(state.Result),
	)
}

// Results renders the four projected figures and any input warnings.
func Results(result domain.EstimateResult) g.Node {
	est := result.Estimate
	cur := result.Currency

	return Div(
		ID("results"),
		Class("results"),
		Div(
			Class("stats"),
			stat("Annual savings", service.FormatAmount(cur, est.AnnualSavings)),
			stat("5-year savings", service.FormatAmount(cur, est.FiveYearSavings)),
			stat("Payback period", service.FormatPayback(est.PaybackMonths)),
			stat("CO₂ reduction", service.FormatNumber(est.CO2ReductionAnnualTons)+" t/yr"),
		),
		g.If(len(result.Warnings) > 0,
			Ul(
				Class("warnings"),
				g.Group(g.Map(result.Warnings, func(w domain.EstimateWarning) g.Node {
					return Li(g.Text(w.Message))
				})),
			),
		),
	)
}

func stat(label, value string) g.Node {
	return Div(
		Class("stat"),
		Span(Class("stat-label"), g.Text(label)),
		Strong(Class("stat-value"), g.Text(value)),
	)
}

func numberField(name, label string, value, lo, hi, step float64) g.Node {
	return Div(
		Class("field"),
		Label(g.Attr("for", name), g.Text(label)),
		Input(
			ID(name),
			Name(name),
			Type("number"),
			Value(strconv.FormatFloat(value, 'f', -1, 64)),
			g.Attr("min", strconv.FormatFloat(lo, 'f', -1, 64)),
			g.Attr("max", strconv.FormatFloat(hi, 'f', -1, 64)),
			g.Attr("step", strconv.FormatFloat(step, 'f', -1, 64)),
		),
	)
}

func complexityTiers() []domain.Complexity {
	tiers := make([]domain.Complexity, 0, domain.MaxComplexity)
	for c := domain.MinComplexity; c <= domain.MaxComplexity; c++ {
		tiers = append(tiers, c)
	}
	return tiers
}
