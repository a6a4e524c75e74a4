package ui

import (
	"net/http"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// handleIndex renders the dashboard page with the cached summary, the
// control options discovered from the table, and the slider bounds
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	min, max := a.dispatcher.BillingBounds()
	sel := a.dispatcher.Snapshot()

	avgBilling := "N/A"
	if a.stats.AverageBillingOK {
		avgBilling = formatMoney(a.stats.AverageBilling)
	}

	data := map[string]interface{}{
		"Title":          "Healthcare Dashboard",
		"RecordCount":    a.stats.RecordCount,
		"AverageBilling": avgBilling,
		"Genders":        a.table.Genders(),
		"Conditions":     a.table.Conditions(),
		"BillingMin":     min,
		"BillingMax":     max,
		"BillingMarks":   a.table.BillingQuantiles(),
		"ChartType":      string(sel.ChartType),
	}
	a.renderTemplate(w, "dashboard.html", data)
}

// handleAbout renders the data dictionary from embedded markdown
func (a *App) handleAbout(w http.ResponseWriter, r *http.Request) {
	source, err := embeddedFiles.ReadFile("content/about.md")
	if err != nil {
		a.logger.Error("about content: %v", err)
		http.Error(w, "Content not found", http.StatusInternalServerError)
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	rendered := markdown.ToHTML(source, p, renderer)

	data := map[string]interface{}{
		"Title":   "About the Data",
		"Content": templateHTML(rendered),
	}
	a.renderTemplate(w, "about.html", data)
}
