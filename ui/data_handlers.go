package ui

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"healthdash/internal/errors"
)

// datasetInfo is the JSON shape of /api/dataset/info
type datasetInfo struct {
	DatasetID      string      `json:"datasetId"`
	Source         string      `json:"source"`
	RecordCount    int         `json:"recordCount"`
	AverageBilling *float64    `json:"averageBilling"` // null when undefined
	Genders        []string    `json:"genders"`
	Conditions     []string    `json:"conditions"`
	Providers      []string    `json:"providers"`
	Billing        billingInfo `json:"billing"`
}

type billingInfo struct {
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
	Marks []float64 `json:"marks"` // 0/25/50/75/100 percentile slider marks
}

// handleDatasetInfo returns the startup summary and control metadata
func (a *App) handleDatasetInfo(w http.ResponseWriter, r *http.Request) {
	min, max := a.dispatcher.BillingBounds()

	var avg *float64
	if a.stats.AverageBillingOK {
		v := a.stats.AverageBilling
		avg = &v
	}

	a.writeJSON(w, http.StatusOK, datasetInfo{
		DatasetID:      a.table.ID(),
		Source:         a.table.Source(),
		RecordCount:    a.stats.RecordCount,
		AverageBilling: avg,
		Genders:        a.table.Genders(),
		Conditions:     a.table.Conditions(),
		Providers:      a.table.Providers(),
		Billing: billingInfo{
			Min:   min,
			Max:   max,
			Marks: a.table.BillingQuantiles(),
		},
	})
}

// handleViews returns every view's spec for the current signal state
func (a *App) handleViews(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.dispatcher.EvaluateAll())
}

// handleView returns one view's spec for the current signal state
func (a *App) handleView(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	spec, err := a.dispatcher.Evaluate(name)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, spec)
}

// signalRequest is the body of POST /api/signals/{name}
type signalRequest struct {
	Value interface{} `json:"value"`
}

// handleSetSignal applies one control change and responds with the
// re-evaluated specs of exactly the views that depend on that signal
func (a *App) handleSetSignal(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req signalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, errors.InvalidInput("malformed signal body"))
		return
	}

	specs, err := a.dispatcher.Set(name, req.Value)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"signal": name,
		"views":  specs,
	})
}

func (a *App) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Error("encoding response: %v", err)
	}
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}
	a.writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
