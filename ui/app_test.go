package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthdash/domain/chart"
	"healthdash/internal/signals"
	"healthdash/internal/testkit"
	"healthdash/internal/views"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	table := testkit.SyntheticTable()
	dispatcher := signals.NewDispatcher(table)
	views.RegisterAll(dispatcher, table)

	app, err := NewApp(table, dispatcher, Config{})
	require.NoError(t, err)
	return app
}

func doRequest(t *testing.T, app *App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	return rec
}

func TestIndexPage(t *testing.T) {
	app := newTestApp(t)
	rec := doRequest(t, app, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Healthcare Dashboard")
	assert.Contains(t, body, "Total Patient Records")
	assert.Contains(t, body, `id="billing-slider"`)
	// Gender options come from the table, not a hardcoded list
	assert.Contains(t, body, `<option value="Male">`)
}

func TestAboutPage(t *testing.T) {
	app := newTestApp(t)
	rec := doRequest(t, app, http.MethodGet, "/about", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Column contract")
}

func TestDatasetInfo(t *testing.T) {
	app := newTestApp(t)
	rec := doRequest(t, app, http.MethodGet, "/api/dataset/info", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var info datasetInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))

	assert.NotEmpty(t, info.DatasetID)
	assert.Equal(t, 500, info.RecordCount)
	require.NotNil(t, info.AverageBilling)
	assert.Greater(t, *info.AverageBilling, 0.0)
	assert.Len(t, info.Genders, 2)
	assert.Len(t, info.Billing.Marks, 5)
	assert.LessOrEqual(t, info.Billing.Min, info.Billing.Max)
}

func TestAllViews(t *testing.T) {
	app := newTestApp(t)
	rec := doRequest(t, app, http.MethodGet, "/api/views", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var specs map[string]chart.Spec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &specs))

	for _, name := range []string{
		"age-distribution", "condition-distribution", "admission-trends",
		"billing-distribution", "insurance-comparison",
	} {
		assert.Contains(t, specs, name)
	}
}

func TestSingleView(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, http.MethodGet, "/api/views/admission-trends", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var spec chart.Spec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	assert.Equal(t, chart.KindLine, spec.Kind)

	rec = doRequest(t, app, http.MethodGet, "/api/views/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetSignal_ReturnsAffectedViews(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, http.MethodPost, "/api/signals/gender", `{"value":"Male"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Signal string                `json:"signal"`
		Views  map[string]chart.Spec `json:"views"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "gender", resp.Signal)
	assert.Contains(t, resp.Views, "age-distribution")
	assert.Contains(t, resp.Views, "condition-distribution")
	assert.Contains(t, resp.Views, "billing-distribution")
	assert.Contains(t, resp.Views, "insurance-comparison")
	// admission-trends does not subscribe to the gender signal
	assert.NotContains(t, resp.Views, "admission-trends")
}

func TestSetSignal_ChartTypeSwitchesTrendKind(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, http.MethodPost, "/api/signals/chart-type", `{"value":"bar"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Views map[string]chart.Spec `json:"views"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.Views, "admission-trends")
	assert.Equal(t, chart.KindBar, resp.Views["admission-trends"].Kind)
}

func TestSetSignal_Invalid(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, http.MethodPost, "/api/signals/chart-type", `{"value":"scatter"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, app, http.MethodPost, "/api/signals/unknown", `{"value":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, app, http.MethodPost, "/api/signals/gender", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		0:          "$0.00",
		999.5:      "$999.50",
		25544.833:  "$25,544.83",
		1234567.89: "$1,234,567.89",
		-1200:      "-$1,200.00",
	}
	for in, want := range cases {
		if got := formatMoney(in); got != want {
			t.Errorf("formatMoney(%v) = %q, want %q", in, got, want)
		}
	}
}
