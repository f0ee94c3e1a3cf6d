package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCompanies(t *testing.T) {
	app := newTestApp(t)
	app.seedCompany(t, "appleinc", "Apple Inc", "test")

	rec := app.request(t, http.MethodGet, "/companies", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"companies":[{"code":"appleinc","name":"Apple Inc"}]}`, rec.Body.String())
}

func TestGetCompaniesEmpty(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/companies", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"companies":[]}`, rec.Body.String())
}

func TestGetCompany(t *testing.T) {
	app := newTestApp(t)
	app.seedCompany(t, "appleinc", "Apple Inc", "test")
	invoice := app.seedInvoice(t, 0, "appleinc", 100)

	rec := app.request(t, http.MethodGet, "/companies/appleinc", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	company := body["company"].(map[string]any)
	assert.Equal(t, "appleinc", company["code"])
	assert.Equal(t, "Apple Inc", company["name"])
	assert.Equal(t, "test", company["description"])
	assert.Equal(t, []any{float64(invoice.ID)}, company["invoices"])
}

func TestGetCompanyNoInvoices(t *testing.T) {
	app := newTestApp(t)
	app.seedCompany(t, "appleinc", "Apple Inc", "test")

	rec := app.request(t, http.MethodGet, "/companies/appleinc", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	company := decodeBody(t, rec)["company"].(map[string]any)
	assert.Equal(t, []any{}, company["invoices"])
}

func TestGetCompanyNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/companies/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	message, status := apiError(t, rec)
	assert.Equal(t, "Company does not exist", message)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateCompany(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/companies", map[string]any{
		"name":        "New Company",
		"description": "test description, please ignore",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"company":{
		"code":"newcompany",
		"name":"New Company",
		"description":"test description, please ignore"
	}}`, rec.Body.String())

	// Retrievable afterwards
	rec = app.request(t, http.MethodGet, "/companies/newcompany", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateCompanyExplicitCode(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/companies", map[string]any{
		"code": "Big Co.",
		"name": "Big Corporation",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	company := decodeBody(t, rec)["company"].(map[string]any)
	assert.Equal(t, "bigco", company["code"])
}

func TestCreateCompanyEmptyBody(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/companies", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCompanyDuplicateCode(t *testing.T) {
	app := newTestApp(t)
	app.seedCompany(t, "appleinc", "Apple Inc", "test")

	rec := app.request(t, http.MethodPost, "/companies", map[string]any{
		"name": "Apple Inc",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	message, _ := apiError(t, rec)
	assert.Equal(t, "Company code already exists", message)
}

func TestUpdateCompany(t *testing.T) {
	app := newTestApp(t)
	app.seedCompany(t, "appleinc", "Apple Inc", "test")

	rec := app.request(t, http.MethodPut, "/companies/appleinc", map[string]any{
		"name":        "Apple Computer",
		"description": "updated",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"company":{
		"code":"appleinc",
		"name":"Apple Computer",
		"description":"updated"
	}}`, rec.Body.String())
}

func TestUpdateCompanyReplacesDescription(t *testing.T) {
	app := newTestApp(t)
	app.seedCompany(t, "appleinc", "Apple Inc", "test")

	// Absent description overwrites with empty; no partial merge.
	rec := app.request(t, http.MethodPut, "/companies/appleinc", map[string]any{
		"name": "Apple Computer",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	company := decodeBody(t, rec)["company"].(map[string]any)
	assert.Equal(t, "", company["description"])
}

func TestUpdateCompanyEmptyBody(t *testing.T) {
	app := newTestApp(t)
	app.seedCompany(t, "appleinc", "Apple Inc", "test")

	rec := app.request(t, http.MethodPut, "/companies/appleinc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCompanyNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPut, "/companies/nope", map[string]any{
		"name": "Whatever",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCompanyTwice(t *testing.T) {
	app := newTestApp(t)
	app.seedCompany(t, "appleinc", "Apple Inc", "test")

	rec := app.request(t, http.MethodDelete, "/companies/appleinc", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"deleted"}`, rec.Body.String())

	rec = app.request(t, http.MethodDelete, "/companies/appleinc", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCompanyCascadesInvoices(t *testing.T) {
	app := newTestApp(t)
	app.seedCompany(t, "appleinc", "Apple Inc", "test")
	app.seedInvoice(t, 0, "appleinc", 100)

	rec := app.request(t, http.MethodDelete, "/companies/appleinc", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodGet, "/invoices", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"invoices":[]}`, rec.Body.String())
}

func TestUnmatchedRoute(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	_, status := apiError(t, rec)
	assert.Equal(t, http.StatusNotFound, status)
}
