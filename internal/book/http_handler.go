package book

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"bookstoretester/internal/httpx"
	"bookstoretester/internal/locale"
)

const maxPageSize = 100

type HTTPHandler struct {
	catalog Catalog
}

func NewHTTPHandler(catalog Catalog) *HTTPHandler {
	return &HTTPHandler{catalog: catalog}
}

// generationQuery holds the knobs shared by every endpoint.
type generationQuery struct {
	Locale  string  `query:"locale" validate:"omitempty,locale"`
	Seed    int64   `query:"seed" validate:"gte=-2147483648,lte=2147483647"`
	Likes   float64 `query:"likes" validate:"gte=0,lte=1000000"`
	Reviews float64 `query:"reviews" validate:"gte=0,lte=100"`
}

type listQuery struct {
	generationQuery
	Page     int    `query:"page" validate:"gte=1,lte=1000000"`
	PageSize int    `query:"page_size" validate:"gte=1,lte=100"`
	Cursor   string `query:"cursor"`
}

type exportQuery struct {
	generationQuery
	Start int `query:"start" validate:"gte=0"`
	Count int `query:"count" validate:"gte=1,lte=10000"`
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	defaults := h.catalog.Defaults()
	qp := newQueryParser(r.URL.Query())

	q := listQuery{
		generationQuery: qp.generation(defaults),
		Page:            qp.intParam("page", 1),
		PageSize:        qp.intParam("page_size", defaultPageSize(defaults)),
		Cursor:          r.URL.Query().Get("cursor"),
	}
	if !h.validate(w, r, qp, q) {
		return
	}

	var params Params
	if q.Cursor != "" {
		cursor, err := DecodeCursor(q.Cursor)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		// A cursor is client-supplied and gets the same bounds as the query.
		if details := httpx.ValidateStruct(cursor.generationQuery()); len(details) > 0 {
			httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid cursor", details)
			return
		}
		params = cursor.Params(q.PageSize)
	} else {
		params = q.params(r, defaults)
		params.StartIndex = (q.Page - 1) * q.PageSize
		params.Count = q.PageSize
	}

	books, err := h.catalog.List(r.Context(), params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSONSuccess(r, w, books, map[string]interface{}{
		"start_index": params.StartIndex,
		"count":       len(books),
		"locale":      params.Locale.Tag(),
		"seed":        params.Seed,
		"next_cursor": EncodeCursor(CursorAfter(params)),
	})
}

// Get handles GET /books/{index}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid book index", []httpx.ErrorDetail{
			{Field: "index", Message: "index must be a non-negative integer"},
		})
		return
	}

	defaults := h.catalog.Defaults()
	qp := newQueryParser(r.URL.Query())
	q := qp.generation(defaults)
	if !h.validate(w, r, qp, q) {
		return
	}

	book, err := h.catalog.Get(r.Context(), q.params(r, defaults), index)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(r, w, book, nil)
}

// Export handles GET /books/export.csv
func (h *HTTPHandler) Export(w http.ResponseWriter, r *http.Request) {
	defaults := h.catalog.Defaults()
	qp := newQueryParser(r.URL.Query())

	q := exportQuery{
		generationQuery: qp.generation(defaults),
		Start:           qp.intParam("start", 0),
		Count:           qp.intParam("count", defaultPageSize(defaults)),
	}
	if !h.validate(w, r, qp, q) {
		return
	}

	params := q.params(r, defaults)
	params.StartIndex = q.Start
	params.Count = q.Count

	tw := &trackingWriter{ResponseWriter: w}
	tw.Header().Set("Content-Type", "text/csv; charset=utf-8")
	tw.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="books_%s_%d.csv"`, params.Locale.Tag(), params.Seed))

	if err := h.catalog.Export(r.Context(), tw, params); err != nil {
		if tw.wrote {
			httpx.Logger(r).ErrorContext(r.Context(), "csv export aborted", "error", err)
			return
		}
		tw.Header().Del("Content-Disposition")
		h.writeError(w, r, err)
	}
}

type localeInfo struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

// Locales handles GET /locales
func (h *HTTPHandler) Locales(w http.ResponseWriter, r *http.Request) {
	var out []localeInfo
	for _, l := range h.catalog.Locales() {
		out = append(out, localeInfo{Tag: l.Tag(), Name: l.String()})
	}
	httpx.JSONSuccess(r, w, out, map[string]interface{}{
		"default": h.catalog.Defaults().Locale.Tag(),
	})
}

func (h *HTTPHandler) validate(w http.ResponseWriter, r *http.Request, qp *queryParser, q interface{}) bool {
	details := append(qp.details, httpx.ValidateStruct(q)...)
	if len(details) == 0 {
		return true
	}
	httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid query parameters", details)
	return false
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error(), nil)
	case errors.Is(err, locale.ErrConfiguration):
		httpx.Logger(r).ErrorContext(r.Context(), "locale table misconfigured", "error", err)
		httpx.JSONError(r, w, http.StatusInternalServerError, "CONFIGURATION_ERROR", "Locale is not configured", nil)
	default:
		httpx.Logger(r).ErrorContext(r.Context(), "generation failed", "error", err)
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

// params resolves the locale (explicit parameter, then Accept-Language,
// then the configured default). Call only after validation.
func (q generationQuery) params(r *http.Request, defaults Defaults) Params {
	l := locale.Negotiate(r.Header.Get("Accept-Language"), defaults.Locale)
	if q.Locale != "" {
		l, _ = locale.Parse(q.Locale)
	}
	return Params{
		Locale:     l,
		Seed:       int32(q.Seed),
		AvgLikes:   q.Likes,
		AvgReviews: q.Reviews,
	}
}

func (c CursorData) generationQuery() generationQuery {
	return generationQuery{
		Locale:  c.Locale.Tag(),
		Seed:    int64(c.Seed),
		Likes:   c.AvgLikes,
		Reviews: c.AvgReviews,
	}
}

func defaultPageSize(d Defaults) int {
	if d.PageSize <= 0 || d.PageSize > maxPageSize {
		return 20
	}
	return d.PageSize
}

// queryParser reads typed query values, recording a detail for each
// value that is present but malformed.
type queryParser struct {
	values  url.Values
	details []httpx.ErrorDetail
}

func newQueryParser(values url.Values) *queryParser {
	return &queryParser{values: values}
}

func (p *queryParser) generation(d Defaults) generationQuery {
	return generationQuery{
		Locale:  p.values.Get("locale"),
		Seed:    p.int64Param("seed", int64(d.Seed)),
		Likes:   p.floatParam("likes", d.AvgLikes),
		Reviews: p.floatParam("reviews", d.AvgReviews),
	}
}

func (p *queryParser) intParam(name string, def int) int {
	raw := p.values.Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, "integer")
		return def
	}
	return v
}

func (p *queryParser) int64Param(name string, def int64) int64 {
	raw := p.values.Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.fail(name, "integer")
		return def
	}
	return v
}

func (p *queryParser) floatParam(name string, def float64) float64 {
	raw := p.values.Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(name, "number")
		return def
	}
	return v
}

func (p *queryParser) fail(name, kind string) {
	p.details = append(p.details, httpx.ErrorDetail{
		Field:   name,
		Message: fmt.Sprintf("%s must be a valid %s", name, kind),
	})
}

// trackingWriter records whether the response body has started.
type trackingWriter struct {
	http.ResponseWriter
	wrote bool
}

func (tw *trackingWriter) Write(b []byte) (int, error) {
	tw.wrote = true
	return tw.ResponseWriter.Write(b)
}
