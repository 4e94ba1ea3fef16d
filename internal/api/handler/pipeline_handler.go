package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go-dominance/internal/chart"
	"go-dominance/internal/geo"
	"go-dominance/internal/model"
	"go-dominance/internal/pipeline"
)

// CreateDominance runs a dominance aggregation
// @Summary Compute dominant categories
// @Description Load the table behind the source, count categories per group and return the dominant category of every group
// @Tags dominance
// @Accept json
// @Produce json
// @Param request body model.Request true "Aggregation request"
// @Success 200 {object} model.Result "Dominance result"
// @Failure 400 {object} ErrorResponse "Invalid request payload or unparseable source"
// @Failure 404 {object} ErrorResponse "Focus group not found"
// @Failure 422 {object} ErrorResponse "Required column missing"
// @Failure 502 {object} ErrorResponse "Source unreachable"
// @Router /dominance [post]
func (h *Handler) CreateDominance(w http.ResponseWriter, r *http.Request) {
	res, ok := h.runJSON(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// UploadDominance runs a dominance aggregation over an uploaded CSV
// @Summary Compute dominant categories from an upload
// @Description Multipart upload of a CSV file in field "file"; options come as form fields
// @Tags dominance
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param group_column formData string false "Group column (default country)"
// @Param category_column formData string false "Category column (default blood_type)"
// @Param top_n formData int false "Groups to keep in top"
// @Param focus formData string false "Group whose breakdown is returned"
// @Param direction formData string false "Gradient direction asc or desc"
// @Success 200 {object} model.Result "Dominance result"
// @Failure 400 {object} ErrorResponse "Invalid upload"
// @Failure 422 {object} ErrorResponse "Required column missing"
// @Router /dominance/upload [post]
func (h *Handler) UploadDominance(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody())
	if err := r.ParseMultipartForm(h.maxBody()); err != nil {
		writeError(w, fmt.Errorf("%w: invalid multipart form: %v", pipeline.ErrInvalidRequest, err))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, fmt.Errorf("%w: form field \"file\" is required", pipeline.ErrInvalidRequest))
		return
	}
	defer file.Close()

	req := model.Request{
		Source:         model.Source{Type: model.SourceUpload},
		GroupColumn:    r.FormValue("group_column"),
		CategoryColumn: r.FormValue("category_column"),
		Focus:          r.FormValue("focus"),
		Direction:      r.FormValue("direction"),
	}
	if v := r.FormValue("top_n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, fmt.Errorf("%w: top_n must be an integer", pipeline.ErrInvalidRequest))
			return
		}
		req.TopN = n
	}
	h.applyTopN(&req)

	df, err := pipeline.ReadTable(file)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := h.Runner.RunFrame(r.Context(), req, df)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ExportDominance downloads the dominant table
// @Summary Download dominant categories
// @Description Run the aggregation and return every group's dominant entry as csv, json or xlsx
// @Tags dominance
// @Accept json
// @Produce text/csv
// @Produce application/json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv (default), json or xlsx"
// @Param request body model.Request true "Aggregation request"
// @Success 200 {file} file "Export file"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 422 {object} ErrorResponse "Required column missing"
// @Router /dominance/export [post]
func (h *Handler) ExportDominance(w http.ResponseWriter, r *http.Request) {
	format, err := pipeline.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, err)
		return
	}

	res, ok := h.runJSON(w, r)
	if !ok {
		return
	}

	name := format.FileName(pipeline.ExportBase(res.GroupColumn, res.CategoryColumn))
	writeFile(w, format.ContentType(), name, func(out io.Writer) error {
		return pipeline.Export(out, format, res.Dominant)
	})
}

// ChartDominance renders the dominance chart
// @Summary Render a dominance chart
// @Description kind=bar charts the top groups' dominant counts; kind=pie charts the focus group's breakdown
// @Tags dominance
// @Accept json
// @Produce png
// @Param kind query string false "bar (default) or pie"
// @Param request body model.Request true "Aggregation request"
// @Success 200 {file} file "PNG image"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 422 {object} ErrorResponse "No data to chart"
// @Router /dominance/chart [post]
func (h *Handler) ChartDominance(w http.ResponseWriter, r *http.Request) {
	kind := strings.ToLower(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = "bar"
	}
	if kind != "bar" && kind != "pie" {
		writeError(w, fmt.Errorf("%w: chart kind %q", pipeline.ErrInvalidRequest, kind))
		return
	}

	res, ok := h.runJSON(w, r)
	if !ok {
		return
	}

	if kind == "pie" {
		if res.Focus == "" {
			writeError(w, fmt.Errorf("%w: pie chart needs a focus group", pipeline.ErrInvalidRequest))
			return
		}
		writePNG(w, func(out io.Writer) error {
			return chart.BreakdownPie(out, res.Focus, res.Distribution, chart.Options{})
		})
		return
	}
	writePNG(w, func(out io.Writer) error {
		return chart.DominantBar(out, "Dominant category by group", res.Top, res.Colors, chart.Options{})
	})
}

// MapDominance returns choropleth data
// @Summary Dominant categories on a map
// @Description ISO 3166-1 alpha-3 keyed dominant categories of the top groups; groups without a code are listed as unmapped
// @Tags dominance
// @Accept json
// @Produce json
// @Param request body model.Request true "Aggregation request"
// @Success 200 {object} model.MapResult "Map data"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /dominance/map [post]
func (h *Handler) MapDominance(w http.ResponseWriter, r *http.Request) {
	res, ok := h.runJSON(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, geo.MapEntries(res.Top, h.Resolver))
}

// runJSON decodes a model.Request and runs it, writing the error response on failure
func (h *Handler) runJSON(w http.ResponseWriter, r *http.Request) (*model.Result, bool) {
	var req model.Request
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return nil, false
	}
	if err := h.checkSource(req.Source); err != nil {
		writeError(w, err)
		return nil, false
	}
	h.applyTopN(&req)

	res, err := h.Runner.Run(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return res, true
}
