package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/papapumpkin/lifeweeks/internal/grid"
	"github.com/papapumpkin/lifeweeks/internal/lifechart"
	"github.com/papapumpkin/lifeweeks/internal/share"
)

// pageData feeds pageTemplate.
type pageData struct {
	BirthDate string
	EndYear   int
	Info      string
	Error     string
	ShareLink string
	Grid      *grid.Grid
}

// chartResponse is the JSON form of a chart.
type chartResponse struct {
	BirthDate     string               `json:"birthdate"`
	ReferenceDate string               `json:"referenceDate"`
	NextBirthday  string               `json:"nextBirthday"`
	EndYear       int                  `json:"endYear"`
	Boundaries    []string             `json:"yearBoundaries"`
	Lived         []lifechart.WeekCell `json:"livedWeeks"`
	Upcoming      []lifechart.WeekCell `json:"upcomingWeeks"`
	Summary       lifechart.Summary    `json:"summary"`
	Description   string               `json:"description"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// horizonFor resolves the requested end year against the server default.
func (s *Server) horizonFor(p share.Params) int {
	if p.EndYear <= 0 {
		return s.horizon
	}
	return lifechart.ClampHorizon(p.EndYear)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	params := share.ParseQuery(r.URL.Query())
	horizon := s.horizonFor(params)
	data := pageData{BirthDate: params.BirthDate, EndYear: horizon}

	switch chart, err := s.compute(params, horizon); {
	case params.BirthDate == "":
		data.Grid = grid.Empty(horizon)
	case err != nil:
		data.Error = "Please enter a valid past birthdate."
		data.Grid = grid.Empty(horizon)
	default:
		data.Grid = grid.FromChart(chart)
		data.Info = lifechart.Describe(chart, s.formatter)
		shared := share.Params{BirthDate: params.BirthDate}
		if params.EndYear > 0 {
			shared.EndYear = horizon
		}
		if link, err := share.Link(s.baseURL, shared); err == nil {
			data.ShareLink = link
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("render page", zap.Error(err))
	}
}

func (s *Server) handleChartJSON(w http.ResponseWriter, r *http.Request) {
	params := share.ParseQuery(r.URL.Query())
	horizon := s.horizonFor(params)

	chart, err := s.compute(params, horizon)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	resp := chartResponse{
		BirthDate:     chart.BirthDate.Format(lifechart.DateLayout),
		ReferenceDate: chart.ReferenceDate.Format(lifechart.DateLayout),
		NextBirthday:  chart.NextBirthday.Format(lifechart.DateLayout),
		EndYear:       chart.Horizon,
		Boundaries:    make([]string, len(chart.Boundaries)),
		Lived:         []lifechart.WeekCell{},
		Upcoming:      []lifechart.WeekCell{},
		Summary:       chart.Summary,
		Description:   lifechart.Describe(chart, s.formatter),
	}
	for i, b := range chart.Boundaries {
		resp.Boundaries[i] = b.Format(lifechart.DateLayout)
	}
	for cell := range chart.Lived() {
		resp.Lived = append(resp.Lived, cell)
	}
	for cell := range chart.Upcoming() {
		resp.Upcoming = append(resp.Upcoming, cell)
	}
	writeJSON(w, http.StatusOK, resp)
}

// compute captures the reference date once for the whole request.
func (s *Server) compute(p share.Params, horizon int) (*lifechart.Chart, error) {
	if p.BirthDate == "" {
		return nil, errors.New("birthdate is required")
	}
	chart, err := lifechart.ComputeFor(p.BirthDate, horizon, s.now())
	if err != nil {
		s.logger.Debug("chart rejected", zap.String("birthdate", p.BirthDate), zap.Error(err))
		return nil, err
	}
	s.logger.Debug("chart computed",
		zap.String("birthdate", p.BirthDate),
		zap.Int("horizon", horizon),
		zap.Int("weeks_lived", chart.Summary.TotalWeeksLived),
	)
	return chart, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
