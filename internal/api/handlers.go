package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/format"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/pipeline"
	"github.com/framewright/framewright/pkg/render"
	"github.com/framewright/framewright/pkg/report"
	"github.com/framewright/framewright/pkg/share"
	"github.com/framewright/framewright/pkg/tape"
	"github.com/framewright/framewright/pkg/units"
	"github.com/framewright/framewright/pkg/workbench"
)

// =============================================================================
// Response Helpers
// =============================================================================

type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, statusFor(err), errorResponse{
		Error: errors.UserMessage(err),
		Code:  errors.GetCode(err),
	})
}

// statusFor maps error codes onto HTTP statuses. Anything uncoded is an
// internal failure.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeDesignNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeStore, errors.ErrCodeRender, errors.ErrCodeInternal, "":
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}

// urlName returns the name route parameter with URL escaping removed.
func urlName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if u, err := url.PathUnescape(name); err == nil {
		name = u
	}
	return name
}

func queryFloat(q url.Values, key string) (float64, bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", key, raw)
	}
	return v, true, nil
}

// =============================================================================
// Health
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"error":  errors.UserMessage(err),
		})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// Calculation
// =============================================================================

// handleCalc resolves a design and returns its cut sheet.
// The request body is a pipeline.Options document; artifact rendering is
// skipped because the report itself is the response.
func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decodeJSON(r, &opts); err != nil {
		s.writeError(w, err)
		return
	}
	// Server-side file reads are not exposed.
	if opts.File != "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "file input is not accepted over the API"))
		return
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, err)
		return
	}

	d, err := s.runner.ResolveDesign(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report.Build(d, opts.ReportOptions()))
}

// =============================================================================
// Tape Conversion
// =============================================================================

type tapeRequest struct {
	Values       []string `json:"values"`
	Unit         string   `json:"unit,omitempty"`
	Denominators []int    `json:"denominators,omitempty"`
	Segments     *bool    `json:"segments,omitempty"` // default true
}

type tapeReading struct {
	Input   string           `json:"input"`
	Inches  float64          `json:"inches"`
	Reading tape.Measurement `json:"reading"`
	Display string           `json:"display"`
}

func (s *Server) handleTape(w http.ResponseWriter, r *http.Request) {
	var req tapeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if len(req.Values) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "values are required"))
		return
	}

	def := units.Inches
	if req.Unit != "" {
		u, err := units.ParseUnit(req.Unit)
		if err != nil {
			s.writeError(w, err)
			return
		}
		def = u
	}
	segments := true
	if req.Segments != nil {
		segments = *req.Segments
	}

	readings := make([]tapeReading, 0, len(req.Values))
	for _, raw := range req.Values {
		inches, err := units.ParseMeasurement(raw, def)
		if err != nil {
			s.writeError(w, err)
			return
		}
		m, err := tape.Approximate(inches, req.Denominators, segments)
		if err != nil {
			s.writeError(w, err)
			return
		}
		readings = append(readings, tapeReading{
			Input:   raw,
			Inches:  inches,
			Reading: m,
			Display: m.String(),
		})
	}
	s.writeJSON(w, http.StatusOK, map[string][]tapeReading{"readings": readings})
}

// =============================================================================
// Sizes
// =============================================================================

type sizesResponse struct {
	Standard []frame.Size `json:"standard"`
	Custom   []frame.Size `json:"custom"`
}

func (s *Server) handleListSizes(w http.ResponseWriter, r *http.Request) {
	custom, err := s.store.ListSizes(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if custom == nil {
		custom = []frame.Size{}
	}
	s.writeJSON(w, http.StatusOK, sizesResponse{
		Standard: frame.StandardSizes(),
		Custom:   custom,
	})
}

func (s *Server) handleSaveSize(w http.ResponseWriter, r *http.Request) {
	var size frame.Size
	if err := decodeJSON(r, &size); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.SaveSize(r.Context(), size); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, size)
}

func (s *Server) handleDeleteSize(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteSize(r.Context(), urlName(r)); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Share Codes
// =============================================================================

type shareRequest struct {
	Design     *frame.Design `json:"design"`
	Unit       string        `json:"unit,omitempty"`
	BladeWidth float64       `json:"blade_width,omitempty"`
}

type shareEncodeResponse struct {
	Code string `json:"code"`
	URL  string `json:"url"`
}

func (s *Server) handleShareEncode(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Design == nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "design is required"))
		return
	}
	d, err := frame.New(*req.Design)
	if err != nil {
		s.writeError(w, err)
		return
	}

	u := units.Inches
	if req.Unit != "" {
		if u, err = units.ParseUnit(req.Unit); err != nil {
			s.writeError(w, err)
			return
		}
	}
	blade := req.BladeWidth
	if blade == 0 {
		blade = frame.DefaultBladeWidth
	}

	p := share.FromDesign(d, blade, u)
	code, err := share.Encode(p)
	if err != nil {
		s.writeError(w, err)
		return
	}
	link, err := share.EncodeURL(p, s.shareBase)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, shareEncodeResponse{Code: code, URL: link})
}

type shareDecodeResponse struct {
	Design     frame.Design `json:"design"`
	Unit       units.Unit   `json:"unit"`
	BladeWidth float64      `json:"blade_width"`
	IncludeMat bool         `json:"include_mat"`
}

func (s *Server) handleShareDecode(w http.ResponseWriter, r *http.Request) {
	p, err := share.Decode(chi.URLParam(r, "code"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	d, err := p.Design()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, shareDecodeResponse{
		Design:     d,
		Unit:       p.Unit,
		BladeWidth: p.BladeWidth,
		IncludeMat: p.IncludeMat,
	})
}

// =============================================================================
// Saved Designs
// =============================================================================

func (s *Server) handleListDesigns(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.ListDesigns(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if list == nil {
		list = []workbench.SavedDesign{}
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleSaveDesign(w http.ResponseWriter, r *http.Request) {
	var sd workbench.SavedDesign
	if err := decodeJSON(r, &sd); err != nil {
		s.writeError(w, err)
		return
	}
	d, err := frame.New(sd.Design)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sd.Design = d

	saved, err := s.store.SaveDesign(r.Context(), sd)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGetDesign(w http.ResponseWriter, r *http.Request) {
	sd, err := s.store.GetDesign(r.Context(), urlName(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sd)
}

func (s *Server) handleDeleteDesign(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteDesign(r.Context(), urlName(r)); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Rendering
// =============================================================================

// handleRenderSVG draws the face view for a design given by name, share
// code, or inline dimensions over the stock defaults.
func (s *Server) handleRenderSVG(w http.ResponseWriter, r *http.Request) {
	d, err := s.designFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	q := r.URL.Query()

	u := units.Inches
	if raw := q.Get("unit"); raw != "" {
		if u, err = units.ParseUnit(raw); err != nil {
			s.writeError(w, err)
			return
		}
	}
	fo := format.DefaultOptions(u)
	fo.PrecisionIn = 2

	svgOpts := []render.SVGOption{render.WithFormat(fo)}
	if scale, ok, err := queryFloat(q, "scale"); err != nil {
		s.writeError(w, err)
		return
	} else if ok {
		svgOpts = append(svgOpts, render.WithScale(scale))
	}
	if raw := q.Get("labels"); raw != "" {
		show, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid labels: %q", raw))
			return
		}
		if !show {
			svgOpts = append(svgOpts, render.WithoutLabels())
		}
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(render.FaceSVG(d, svgOpts...))
}

// designFromQuery resolves the design for a render request.
func (s *Server) designFromQuery(r *http.Request) (frame.Design, error) {
	q := r.URL.Query()

	if name := q.Get("name"); name != "" {
		sd, err := s.store.GetDesign(r.Context(), name)
		if err != nil {
			return frame.Design{}, err
		}
		return frame.New(sd.Design)
	}
	if code := q.Get("share"); code != "" {
		p, err := share.Decode(code)
		if err != nil {
			return frame.Design{}, err
		}
		return p.Design()
	}

	// Inline dimensions over the stock defaults.
	d := frame.Default()
	set := func(key string, dst *float64) error {
		v, ok, err := queryFloat(q, key)
		if err != nil {
			return err
		}
		if ok {
			*dst = v
		}
		return nil
	}
	if err := set("height", &d.ArtworkHeight); err != nil {
		return frame.Design{}, err
	}
	if err := set("width", &d.ArtworkWidth); err != nil {
		return frame.Design{}, err
	}
	if err := set("mat", &d.MatWidthTopBottom); err != nil {
		return frame.Design{}, err
	}
	if err := set("frame", &d.FrameMaterialWidth); err != nil {
		return frame.Design{}, err
	}
	if raw := q.Get("no_mat"); raw != "" {
		noMat, err := strconv.ParseBool(raw)
		if err != nil {
			return frame.Design{}, errors.New(errors.ErrCodeInvalidInput, "invalid no_mat: %q", raw)
		}
		if noMat {
			d.MatWidthTopBottom = 0
			d.MatWidthSides = 0
		}
	}
	return frame.New(d)
}
