package http

import (
	"context"
	_ "embed"
	"net/http"
	"sync"

	"github.com/aretw0/marvin/pkg/domain"
	"github.com/aretw0/marvin/pkg/route"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var openapiSpec []byte

// ReduceRequest is the body of POST /reduce.
type ReduceRequest struct {
	Seed    string       `json:"seed"`
	Mode    *domain.Mode `json:"mode,omitempty"`
	Explain *bool        `json:"explain,omitempty"`
}

// ReduceResponse is returned by POST /reduce and GET /fingerprint.
type ReduceResponse struct {
	Fingerprint string        `json:"fingerprint"`
	Mode        domain.Mode   `json:"mode"`
	Trace       *domain.Trace `json:"trace,omitempty"`
}

// GetFingerprintParams are the query parameters of GET /fingerprint.
type GetFingerprintParams struct {
	Seed string       `form:"seed" json:"seed"`
	Mode *domain.Mode `form:"mode,omitempty" json:"mode,omitempty"`
}

// RouteRequest is the body of POST /route. Planets wins over Map when both are set.
type RouteRequest struct {
	Planets *[]route.Planet `json:"planets,omitempty"`
	Map     *string         `json:"map,omitempty"`
}

// RouteResponse is returned by POST /route.
type RouteResponse struct {
	Route       string `json:"route"`
	Fingerprint string `json:"fingerprint"`
}

// ErrorResponse is the body of every rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// ServerInterface lists the operations declared in openapi.yaml.
type ServerInterface interface {
	// (POST /reduce)
	Reduce(w http.ResponseWriter, r *http.Request)
	// (GET /fingerprint)
	GetFingerprint(w http.ResponseWriter, r *http.Request, params GetFingerprintParams)
	// (POST /route)
	PlanRoute(w http.ResponseWriter, r *http.Request)
	// (GET /events)
	SubscribeEvents(w http.ResponseWriter, r *http.Request)
	// (GET /health)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// (GET /info)
	GetInfo(w http.ResponseWriter, r *http.Request)
}

// HandlerFromMux mounts si on r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	r.Post("/reduce", si.Reduce)
	r.Get("/fingerprint", func(w http.ResponseWriter, req *http.Request) {
		var params GetFingerprintParams
		query := req.URL.Query()

		if err := runtime.BindQueryParameter("form", true, true, "seed", query, &params.Seed); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "invalid_parameter"})
			return
		}
		if err := runtime.BindQueryParameter("form", true, false, "mode", query, &params.Mode); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "invalid_parameter"})
			return
		}
		si.GetFingerprint(w, req, params)
	})
	r.Post("/route", si.PlanRoute)
	r.Get("/events", si.SubscribeEvents)
	r.Get("/health", si.GetHealth)
	r.Get("/info", si.GetInfo)
	return r
}

var swagger = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}
	return doc, nil
})

// GetSwagger returns the parsed and validated API description.
func GetSwagger() (*openapi3.T, error) {
	return swagger()
}

func rawSpec() []byte {
	return openapiSpec
}
