package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/amekhanov/drill-journal/internal/config"
	"github.com/amekhanov/drill-journal/internal/logger"
	"github.com/amekhanov/drill-journal/internal/utils"
	"github.com/amekhanov/drill-journal/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	csrfToken string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{
		client:    client,
		csrfToken: strings.TrimSpace(adapterCfg.CSRFToken),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetWells implements [ServerAdapter]. It GETs /api/wells/my_wells/ and
// decodes the response into a slice of [models.Well].
func (h *httpServerAdapter) GetWells(ctx context.Context) ([]models.Well, error) {
	var wells []models.Well

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&wells).
		Get("/api/wells/my_wells/")
	if err != nil {
		return nil, fmt.Errorf("%w: get wells request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return wells, nil
}

// CreateWell implements [ServerAdapter]. It POSTs the well to /api/wells/
// with the CSRF header attached. The well's LocalID travels as offline_id.
func (h *httpServerAdapter) CreateWell(ctx context.Context, well models.Well) (models.Well, error) {
	var created models.Well

	resp, err := h.mutatingRequest(ctx).
		SetBody(well).
		SetResult(&created).
		Post("/api/wells/")
	if err != nil {
		return models.Well{}, fmt.Errorf("%w: create well request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Well{}, err
	}

	return created, nil
}

// GetLayers implements [ServerAdapter]. It GETs /api/layers/?well_id=<id> and
// decodes the response. The server serialises the owning well reference as a
// number, so decoding goes through a wire representation first.
func (h *httpServerAdapter) GetLayers(ctx context.Context, wellID string) ([]models.Layer, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("well_id", wellID).
		Get("/api/layers/")
	if err != nil {
		return nil, fmt.Errorf("%w: get layers request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []layerWire
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode layers response: %w", err)
	}

	layers := make([]models.Layer, 0, len(items))
	for _, item := range items {
		layers = append(layers, item.toModel())
	}

	return layers, nil
}

// CreateLayer implements [ServerAdapter]. It POSTs the layer to /api/layers/
// with the CSRF header attached, carrying LocalID as offline_id.
func (h *httpServerAdapter) CreateLayer(ctx context.Context, layer models.Layer) (models.Layer, error) {
	resp, err := h.mutatingRequest(ctx).
		SetBody(layer).
		Post("/api/layers/")
	if err != nil {
		return models.Layer{}, fmt.Errorf("%w: create layer request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Layer{}, err
	}

	var created layerWire
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Layer{}, fmt.Errorf("decode created layer response: %w", err)
	}

	return created.toModel(), nil
}

// Ping implements [ServerAdapter].
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/health/")
	if err != nil {
		return fmt.Errorf("%w: ping request: %v", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) mutatingRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if h.csrfToken != "" {
		req.SetHeader("X-CSRFToken", h.csrfToken)
	}
	return req
}

// layerWire mirrors the server's layer serialisation, where the owning well
// reference is a numeric primary key.
type layerWire struct {
	ServerID    int64            `json:"id,omitempty"`
	LocalID     string           `json:"offline_id,omitempty"`
	Well        json.Number      `json:"well"`
	DepthFrom   float64          `json:"depth_from"`
	DepthTo     float64          `json:"depth_to"`
	Thickness   float64          `json:"thickness,omitempty"`
	Lithology   models.Lithology `json:"lithology"`
	Description string           `json:"description,omitempty"`
}

func (w layerWire) toModel() models.Layer {
	return models.Layer{
		ServerID:    w.ServerID,
		LocalID:     w.LocalID,
		WellID:      w.Well.String(),
		DepthFrom:   w.DepthFrom,
		DepthTo:     w.DepthTo,
		Thickness:   w.Thickness,
		Lithology:   w.Lithology,
		Description: w.Description,
		SyncStatus:  models.SyncSynced,
	}
}
