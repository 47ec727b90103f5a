package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"pressboard/contexts/editorial/outlet-service/application"
	"pressboard/contexts/editorial/outlet-service/ports"
	httptransport "pressboard/contexts/editorial/outlet-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateOutletHandler(ctx context.Context, req httptransport.CreateOutletRequest) (httptransport.OutletResponse, error) {
	outlet, err := h.Service.CreateOutlet(ctx, application.CreateOutletInput{
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		Description: req.Description,
		Category:    req.Category,
		Language:    req.Language,
		WebsiteURL:  req.WebsiteURL,
		Contacts:    req.Contacts,
		Notes:       req.Notes,
	})
	if err != nil {
		return httptransport.OutletResponse{}, err
	}
	return httptransport.OutletResponse{Outlet: mapOutlet(outlet)}, nil
}

func (h Handler) UpdateOutletHandler(ctx context.Context, outletID string, req httptransport.UpdateOutletRequest) (httptransport.OutletResponse, error) {
	outlet, err := h.Service.UpdateOutlet(ctx, outletID, ports.OutletUpdate{
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		Description: req.Description,
		Category:    req.Category,
		Language:    req.Language,
		WebsiteURL:  req.WebsiteURL,
		Contacts:    req.Contacts,
		Notes:       req.Notes,
	})
	if err != nil {
		return httptransport.OutletResponse{}, err
	}
	return httptransport.OutletResponse{Outlet: mapOutlet(outlet)}, nil
}

func (h Handler) GetOutletHandler(ctx context.Context, outletID string) (httptransport.OutletResponse, error) {
	outlet, err := h.Service.GetOutlet(ctx, outletID)
	if err != nil {
		return httptransport.OutletResponse{}, err
	}
	return httptransport.OutletResponse{Outlet: mapOutlet(outlet)}, nil
}

func (h Handler) ListOutletsHandler(ctx context.Context, search, category, language string) (httptransport.ListOutletsResponse, error) {
	items, err := h.Service.ListOutlets(ctx, ports.OutletFilter{
		Search:   search,
		Category: category,
		Language: language,
	})
	if err != nil {
		return httptransport.ListOutletsResponse{}, err
	}
	resp := httptransport.ListOutletsResponse{Outlets: make([]httptransport.OutletDTO, 0, len(items))}
	for _, item := range items {
		resp.Outlets = append(resp.Outlets, mapOutlet(item))
	}
	return resp, nil
}

func (h Handler) DeleteOutletHandler(ctx context.Context, outletID string) (httptransport.DeleteOutletResponse, error) {
	if err := h.Service.DeleteOutlet(ctx, outletID); err != nil {
		return httptransport.DeleteOutletResponse{}, err
	}
	return httptransport.DeleteOutletResponse{OK: true}, nil
}

func mapOutlet(outlet ports.Outlet) httptransport.OutletDTO {
	contacts := outlet.Contacts
	if contacts == nil {
		contacts = map[string]string{}
	}
	return httptransport.OutletDTO{
		OutletID:    outlet.OutletID,
		Name:        outlet.Name,
		LogoURL:     outlet.LogoURL,
		Description: outlet.Description,
		Category:    outlet.Category,
		Language:    outlet.Language,
		WebsiteURL:  outlet.WebsiteURL,
		Contacts:    contacts,
		Notes:       outlet.Notes,
		CreatedAt:   outlet.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   outlet.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
