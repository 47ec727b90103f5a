package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"pressboard/contexts/editorial/client-service/application"
	"pressboard/contexts/editorial/client-service/ports"
	httptransport "pressboard/contexts/editorial/client-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateClientHandler(ctx context.Context, req httptransport.CreateClientRequest) (httptransport.ClientResponse, error) {
	client, err := h.Service.CreateClient(ctx, application.CreateClientInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		AvatarURL:        req.AvatarURL,
		Company:          req.Company,
		Position:         req.Position,
		Phone:            req.Phone,
		Email:            req.Email,
		TelegramUsername: req.TelegramUsername,
		LawyerName:       req.LawyerName,
		LawyerContact:    req.LawyerContact,
	})
	if err != nil {
		return httptransport.ClientResponse{}, err
	}
	return httptransport.ClientResponse{Client: mapClient(client)}, nil
}

func (h Handler) UpdateClientHandler(ctx context.Context, clientID string, req httptransport.UpdateClientRequest) (httptransport.ClientResponse, error) {
	client, err := h.Service.UpdateClient(ctx, clientID, ports.ClientUpdate{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		AvatarURL:        req.AvatarURL,
		Company:          req.Company,
		Position:         req.Position,
		Phone:            req.Phone,
		Email:            req.Email,
		TelegramUsername: req.TelegramUsername,
		LawyerName:       req.LawyerName,
		LawyerContact:    req.LawyerContact,
	})
	if err != nil {
		return httptransport.ClientResponse{}, err
	}
	return httptransport.ClientResponse{Client: mapClient(client)}, nil
}

func (h Handler) GetClientHandler(ctx context.Context, clientID string) (httptransport.ClientResponse, error) {
	client, err := h.Service.GetClient(ctx, clientID)
	if err != nil {
		return httptransport.ClientResponse{}, err
	}
	return httptransport.ClientResponse{Client: mapClient(client)}, nil
}

func (h Handler) ListClientsHandler(ctx context.Context, search string) (httptransport.ListClientsResponse, error) {
	items, err := h.Service.ListClients(ctx, search)
	if err != nil {
		return httptransport.ListClientsResponse{}, err
	}
	resp := httptransport.ListClientsResponse{Clients: make([]httptransport.ClientDTO, 0, len(items))}
	for _, item := range items {
		resp.Clients = append(resp.Clients, mapClient(item))
	}
	return resp, nil
}

func (h Handler) DeleteClientHandler(ctx context.Context, clientID string) (httptransport.DeleteClientResponse, error) {
	if err := h.Service.DeleteClient(ctx, clientID); err != nil {
		return httptransport.DeleteClientResponse{}, err
	}
	return httptransport.DeleteClientResponse{OK: true}, nil
}

func mapClient(client ports.Client) httptransport.ClientDTO {
	return httptransport.ClientDTO{
		ClientID:         client.ClientID,
		FirstName:        client.FirstName,
		LastName:         client.LastName,
		AvatarURL:        client.AvatarURL,
		Company:          client.Company,
		Position:         client.Position,
		Phone:            client.Phone,
		Email:            client.Email,
		TelegramUsername: client.TelegramUsername,
		LawyerName:       client.LawyerName,
		LawyerContact:    client.LawyerContact,
		CreatedAt:        client.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        client.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
