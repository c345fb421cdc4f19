package handler

import (
	"github.com/choice-battle/backend/internal/server"
	"github.com/choice-battle/backend/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health           *HealthHandler
	OpenAPI          *OpenAPIHandler
	Users            *UserHandler
	Rooms            *RoomHandler
	RoomParticipants *RoomParticipantHandler
	RoomInvites      *RoomInviteHandler
	Choices          *ChoiceHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:           NewHealthHandler(s),
		OpenAPI:          NewOpenAPIHandler(s),
		Users:            NewUserHandler(s, services.Users),
		Rooms:            NewRoomHandler(s, services.Rooms),
		RoomParticipants: NewRoomParticipantHandler(s, services.RoomParticipants),
		RoomInvites:      NewRoomInviteHandler(s, services.RoomInvites),
		Choices:          NewChoiceHandler(s, services.Choices),
	}
}
