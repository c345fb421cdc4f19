package service

import (
	"github.com/choice-battle/backend/internal/repository"
)

type Services struct {
	Users            *UserService
	Rooms            *RoomService
	RoomParticipants *RoomParticipantService
	RoomInvites      *RoomInviteService
	Choices          *ChoiceService
}

// Stores is the set of repositories the services run on. The server
// passes the pgx repositories; tests pass in-memory ones.
type Stores struct {
	Users            UserRepository
	Rooms            RoomRepository
	RoomParticipants RoomParticipantRepository
	RoomInvites      RoomInviteRepository
	Choices          ChoiceRepository
}

// StoresFrom exposes the database repositories as Stores.
func StoresFrom(repos *repository.Repositories) Stores {
	return Stores{
		Users:            repos.Users,
		Rooms:            repos.Rooms,
		RoomParticipants: repos.RoomParticipants,
		RoomInvites:      repos.RoomInvites,
		Choices:          repos.Choices,
	}
}

func NewServices(stores Stores) *Services {
	return &Services{
		Users:            NewUserService(stores.Users),
		Rooms:            NewRoomService(stores.Rooms),
		RoomParticipants: NewRoomParticipantService(stores.RoomParticipants),
		RoomInvites:      NewRoomInviteService(stores.RoomInvites),
		Choices:          NewChoiceService(stores.Choices),
	}
}
