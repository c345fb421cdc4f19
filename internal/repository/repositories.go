package repository

// Repositories groups one repository per table, all sharing the pool.
type Repositories struct {
	Users            *UserRepository
	Rooms            *RoomRepository
	RoomParticipants *RoomParticipantRepository
	RoomInvites      *RoomInviteRepository
	Choices          *ChoiceRepository
}

// NewRepositories builds every repository on db, normally the server's
// pgxpool.Pool.
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		Users:            NewUserRepository(db),
		Rooms:            NewRoomRepository(db),
		RoomParticipants: NewRoomParticipantRepository(db),
		RoomInvites:      NewRoomInviteRepository(db),
		Choices:          NewChoiceRepository(db),
	}
}
