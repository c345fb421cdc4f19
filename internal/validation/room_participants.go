package validation

// ValidateCreateRoomParticipant only checks that both ids are set.
// Participants have no update.
func ValidateCreateRoomParticipant(input Record) Result {
	var errors []string

	if isMissing(input, "room_id") {
		errors = append(errors, "Room ID is required")
	}
	if isMissing(input, "user_id") {
		errors = append(errors, "User ID is required")
	}

	return result(input, errors)
}
