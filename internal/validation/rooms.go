package validation

const messageRoomStatus = "Status must be one of: lobby, playing, finished"

func ValidateCreateRoom(input Record) Result {
	var errors []string

	if code, ok := stringField(input, "code"); isMissing(input, "code") || !ok {
		errors = append(errors, "Code is required")
	} else if !satisfies(code, "min=3") {
		errors = append(errors, "Code must have at least 3 characters")
	}

	errors = checkRoomStatus(input, errors)

	return result(input, errors)
}

func ValidateUpdateRoom(input Record) Result {
	var errors []string

	if present(input, "code") {
		if code, ok := stringField(input, "code"); !ok {
			errors = append(errors, "Code must be a string")
		} else if !satisfies(code, "min=3") {
			errors = append(errors, "Code must have at least 3 characters")
		}
	}

	errors = checkRoomStatus(input, errors)

	return result(input, errors)
}

// checkRoomStatus rejects any status outside the enum, null included.
func checkRoomStatus(input Record, errors []string) []string {
	if !present(input, "status") {
		return errors
	}

	status, ok := stringField(input, "status")
	if !ok || !satisfies(status, "oneof=lobby playing finished") {
		errors = append(errors, messageRoomStatus)
	}
	return errors
}
