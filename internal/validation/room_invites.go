package validation

func ValidateCreateRoomInvite(input Record) Result {
	var errors []string

	if isMissing(input, "room_id") {
		errors = append(errors, "Room ID is required")
	}

	if _, ok := stringField(input, "code"); isMissing(input, "code") || !ok {
		errors = append(errors, "Code is required")
	}

	errors = checkMaxUses(input, errors)

	return result(input, errors)
}

func ValidateUpdateRoomInvite(input Record) Result {
	var errors []string

	errors = checkMaxUses(input, errors)

	if present(input, "uses") {
		if uses, ok := numberField(input, "uses"); !ok || !satisfies(uses, "gte=0") {
			errors = append(errors, "Uses must be a non-negative number")
		}
	}

	return result(input, errors)
}

func checkMaxUses(input Record, errors []string) []string {
	if !present(input, "max_uses") {
		return errors
	}

	if maxUses, ok := numberField(input, "max_uses"); !ok || !satisfies(maxUses, "gt=0") {
		errors = append(errors, "Max uses must be a positive number")
	}
	return errors
}
