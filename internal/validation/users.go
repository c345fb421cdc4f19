package validation

// ValidateCreateUser requires a username of at least 2 characters.
func ValidateCreateUser(input Record) Result {
	var errors []string

	if username, ok := stringField(input, "username"); isMissing(input, "username") || !ok {
		errors = append(errors, "Username is required")
	} else if !satisfies(username, "min=2") {
		errors = append(errors, "Username must have at least 2 characters")
	}

	return result(input, errors)
}

func ValidateUpdateUser(input Record) Result {
	var errors []string

	if present(input, "username") {
		if username, ok := stringField(input, "username"); !ok {
			errors = append(errors, "Username must be a string")
		} else if !satisfies(username, "min=2") {
			errors = append(errors, "Username must have at least 2 characters")
		}
	}

	return result(input, errors)
}
