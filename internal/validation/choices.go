package validation

func ValidateCreateChoice(input Record) Result {
	var errors []string

	if isMissing(input, "room_id") {
		errors = append(errors, "Room ID is required")
	}

	// The length rule cannot fail once the label is a non-empty string.
	if label, ok := stringField(input, "label"); isMissing(input, "label") || !ok {
		errors = append(errors, "Label is required")
	} else if !satisfies(label, "min=1") {
		errors = append(errors, "Label must have at least 1 character")
	}

	return result(input, errors)
}

func ValidateUpdateChoice(input Record) Result {
	var errors []string

	if present(input, "label") {
		if label, ok := stringField(input, "label"); !ok {
			errors = append(errors, "Label must be a string")
		} else if !satisfies(label, "min=1") {
			errors = append(errors, "Label must have at least 1 character")
		}
	}

	if present(input, "hits") {
		if hits, ok := numberField(input, "hits"); !ok || !satisfies(hits, "gte=0") {
			errors = append(errors, "Hits must be a non-negative number")
		}
	}

	return result(input, errors)
}
