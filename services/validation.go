package services

// Validation error types and locations reported in 422 bodies
const (
	ErrorTypeIntParsing = "int_parsing"
	LocationPath        = "path"

	intParsingMessage = "Input should be a valid integer, unable to parse string as an integer"
)

// ValidationError is the 422 body: {"detail": [ ... ]}.
type ValidationError struct {
	Detail []ValidationDetail `json:"detail"`
}

// ValidationDetail describes one rejected input.
type ValidationDetail struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input string   `json:"input"`
}

// IntParsingError reports a value that could not be coerced to an integer.
func IntParsingError(location, field, input string) ValidationError {
	return ValidationError{
		Detail: []ValidationDetail{{
			Type:  ErrorTypeIntParsing,
			Loc:   []string{location, field},
			Msg:   intParsingMessage,
			Input: input,
		}},
	}
}

// ErrorDetail is the body of framework-level errors: {"detail": "Not Found"}.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// Detail wraps a reason phrase in an ErrorDetail.
func Detail(reason string) ErrorDetail {
	return ErrorDetail{Detail: reason}
}
