package services

const (
	MsgAllFieldsRequired  = "All fields are required"
	MsgUsernameAlphanum   = "Username can only include letters and numbers"
	MsgPasswordTooShort   = "Password must be at least 4 characters long"
	MsgUsernameInUse      = "Username already in use"
	MsgInvalidCredentials = "Invalid username or password"
	MsgInvalidID          = "Invalid ID"
	MsgNoDataFound        = "No data found"
	MsgFillAllFields      = "Please fill in all of the fields"
	MsgInvalidURLSuffix   = ", provided URL is invalid"
	MsgOwnerRequired      = "User is required"
)

// Meal field names as reported in ValidationError.InvalidFields.
const (
	FieldTitle    = "Title"
	FieldCalories = "Calories"
	FieldPicture  = "Picture"
)

// ValidationError reports rejected input. InvalidFields is set for meal
// validation and lists every failing field.
type ValidationError struct {
	Message       string
	InvalidFields []string
}

func (e *ValidationError) Error() string { return e.Message }

// HasField reports whether the validation error lists field.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.InvalidFields {
		if f == field {
			return true
		}
	}
	return false
}

func newFieldsError(fields []string) *ValidationError {
	e := &ValidationError{Message: MsgFillAllFields, InvalidFields: fields}
	if e.HasField(FieldPicture) {
		e.Message += MsgInvalidURLSuffix
	}
	return e
}

// ConflictError reports a uniqueness violation.
type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

// AuthError reports failed credential checks.
type AuthError struct{ Message string }

func (e *AuthError) Error() string { return e.Message }

// NotFoundError reports a malformed id or a missing record.
type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }
