package usecase

// Code identifies a class of authentication failure. Codes are stable API
// values; Message translates them for display.
type Code string

const (
	CodeInvalidEmail      Code = "invalid-email"
	CodeUserDisabled      Code = "user-disabled"
	CodeUserNotFound      Code = "user-not-found"
	CodeWrongPassword     Code = "wrong-password"
	CodeEmailAlreadyInUse Code = "email-already-in-use"
	CodeWeakPassword      Code = "weak-password"
	CodeNetworkFailure    Code = "network-failure"
	CodeOther             Code = "other"
)

// AuthError is a classified authentication failure.
type AuthError struct {
	Code Code
	Err  error // underlying cause, may be nil
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Err.Error()
	}
	return string(e.Code)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing sentence for the error's code.
func (e *AuthError) Message() string {
	switch e.Code {
	case CodeInvalidEmail:
		return "Invalid email address"
	case CodeUserDisabled:
		return "This account has been disabled"
	case CodeUserNotFound:
		return "No account found with this email"
	case CodeWrongPassword:
		return "Incorrect password"
	case CodeEmailAlreadyInUse:
		return "An account with this email already exists"
	case CodeWeakPassword:
		return "Password should be at least 6 characters"
	case CodeNetworkFailure:
		return "Network error. Please check your connection"
	default:
		return "Authentication error. Please try again"
	}
}

func authErr(code Code) *AuthError {
	return &AuthError{Code: code}
}

func storeErr(err error) *AuthError {
	return &AuthError{Code: CodeNetworkFailure, Err: err}
}
