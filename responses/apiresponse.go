package responses

// APIError interface for custom API errors
type APIError interface {
	Error() string
	StatusCode() int
}

// BadRequestError covers validation failures: out-of-range cell indexes,
// disallowed deck sizes, malformed request bodies.
type BadRequestError struct {
	Msg string
}

func (e BadRequestError) Error() string {
	return e.Msg
}

func (BadRequestError) StatusCode() int {
	return 400
}

// UnauthorizedError covers every authentication failure: a missing, invalid
// or expired session cookie, a failed Telegram signature check, and a deck
// payload that no longer decrypts.
type UnauthorizedError struct {
	Msg string
}

func (e UnauthorizedError) Error() string {
	return e.Msg
}

func (UnauthorizedError) StatusCode() int {
	return 401
}

type NotFoundError struct {
	Msg string
}

func (e NotFoundError) Error() string {
	return e.Msg
}

func (NotFoundError) StatusCode() int {
	return 404
}

type InternalServerError struct {
	Msg string
}

func (e InternalServerError) Error() string {
	return e.Msg
}

func (InternalServerError) StatusCode() int {
	return 500
}
