// Package notice defines the short user-visible messages returned to the UI layer
// alongside every operation result.
package notice

// Level は通知の種類を表します。
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelFail    Level = "fail"
)

// Notice is a user-facing message. It never carries internal error text.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

func Success(msg string) Notice { return Notice{Level: LevelSuccess, Message: msg} }

func Info(msg string) Notice { return Notice{Level: LevelInfo, Message: msg} }

func Fail(msg string) Notice { return Notice{Level: LevelFail, Message: msg} }

// Response is the JSON envelope used by handlers that only report an outcome.
type Response struct {
	Success bool   `json:"success"`
	Notice  Notice `json:"notice"`
}

// OK builds a successful Response carrying n.
func OK(n Notice) Response { return Response{Success: true, Notice: n} }

// Failed builds a failed Response carrying n.
func Failed(n Notice) Response { return Response{Success: false, Notice: n} }
