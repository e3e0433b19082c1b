// Package iocli abstracts terminal input/output so command runners can be
// tested against a recorded console.
package iocli

//go:generate moq -out io_mock.go . IO

// IO is the console contract used by the command runners. ReadSecret
// suppresses echo, for pasting OAuth codes and secrets.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
}
