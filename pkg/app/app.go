// Package app defines the runtime contract shared by the marketplace
// executables. cmd/api-server starts an api.Server through it; the migrate
// and marketctl commands run to completion and do not need it.
package app

// Runner is a long-lived component that blocks in Run until it is told to
// stop (usually by SIGINT or SIGTERM) or fails.
type Runner interface {
	Run() error
}
