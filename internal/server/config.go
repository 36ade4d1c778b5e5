package server

import (
	"github.com/raysh454/linkscope/internal/app"
	"github.com/raysh454/linkscope/internal/logging"
)

type Config struct {
	// ListenAddr is the HTTP listen address for the API server (the CLI
	// uses the orchestrator in-process and does not require the network).
	ListenAddr string

	// AppConfig configures the wired orchestrator; nil means defaults.
	AppConfig *app.Config

	// Logger is optional; a JSON stdout logger is used when nil.
	Logger logging.Logger
}
