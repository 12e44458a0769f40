package core

// Logger receives progress and diagnostic output from the renderer
type Logger interface {
	Printf(format string, args ...interface{})
}
