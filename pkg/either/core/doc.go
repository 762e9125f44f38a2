// Package core holds the ambient configuration shared by the either
// packages: the logr.Logger used for diagnostics, settable globally or
// carried by a context.
package core
