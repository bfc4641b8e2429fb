// Package cli defines the Cobra command tree. The root command runs the
// project generator; version, config and doctor are small helpers around it.
// Commands only handle flags, I/O and error reporting and delegate the work
// to the pipeline and its collaborators.
package cli
