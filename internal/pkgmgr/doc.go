// Package pkgmgr builds and runs the package-manager commands the generator
// depends on: the version check, the Vite "create" scaffold, and installs.
// Every command goes through a runner.Executor; a non-zero exit becomes a
// project.ErrExternalProcess error carrying the captured output.
package pkgmgr
