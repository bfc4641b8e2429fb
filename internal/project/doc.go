// Package project holds the values shared by every pipeline step: the
// RunConfig collected from the user, the file layout derived from it, and the
// error kinds that abort a run.
package project
