// Package manifest checks the package.json of a generated project. It
// validates the file against an embedded JSON Schema describing what a Vite
// React scaffold produces, and reports dependencies the chosen routing
// strategy expects but the manifest does not declare.
package manifest
