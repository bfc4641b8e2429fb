// Package scaffold writes the routing boilerplate into a freshly created
// Vite project. Each routing strategy has an embedded template set of three
// files (App, router, Home) that are copied verbatim into src/, replacing
// whatever the Vite template put there.
package scaffold
