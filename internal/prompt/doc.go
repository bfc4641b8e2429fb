// Package prompt collects the RunConfig from an interactive terminal. It asks
// for the project name and whether to use TypeScript, applying the documented
// defaults when an answer is left empty.
package prompt
