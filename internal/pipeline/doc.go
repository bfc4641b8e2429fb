// Package pipeline runs project generation end to end: collect the RunConfig,
// scaffold with the package manager, resolve the new project root, install
// dependencies, and write the routing templates. Steps run strictly in order
// and the first failure aborts the run; nothing already created is rolled back.
//
// The project root is carried as an explicit path. The process working
// directory is never changed.
package pipeline
