// Package strategy lists the routing strategies a generated project can be
// wired with. A strategy fixes the feature packages to install and selects
// the template set the scaffold package writes.
package strategy
