// Package compose turns a frozen generator configuration into the lines of a
// Bash script skeleton. It runs a fixed, ordered pipeline of fragment
// generators; each one reads the configuration and conditionally appends text
// to the main writer or, for shared helpers, to the utility writer. The order
// is a documented contract because fragments reference identifiers emitted by
// earlier fragments.
package compose
