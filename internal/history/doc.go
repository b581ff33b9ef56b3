// Package history records the lines typed into the challenge browser.
//
// Entries are kept in a SQLite database in WAL mode. Each browser run gets a
// session UUID so that lines from one run can be told apart. The shell only
// depends on the Recorder and Lister interfaces, so the store is optional.
package history
