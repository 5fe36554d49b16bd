// Package logging builds the structured logger used during hook runs.
//
// Hook commands must never write to stdout or stderr, so records only go to
// an optional log file. With no file configured every record is discarded.
package logging
