// Package application wires settings storage, metrics, the HTTP handlers and
// the server together so the main package only parses flags and waits for
// shutdown.
package application
