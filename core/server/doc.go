// Package server holds the configuration of the optional HTTP surface exposed by
// the serve command (listen port and API key).
package server
