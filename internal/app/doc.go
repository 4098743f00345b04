// Package app is the composition root. It builds the logger, loads and
// validates the parameter catalog, wires the translation engine into the
// HTTP and socket.io transports, and owns the server lifecycle. It is
// decoupled from any specific entrypoint like a CLI.
package app
