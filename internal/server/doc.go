// Package server implements the generation backend: the HTTP API the
// builder talks to for filesystem browsing, document validation and
// slideshow rendering.
//
// The server runs on the machine that holds the media files and the
// renderer. Browse requests are answered from its local filesystem,
// generation requests write the posted document next to the output and
// invoke the renderer as an external process, relaying its progress
// lines over a WebSocket stream.
package server
