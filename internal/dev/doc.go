// Package dev implements the sitewinder development server: static
// file serving with hot-reload script injection, a websocket reload
// channel, a polling file watcher, optional Prometheus metrics, and
// snapshot endpoints that retain app state across reloads.
package dev
