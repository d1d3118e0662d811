// Package gui is the desktop window: a raylib screen over form.Session with
// the same pages, keys, presets and error dialog as the terminal interface.
package gui
