// Package tui is the tabbed form interface: one form per energy formula,
// gravity presets, and a blocking dialog for rejected input.
//
// Keys: tab/shift+tab switch forms, j/k move between fields, enter edits,
// c calculates, e/m/r load the Earth/Moon/Mars gravity, q quits.
//
// The dialog shows "Please enter valid numbers ..." only for text that does
// not parse. A negative value shows the energy package message instead
// ("Height cannot be negative"), naming the field to fix.
package tui
