// Package ar is the boundary between the placement logic and whatever AR host
// supplies plane tracking, hit testing and the camera. The gesture controllers
// only ever talk to the interfaces declared here; ar/sim provides a simulated
// room for the desktop app, the scenario runner and tests.
package ar
