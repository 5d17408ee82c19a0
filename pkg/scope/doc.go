// Package scope implements the context register shared by the HTML and CSS
// engines. A register holds a stack of frames; components read the top frame
// through an Accessor while template evaluation seals the register so raw
// interpolation cannot reach ambient context.
//
// Every operation that changes the register returns a restore function. Callers
// defer it so the prior state comes back on every exit path, panics included.
package scope
