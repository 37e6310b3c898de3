// Package host drives pure frame renderers at a display's refresh cadence.
//
// A [Loop] calls a [Stepper] once per refresh. Steppers throttle themselves, so most
// calls produce nothing; when one does return a frame, the loop commits it to the
// attached [Surface]. A loop without a surface keeps stepping and drops the output.
//
// [Visibility] turns a visible-ratio signal into a one-shot start trigger.
package host
