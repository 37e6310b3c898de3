// Package viz renders the portfolio as a scrollable full-screen terminal page using
// the Bubble Tea framework.
//
// The page stacks four sections:
//
//   - hero: name, title, bio and links beside the ASCII animation
//   - logo: the rotating logo, started the first time it scrolls into view
//   - projects: GitHub repositories with language filter and pagination
//   - footer
//
// Bubble Tea drives the frame loop with [FrameMsg] at the configured refresh rate;
// the scene scheduler and the logo engine throttle themselves.
//
// # Key Bindings
//
//	j/k, ↑/↓     - Scroll
//	PgUp/PgDn    - Scroll half a screen
//	h/l, ←/→     - Previous/next language
//	[ ]          - Previous/next page
//	t            - Cycle color themes
//	q            - Quit
package viz
