// Package game drives a chamber as a playable game.
//
// A Session wraps one chamber.Chamber with the rules a player sees: intents
// are queued with Submit and applied by the InputSystem, gravity soft-drops
// the falling piece every drop delay, and pieces that can fall no further are
// locked at the end of the frame through Commands. A Scheduler runs the
// registered systems in order each frame, either once per call to Once or on
// a ticker with Run.
package game
