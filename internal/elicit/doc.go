// Package elicit collects generation answers from an operator. Questions run
// in a fixed order and are grouped by the minimum level of detail that
// unlocks them; the four levels (batch, default, advanced, full) form a
// cumulative hierarchy. Prompts read and write plain text on an injected
// reader/writer pair so tests can script whole sessions.
package elicit
