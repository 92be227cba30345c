// Package ui contains the Bubble Tea program that renders the catalog table.
// The Model type focuses on message orchestration, while dedicated helpers own
// navigation, search input, the category picker, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (for example, key presses or loader events).
//   - Key presses go to the open category picker first, then to the focused
//     search input, and otherwise to the table bindings in navigation.go.
//
// State ownership:
//   - The user's selections live in internal/ui/state.View, an immutable value
//     replaced by each transition. The visible rows are always recomputed from
//     the stored records with state.Derive and never cached.
//   - Fetched records live in an internal/state.RecordStore, kept in sync by
//     the dispatcher.
//
// Backend interactions:
//   - A backend.Loader performs the one-shot fetch; waitForBackendEvent starts
//     it and relays each event to applyBackendEvent, which stores the records
//     and recomputes the aggregates, or records the failure for display.
package ui
