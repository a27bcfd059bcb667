// Package tui implements the terminal user interface for the slideshow
// configuration builder.
//
// This package provides an interactive, full-screen TUI for assembling a
// slideshow configuration document, previewing it live, and dispatching
// generation to a backend. Built using the Bubble Tea framework, it
// follows the Elm architecture with immutable state updates and a clean
// Model-Update-View pattern.
//
// # Architecture
//
// The TUI is organized into five screens coordinated by AppModel:
//   - Form: tabbed editor with the live document preview pane
//   - Browser: remote folder picker backed by the backend's filesystem
//   - Generating: progress view while the backend renders
//   - Success/Failure: operation results, with an offline fallback on
//     the failure screen when the backend is unreachable
//
// All screens use a unified container pattern (RenderApplicationContainer)
// for consistent layout with header, content area and a context-sensitive
// footer.
//
// # Data Flow
//
// Every edit flows through the same pipeline: the form state is read
// into a config, serialized to the document, validated, and rendered
// into the preview with the focused field's lines highlighted. The
// refresh is debounced so fast typing stays responsive.
//
// # Framework Components
//
//   - bubbles/textinput: text entry fields
//   - bubbles/viewport: scrolling document preview
//   - bubbles/spinner: loading and progress indicators
//   - bubbles/help + key: context-aware key binding help
//   - lipgloss: styling and layout
package tui
