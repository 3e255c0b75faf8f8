// Package teaform binds user-defined form state to terminal UI
// controls built on Bubble Tea.
//
// # Overview
//
// A form's state is an ordinary struct owned by a shared state cell
// (package store). The [Form] controller leases a handle on that cell
// and hands the view function a per-frame [Binder] that manufactures
// event callbacks: each callback applies one reduction to the cell,
// which notifies subscribers and wakes the program for a re-render.
// The controller also owns the submission lifecycle (snapshot, emit,
// optional auto-reset), default-value management, and asynchronous
// file reads (package files).
//
// # The Binding Model
//
//	┌──────────┐   callbacks    ┌────────┐   reductions   ┌───────┐
//	│ controls │───────────────→│ Binder │───────────────→│ store │
//	└──────────┘                └────────┘                └───┬───┘
//	      ↑                                                   │
//	      │            re-render (redraw message)             │
//	      └───────────────────────────────────────────────────┘
//
// Views never mutate state directly. They read it through
// [Binder.State] and wire controls to callbacks built with
// [Binder.SetText], [Binder.SetSelect], [Binder.SetFile],
// [Binder.Set], or the generic [Bind] and [BindWith]. Because every
// callback captures the stable handle rather than the binder, widgets
// may keep callbacks across frames.
//
// # Message Flow
//
// The form is a child model. The parent embeds it, forwards every
// message to [Form.Update], and splices [Form.View] into its frame.
// Callbacks do not mutate the form; they dispatch messages through the
// program's send function, so all form behavior runs on the event
// loop. Wiring happens once the program exists:
//
//	p := tea.NewProgram(parent)
//	// inside parent.Update, on the first message carrying p.Send:
//	m.form = m.form.Wire(send)
//
// Until Wire is called the form's callbacks are silent no-ops, which
// makes rendering before wiring safe.
//
// [ResetMsg] is the one public broadcast: it announces that the form
// reset (explicitly or after an auto-reset submit) so parents can
// clear text buffers and cursors.
//
// # Defaults and Reset
//
// A non-nil Props.Default is applied to the store on mount, and again
// whenever [Form.SetProps] receives a default that differs from the
// previous one under Props.Equal. Reset, whether from
// [Binder.Reset] or auto-reset, returns the store to the default that
// was in effect when it was configured. Submission snapshots the state
// before any reset, so OnSubmit always observes the pre-reset value.
//
// # File Reads
//
// [Binder.SetFile] accepts the change event of a file picker and
// schedules one asynchronous read per selected file through the form's
// [files.Reader]. Completions come back as messages and reduce the
// store in completion order. Unmounting cancels outstanding reads.
//
// # Usage
//
//	type Signup struct {
//		Name  string
//		Email string
//	}
//
//	form := teaform.New(teaform.Props[Signup]{
//		Default:   &Signup{},
//		AutoReset: true,
//		OnSubmit: teaform.NewCallback(func(s Signup) {
//			log.Printf("signed up: %s <%s>", s.Name, s.Email)
//		}),
//		View: func(b *teaform.Binder[Signup]) string {
//			return "Name: " + b.State().Name
//		},
//	})
package teaform
