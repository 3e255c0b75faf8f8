package teaform

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/teaform/teaform/files"
	"github.com/teaform/teaform/store"
)

// ViewFn renders the form body for one frame. The binder argument is
// only valid during the call; callbacks built from it remain valid.
type ViewFn[T any] func(b *Binder[T]) string

// Props configure a Form. View is required; every other field has a
// usable zero value.
type Props[T any] struct {
	// Handle is the leased view of the state cell. Defaults to a fresh
	// handle on the process-wide cell for T. The form owns the handle
	// and detaches it on Unmount.
	Handle *store.Handle[T]

	// View renders the form body. Required.
	View ViewFn[T]

	// OnSubmit receives a snapshot of the state on each submission.
	OnSubmit Callback[T]

	// OnError receives asynchronous file-read failures. When unset
	// they are logged instead.
	OnError Callback[error]

	// Default, when non-nil, is applied to the store on mount and
	// whenever a property update changes it. Reset returns the store
	// to it.
	Default *T

	// AutoReset clears the form after each submission.
	AutoReset bool

	// Reader loads selected files. Defaults to a local-disk reader.
	Reader files.Reader

	// Equal compares two defaults to decide whether a property update
	// changed the default. Defaults to reflect.DeepEqual.
	Equal func(a, b T) bool

	// Logger reports failures that have nowhere else to go. Defaults
	// to slog.Default().
	Logger *slog.Logger
}

// Form binds a state cell to form controls rendered by a view
// function. It follows the usual child-model shape: embed it in a
// parent model, forward every message to Update, and splice View's
// output into the parent's frame.
//
// The zero Form is not usable; construct with New and connect with
// Wire once the program is running.
type Form[T any] struct {
	props Props[T]
	node  *node
	reset func()
	tasks []*files.Task
	unsub func()
}

// Messages a Form consumes. They originate from the callbacks a Binder
// builds and reach Update through the parent's forwarding.
type (
	submitMsg struct{}
	resetMsg  struct{}
	redrawMsg struct{}

	filesMsg struct {
		files []files.File
		mk    func() func(files.Data)
	}
	fileDoneMsg struct {
		deliver func(files.Data)
		data    files.Data
	}
	fileErrMsg struct {
		err error
	}
)

// New builds a Form from p. When a default is configured it is applied
// to the store immediately, so a freshly mounted form renders its
// default before any event fires.
func New[T any](p Props[T]) Form[T] {
	if p.View == nil {
		panic("teaform: Props.View is required")
	}

	f := Form[T]{props: normalize(p), node: &node{}}
	f.reset = resetFn(f.props.Handle, f.props.Default)
	if f.props.Default != nil {
		f.reset()
	}
	return f
}

func normalize[T any](p Props[T]) Props[T] {
	if p.Handle == nil {
		p.Handle = store.Global[T]().Handle()
	}
	if p.Reader == nil {
		p.Reader = files.NewLocalReader()
	}
	if p.Equal == nil {
		p.Equal = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	return p
}

// resetFn captures the effective default at build time, so the reset
// behavior always matches the default that was current when the
// closure was made.
func resetFn[T any](h *store.Handle[T], def *T) func() {
	if def == nil {
		return func() {}
	}
	d := *def
	return func() {
		h.Reduce(func(t *T) { *t = d })
	}
}

// Wire attaches the form to a running program's send function,
// typically Program.Send, and subscribes to the state cell so
// reductions wake the program for a re-render. Callbacks built before
// wiring become live retroactively; they dispatch through the shared
// node.
func (f Form[T]) Wire(send func(tea.Msg)) Form[T] {
	f.node.attach(send)
	if f.unsub == nil {
		n := f.node
		f.unsub = f.props.Handle.Store().Subscribe(func() {
			n.dispatch(redrawMsg{})
		})
	}
	return f
}

// Init implements the usual component lifecycle. The form schedules no
// initial work.
func (f Form[T]) Init() tea.Cmd {
	return nil
}

// Update consumes the form's own messages and ignores everything else,
// so parents can forward their whole message stream.
func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	switch msg := msg.(type) {
	case submitMsg:
		state := f.props.Handle.Snapshot()
		f.props.OnSubmit.Emit(state)
		if f.props.AutoReset {
			// Controls clear via the broadcast; the store reset is
			// applied directly so it happens even if the broadcast
			// finds the node detached.
			f.node.dispatch(ResetMsg{})
			f.reset()
		}

	case resetMsg:
		f.node.dispatch(ResetMsg{})
		f.reset()

	case filesMsg:
		f.pruneTasks()
		for _, file := range msg.files {
			f.schedule(file, msg.mk())
		}

	case fileDoneMsg:
		msg.deliver(msg.data)

	case fileErrMsg:
		f.fail(msg.err)
	}
	return f, nil
}

// View renders the body with a freshly built binder.
func (f Form[T]) View() string {
	return f.props.View(f.Binder())
}

// Binder returns a fresh binder over the form's handle and node.
// View calls this itself; it is exported for parents that route
// events outside the view function.
func (f Form[T]) Binder() *Binder[T] {
	return &Binder[T]{handle: f.props.Handle, node: f.node}
}

// Handle returns the leased state handle.
func (f Form[T]) Handle() *store.Handle[T] {
	return f.props.Handle
}

// SetProps replaces the form's properties. Fields left nil (Handle,
// View, Reader, Equal, Logger) keep their current values; the rest are
// replaced wholesale. When the default changes under the configured
// equality, the reset behavior is rebuilt and a non-nil new default is
// applied to the store; re-supplying an equal default does nothing.
func (f Form[T]) SetProps(p Props[T]) Form[T] {
	prev := f.props

	if p.Handle == nil {
		p.Handle = prev.Handle
	}
	if p.View == nil {
		p.View = prev.View
	}
	if p.Reader == nil {
		p.Reader = prev.Reader
	}
	if p.Equal == nil {
		p.Equal = prev.Equal
	}
	if p.Logger == nil {
		p.Logger = prev.Logger
	}
	f.props = p

	if p.Handle != prev.Handle && f.unsub != nil {
		f.unsub()
		n := f.node
		f.unsub = p.Handle.Store().Subscribe(func() {
			n.dispatch(redrawMsg{})
		})
	}

	defaultChanged := !sameDefault(p.Equal, prev.Default, p.Default)
	if defaultChanged || p.Handle != prev.Handle {
		f.reset = resetFn(p.Handle, p.Default)
	}
	if defaultChanged && p.Default != nil {
		f.reset()
	}
	return f
}

func sameDefault[T any](eq func(a, b T) bool, a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return eq(*a, *b)
}

// Unmount cancels in-flight reads, drops the cell subscription, and
// detaches both the node and the handle. Callbacks that survive the
// form become no-ops.
func (f Form[T]) Unmount() Form[T] {
	for _, t := range f.tasks {
		t.Cancel()
	}
	f.tasks = nil
	if f.unsub != nil {
		f.unsub()
		f.unsub = nil
	}
	f.node.detach()
	f.props.Handle.Detach()
	return f
}

// schedule starts one read and records its task. The completion is
// forwarded as a message so the reduction happens on the program's
// event loop; once the node is detached the completion is dropped,
// matching the task cancellation done in Unmount.
func (f *Form[T]) schedule(file files.File, deliver func(files.Data)) {
	n := f.node
	task := f.props.Reader.Read(file, func(d files.Data, err error) {
		if err != nil {
			n.dispatch(fileErrMsg{err: err})
			return
		}
		n.dispatch(fileDoneMsg{deliver: deliver, data: d})
	})
	if task == nil {
		f.fail(fmt.Errorf("schedule read of %s: reader returned no task", file.Name))
		return
	}
	f.tasks = append(f.tasks, task)
}

func (f *Form[T]) pruneTasks() {
	f.tasks = slices.DeleteFunc(f.tasks, func(t *files.Task) bool {
		return !t.Active()
	})
}

func (f *Form[T]) fail(err error) {
	if f.props.OnError.IsSet() {
		f.props.OnError.Emit(err)
		return
	}
	f.props.Logger.Error("form file read failed", "error", err)
}
