package teaform

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teaform/teaform/files"
	"github.com/teaform/teaform/store"
)

// pump stands in for a running program: it collects dispatched
// messages and replays them through the form, the way a parent model's
// Update forwards its stream.
type pump struct {
	mu      sync.Mutex
	queue   []tea.Msg
	history []tea.Msg
}

func (p *pump) send(msg tea.Msg) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, msg)
	p.history = append(p.history, msg)
}

func (p *pump) next() (tea.Msg, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) == 0 {
		return nil, false
	}
	msg := p.queue[0]
	p.queue = p.queue[1:]
	return msg, true
}

func (p *pump) sawReset() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, msg := range p.history {
		if _, ok := msg.(ResetMsg); ok {
			return true
		}
	}
	return false
}

func drain[T any](f Form[T], p *pump) Form[T] {
	for {
		msg, ok := p.next()
		if !ok {
			return f
		}
		f, _ = f.Update(msg)
	}
}

func discardView[T any](*Binder[T]) string { return "" }

// stubReader records reads and completes them under test control, so
// completion order is scripted rather than raced.
type stubRead struct {
	file files.File
	fn   func(files.Data, error)
	task *files.Task
}

type stubReader struct {
	mu    sync.Mutex
	reads []stubRead
}

func (r *stubReader) Read(f files.File, fn func(files.Data, error)) *files.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	read := stubRead{file: f, fn: fn, task: files.NewTask()}
	r.reads = append(r.reads, read)
	return read.task
}

func (r *stubReader) read(i int) stubRead {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads[i]
}

func (r *stubReader) complete(t *testing.T, i int, d files.Data) {
	t.Helper()
	read := r.read(i)
	if !read.task.Complete(func() { read.fn(d, nil) }) {
		t.Fatalf("read %d already completed or cancelled", i)
	}
}

func (r *stubReader) fail(t *testing.T, i int, err error) {
	t.Helper()
	read := r.read(i)
	if !read.task.Complete(func() { read.fn(files.Data{}, err) }) {
		t.Fatalf("read %d already completed or cancelled", i)
	}
}

type signup struct {
	Name string
}

type counter struct {
	N int
}

func TestNewRequiresView(t *testing.T) {
	assert.PanicsWithValue(t, "teaform: Props.View is required", func() {
		New(Props[counter]{})
	})
}

func TestNewLeasesGlobalCellByDefault(t *testing.T) {
	type roomDraft struct{ Topic string }

	f := New(Props[roomDraft]{View: discardView[roomDraft]})
	f.Handle().Reduce(func(d *roomDraft) { d.Topic = "standup" })

	assert.Equal(t, "standup", store.Global[roomDraft]().Snapshot().Topic)
}

func TestBinderReductionsVisibleNextRender(t *testing.T) {
	cell := store.New[signup]()
	var p pump
	f := New(Props[signup]{
		Handle: cell.Handle(),
		View:   func(b *Binder[signup]) string { return b.State().Name },
	}).Wire(p.send)

	f.Binder().SetText(func(s *signup, v string) { s.Name = v }).Emit(InputEvent{Value: "Ada"})
	f = drain(f, &p)

	assert.Equal(t, "Ada", f.View())
}

func TestTextFieldRoundTrip(t *testing.T) {
	cell := store.New[signup]()
	var p pump
	var got []signup
	f := New(Props[signup]{
		Handle:   cell.Handle(),
		OnSubmit: NewCallback(func(s signup) { got = append(got, s) }),
		View:     discardView[signup],
	}).Wire(p.send)

	setName := f.Binder().SetText(func(s *signup, v string) { s.Name = v })
	for _, v := range []string{"Al", "Ali", "Alice"} {
		setName.Emit(InputEvent{Value: v})
	}
	f.Binder().Submit().Emit(nil)
	f = drain(f, &p)

	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].Name)
}

func TestDefaultAppliedOnMount(t *testing.T) {
	cell := store.New[counter]()
	def := counter{N: 42}

	New(Props[counter]{
		Handle:  cell.Handle(),
		Default: &def,
		View:    discardView[counter],
	})

	assert.Equal(t, counter{N: 42}, cell.Snapshot(),
		"a mounted form with a default must initialize the store before any event")
}

func TestDefaultWithoutValueLeavesStoreAlone(t *testing.T) {
	cell := store.New[counter]()
	cell.Reduce(func(c *counter) { c.N = 5 })

	New(Props[counter]{
		Handle: cell.Handle(),
		View:   discardView[counter],
	})

	assert.Equal(t, 5, cell.Snapshot().N)
}

func TestDefaultChangeResetsExactlyOnce(t *testing.T) {
	cell := store.New[counter]()
	reductions := 0
	cancel := cell.Subscribe(func() { reductions++ })
	defer cancel()

	h := cell.Handle()
	d1 := counter{N: 1}
	f := New(Props[counter]{Handle: h, Default: &d1, View: discardView[counter]})
	require.Equal(t, 1, reductions, "mounting applies the default once")
	require.Equal(t, 1, cell.Snapshot().N)

	d2 := counter{N: 2}
	f = f.SetProps(Props[counter]{Handle: h, Default: &d2, View: discardView[counter]})
	require.Equal(t, 2, reductions, "a changed default applies exactly once")
	require.Equal(t, 2, cell.Snapshot().N)

	h.Reduce(func(c *counter) { c.N = 9 })
	require.Equal(t, 3, reductions)

	same := counter{N: 2}
	f.SetProps(Props[counter]{Handle: h, Default: &same, View: discardView[counter]})
	assert.Equal(t, 3, reductions, "re-supplying an equal default must not reset")
	assert.Equal(t, 9, cell.Snapshot().N)
}

func TestDefaultRemovalRebuildsResetWithoutApplying(t *testing.T) {
	cell := store.New[counter]()
	var p pump

	h := cell.Handle()
	def := counter{N: 3}
	f := New(Props[counter]{Handle: h, Default: &def, View: discardView[counter]}).Wire(p.send)
	require.Equal(t, 3, cell.Snapshot().N)

	f = f.SetProps(Props[counter]{Handle: h, View: discardView[counter]})
	assert.Equal(t, 3, cell.Snapshot().N, "removing the default must not touch the store")

	// With no default, an explicit reset only broadcasts.
	h.Reduce(func(c *counter) { c.N = 8 })
	f.Binder().Reset().Emit(nil)
	f = drain(f, &p)
	assert.Equal(t, 8, cell.Snapshot().N)
	assert.True(t, p.sawReset())
}

func TestAutoResetSubmitOrdering(t *testing.T) {
	cell := store.New[counter]()
	var p pump
	var got []counter
	zero := counter{N: 0}
	f := New(Props[counter]{
		Handle:    cell.Handle(),
		Default:   &zero,
		AutoReset: true,
		OnSubmit:  NewCallback(func(c counter) { got = append(got, c) }),
		View:      discardView[counter],
	}).Wire(p.send)

	f.Handle().Reduce(func(c *counter) { c.N = 7 })
	f.Binder().Submit().Emit(nil)
	f = drain(f, &p)

	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].N, "submission must observe the pre-reset state")
	assert.Equal(t, 0, cell.Snapshot().N, "the store must return to the default")
	assert.True(t, p.sawReset(), "controls must be told to clear")
}

func TestSubmitWithoutAutoResetKeepsState(t *testing.T) {
	cell := store.New[counter]()
	var p pump
	var got []counter
	f := New(Props[counter]{
		Handle:   cell.Handle(),
		OnSubmit: NewCallback(func(c counter) { got = append(got, c) }),
		View:     discardView[counter],
	}).Wire(p.send)

	f.Handle().Reduce(func(c *counter) { c.N = 7 })
	f.Binder().Submit().Emit(nil)
	f = drain(f, &p)

	require.Len(t, got, 1)
	assert.Equal(t, 7, cell.Snapshot().N)
	assert.False(t, p.sawReset())
}

func TestSubmitBeforeWiringIsNoop(t *testing.T) {
	cell := store.New[counter]()
	fired := false
	f := New(Props[counter]{
		Handle:   cell.Handle(),
		OnSubmit: NewCallback(func(counter) { fired = true }),
		View:     discardView[counter],
	})

	assert.NotPanics(t, func() {
		f.Binder().Submit().Emit(nil)
	})
	assert.False(t, fired, "no submission may be observed before wiring")
}

func TestBinderResetRestoresDefaultAndBroadcasts(t *testing.T) {
	cell := store.New[counter]()
	var p pump
	def := counter{N: 3}
	f := New(Props[counter]{
		Handle:  cell.Handle(),
		Default: &def,
		View:    discardView[counter],
	}).Wire(p.send)

	f.Handle().Reduce(func(c *counter) { c.N = 9 })
	f.Binder().Reset().Emit(nil)
	f = drain(f, &p)

	assert.Equal(t, 3, cell.Snapshot().N)
	assert.True(t, p.sawReset())
}

func TestFileReadsReduceInCompletionOrder(t *testing.T) {
	type attach struct{ Last string }

	cell := store.New[attach]()
	var p pump
	reader := &stubReader{}
	f := New(Props[attach]{
		Handle: cell.Handle(),
		Reader: reader,
		View:   discardView[attach],
	}).Wire(p.send)

	pick := f.Binder().SetFile(func(a *attach, d files.Data) { a.Last = d.Name })
	pick.Emit(FileChange(
		files.File{Name: "a.txt", Path: "/tmp/a.txt"},
		files.File{Name: "b.txt", Path: "/tmp/b.txt"},
	))
	f = drain(f, &p)

	require.Len(t, reader.reads, 2)
	require.Len(t, f.tasks, 2)

	// Completions land out of selection order; each applies on receipt.
	reader.complete(t, 1, files.Data{Name: "b.txt"})
	f = drain(f, &p)
	assert.Equal(t, "b.txt", cell.Snapshot().Last)

	reader.complete(t, 0, files.Data{Name: "a.txt"})
	f = drain(f, &p)
	assert.Equal(t, "a.txt", cell.Snapshot().Last, "the last completion wins")

	// Both tasks are spent; the next selection prunes them.
	pick.Emit(FileChange(files.File{Name: "c.txt", Path: "/tmp/c.txt"}))
	f = drain(f, &p)
	require.Len(t, reader.reads, 3)
	assert.Len(t, f.tasks, 1, "inactive tasks must be pruned before scheduling")
}

func TestFileReadErrorReachesOnError(t *testing.T) {
	type attach struct{ Last string }

	cell := store.New[attach]()
	var p pump
	reader := &stubReader{}
	var got []error
	f := New(Props[attach]{
		Handle:  cell.Handle(),
		Reader:  reader,
		OnError: NewCallback(func(err error) { got = append(got, err) }),
		View:    discardView[attach],
	}).Wire(p.send)

	pick := f.Binder().SetFile(func(a *attach, d files.Data) { a.Last = d.Name })
	pick.Emit(FileChange(files.File{Name: "a.txt", Path: "/tmp/a.txt"}))
	f = drain(f, &p)

	reader.fail(t, 0, errors.New("disk gone"))
	f = drain(f, &p)

	require.Len(t, got, 1)
	assert.ErrorContains(t, got[0], "disk gone")
	assert.Equal(t, attach{}, cell.Snapshot(), "a failed read must not touch the store")
}

func TestFileReadErrorFallsBackToLogger(t *testing.T) {
	type attach struct{ Last string }

	var buf bytes.Buffer
	cell := store.New[attach]()
	var p pump
	reader := &stubReader{}
	f := New(Props[attach]{
		Handle: cell.Handle(),
		Reader: reader,
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
		View:   discardView[attach],
	}).Wire(p.send)

	pick := f.Binder().SetFile(func(a *attach, d files.Data) { a.Last = d.Name })
	pick.Emit(FileChange(files.File{Name: "a.txt", Path: "/tmp/a.txt"}))
	f = drain(f, &p)

	reader.fail(t, 0, errors.New("disk gone"))
	f = drain(f, &p)

	assert.Contains(t, buf.String(), "form file read failed")
	assert.Contains(t, buf.String(), "disk gone")
}

func TestUnmountCancelsAndDetaches(t *testing.T) {
	type attach struct{ Last string }

	cell := store.New[attach]()
	var p pump
	reader := &stubReader{}
	f := New(Props[attach]{
		Handle: cell.Handle(),
		Reader: reader,
		View:   discardView[attach],
	}).Wire(p.send)

	pick := f.Binder().SetFile(func(a *attach, d files.Data) { a.Last = d.Name })
	pick.Emit(FileChange(files.File{Name: "a.txt", Path: "/tmp/a.txt"}))
	f = drain(f, &p)
	require.Len(t, reader.reads, 1)

	f = f.Unmount()

	read := reader.read(0)
	assert.False(t, read.task.Active(), "outstanding reads are cancelled on unmount")
	assert.False(t, read.task.Complete(func() { read.fn(files.Data{Name: "a.txt"}, nil) }),
		"a cancelled read must not deliver")

	f.Handle().Reduce(func(a *attach) { a.Last = "late" })
	assert.Equal(t, attach{}, cell.Snapshot(), "the detached handle must drop reductions")

	before := len(p.history)
	f.Binder().Submit().Emit(nil)
	assert.Equal(t, before, len(p.history), "callbacks are silent after unmount")
}

func TestReductionsWakeTheProgram(t *testing.T) {
	cell := store.New[counter]()
	var p pump
	f := New(Props[counter]{
		Handle: cell.Handle(),
		View:   discardView[counter],
	}).Wire(p.send)
	defer f.Unmount()

	f.Handle().Reduce(func(c *counter) { c.N = 1 })

	woke := false
	for _, msg := range p.history {
		if _, ok := msg.(redrawMsg); ok {
			woke = true
		}
	}
	assert.True(t, woke, "a reduction must wake the program for a re-render")
}
