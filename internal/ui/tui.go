package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonrun/internal/errors"
	"github.com/samdwyer/dungeonrun/internal/telemetry"
)

// maxLog bounds the message history kept for the log panel.
const maxLog = 200

// TUI runs a session on a full-screen tcell terminal.
type TUI struct {
	screen   *Screen
	renderer *Renderer
	session  Session

	log     []string
	input   []rune
	running bool
	over    bool // Terminal state reached; next key closes
}

// NewTUI creates a full-screen front end drawing to screen.
func NewTUI(screen *Screen, session Session) *TUI {
	t := &TUI{
		screen:   screen,
		renderer: NewRenderer(screen),
		session:  session,
		running:  true,
	}
	t.addLog(Welcome(session.Snapshot().Player)...)
	t.addLog("", "Type a command and press Enter. Esc leaves at any time.")
	return t
}

// Run executes the event loop until the player leaves. The screen is
// closed on return.
func (t *TUI) Run(ctx context.Context) error {
	defer t.screen.Close()

	tracer := telemetry.Tracer("ui")
	ctx, span := tracer.Start(ctx, "ui.session")
	defer span.End()

	for t.running {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.Render()
		if err := t.HandleEvent(ctx, t.screen.PollEvent()); err != nil {
			span.RecordError(err)
			return err
		}
	}

	span.SetAttributes(attribute.Int("log.lines", len(t.log)))
	return nil
}

// Render draws the current frame.
func (t *TUI) Render() {
	t.renderer.Render(Frame{
		Snapshot: t.session.Snapshot(),
		Log:      t.log,
		Input:    string(t.input),
	})
}

// Running reports whether the loop should keep going.
func (t *TUI) Running() bool { return t.running }

// Log returns the message history.
func (t *TUI) Log() []string { return t.log }

// HandleEvent processes a single terminal event. Only failures of the
// engine itself are returned.
func (t *TUI) HandleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ctx, ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return nil
}

func (t *TUI) handleKey(ctx context.Context, ev *tcell.EventKey) error {
	if t.over {
		t.running = false
		return nil
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.running = false
	case tcell.KeyEnter:
		return t.submit(ctx)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(t.input); n > 0 {
			t.input = t.input[:n-1]
		}
	case tcell.KeyRune:
		t.input = append(t.input, ev.Rune())
	}
	return nil
}

// submit plays the typed command as one turn.
func (t *TUI) submit(ctx context.Context) error {
	raw := string(t.input)
	t.input = t.input[:0]
	t.addLog(Prompt + raw)

	result, err := t.session.Turn(ctx, raw)
	if err != nil {
		if errors.GetCode(err).Fatal() {
			return err
		}
		t.addLog(InvalidOption)
		return nil
	}

	if result.Quit {
		t.running = false
		return nil
	}

	t.addLog(Describe(result)...)
	if result.Snapshot.State.Terminal() {
		t.addLog(Farewell(result.Snapshot)...)
		t.addLog("Press any key to leave.")
		t.over = true
	}
	return nil
}

func (t *TUI) addLog(lines ...string) {
	t.log = append(t.log, lines...)
	if n := len(t.log); n > maxLog {
		t.log = t.log[n-maxLog:]
	}
}
