package calculator

// DefaultUndoDepth is the number of states an engine remembers for Undo
const DefaultUndoDepth = 100

// Engine is a calculator session: the current state, the history of completed
// calculations, and the states it can undo back to.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	state     State
	history   History
	undo      []State
	undoDepth int
}

// Option configures an Engine
type Option func(*Engine)

// WithUndoDepth bounds the undo stack. Zero disables undo.
func WithUndoDepth(depth int) Option {
	return func(e *Engine) {
		if depth < 0 {
			depth = 0
		}
		e.undoDepth = depth
	}
}

// NewEngine creates an engine in the cleared state with an empty history
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		state:     NewState(),
		undoDepth: DefaultUndoDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply runs a command and returns the display buffer afterwards. A failed
// command leaves the engine unchanged.
func (e *Engine) Apply(cmd Command) (string, error) {
	t, err := Apply(e.state, cmd)
	if err != nil {
		return e.state.Buffer, err
	}

	if t.State != e.state {
		e.pushUndo(e.state)
	}
	e.state = t.State
	if t.Record != nil {
		e.history.Append(*t.Record)
	}
	return e.state.Buffer, nil
}

// must is for commands that cannot fail
func (e *Engine) must(cmd Command) string {
	buffer, _ := e.Apply(cmd)
	return buffer
}

// AppendDigit adds a digit or decimal point to the display
func (e *Engine) AppendDigit(value string) string {
	return e.must(Command{Kind: CommandAppendDigit, Value: value})
}

// SetOperator selects the pending operator, first folding in any operator
// already pending so that chains evaluate left to right.
func (e *Engine) SetOperator(op Operator) error {
	_, err := e.Apply(Command{Kind: CommandSetOperator, Value: string(op)})
	return err
}

// Calculate applies the pending operator
func (e *Engine) Calculate() (string, error) {
	return e.Apply(Command{Kind: CommandCalculate})
}

// Clear resets the display and pending operator. History is kept.
func (e *Engine) Clear() string {
	return e.must(Command{Kind: CommandClear})
}

// DeleteLast removes the last character of the display
func (e *Engine) DeleteLast() string {
	return e.must(Command{Kind: CommandDeleteLast})
}

// Percentage divides the display by 100
func (e *Engine) Percentage() string {
	return e.must(Command{Kind: CommandPercentage})
}

// ToggleSign flips the sign of the display
func (e *Engine) ToggleSign() string {
	return e.must(Command{Kind: CommandToggleSign})
}

// SquareRoot replaces the display with its square root
func (e *Engine) SquareRoot() (string, error) {
	return e.Apply(Command{Kind: CommandSquareRoot})
}

// Square replaces the display with its square
func (e *Engine) Square() string {
	return e.must(Command{Kind: CommandSquare})
}

// CurrentInput returns the display buffer
func (e *Engine) CurrentInput() string {
	return e.state.Buffer
}

// State returns a snapshot of the current state
func (e *Engine) State() State {
	return e.state
}

// History returns a copy of the completed calculations, oldest first
func (e *Engine) History() []Record {
	return e.history.Records()
}

// ClearHistory empties the history
func (e *Engine) ClearHistory() {
	e.history.Clear()
}

// Undo restores the state before the last state-changing command. It reports
// false when there is nothing to undo. History is not rolled back.
func (e *Engine) Undo() (string, bool) {
	if len(e.undo) == 0 {
		return e.state.Buffer, false
	}
	e.state = e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	return e.state.Buffer, true
}

// UndoDepth returns how many states are available to Undo
func (e *Engine) UndoDepth() int {
	return len(e.undo)
}

func (e *Engine) pushUndo(s State) {
	if e.undoDepth == 0 {
		return
	}
	if len(e.undo) == e.undoDepth {
		copy(e.undo, e.undo[1:])
		e.undo = e.undo[:len(e.undo)-1]
	}
	e.undo = append(e.undo, s)
}
