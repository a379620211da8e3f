package parser

import (
	"fmt"

	"github.com/dhamidi/goparse/golang/token"
)

type eventKind uint8

const (
	eventStart eventKind = iota
	eventFinish
	eventToken
	eventError
)

type markerState uint8

const (
	markerOpen markerState = iota
	markerDone
	markerCollapsed
	markerError
)

// event is one entry of the builder's arena. Nodes are materialized from
// the event list only once, in Finish.
type event struct {
	kind  eventKind
	state markerState
	node  NodeKind

	// forward is the index of the start event of a node created later with
	// Precede that wraps this one; 0 means none.
	forward int
	// preceded is the index of the start event this marker wraps, or -1.
	preceded int
	// first is the index of the first event of the node's content.
	first int
	// pos is the token index where the node, token or error begins.
	pos int
	// cursor is the token index to return to when the marker is dropped.
	cursor   int
	prevDone CompletedMarker
	err      *Error
}

// Marker is a node under construction.
type Marker struct {
	index int
}

// CompletedMarker is a closed node. It can still be wrapped by a new parent
// with Precede.
type CompletedMarker struct {
	start  int
	finish int
}

var noMarker = CompletedMarker{start: -1, finish: -1}

// Builder holds the cursor into the token slice and the event arena of
// one parse.
type Builder struct {
	tokens   []token.Token
	eof      token.Token
	pos      int
	events   []event
	open     []int
	lastDone CompletedMarker
	lastErr  int
}

// NewBuilder returns a builder over tokens. A trailing EOF token is not part
// of the tree; it only provides the position of end of input.
func NewBuilder(tokens []token.Token) *Builder {
	b := &Builder{lastDone: noMarker, lastErr: -1}
	n := len(tokens)
	switch {
	case n > 0 && tokens[n-1].Kind == token.EOF:
		b.eof = tokens[n-1]
		tokens = tokens[:n-1]
	case n > 0:
		end := tokens[n-1].Span.End
		b.eof = token.Token{Kind: token.EOF, Span: token.Span{Start: end, End: end}}
	default:
		start := token.Position{Line: 1, Column: 1}
		b.eof = token.Token{Kind: token.EOF, Span: token.Span{Start: start, End: start}}
	}
	b.tokens = tokens
	return b
}

func (b *Builder) Pos() int {
	return b.pos
}

func (b *Builder) EOF() bool {
	return b.pos >= len(b.tokens)
}

func (b *Builder) tokenAt(i int) token.Token {
	if i >= 0 && i < len(b.tokens) {
		return b.tokens[i]
	}
	return b.eof
}

func (b *Builder) Current() token.Token {
	return b.tokenAt(b.pos)
}

// Kind returns the kind of the token at the cursor.
func (b *Builder) Kind() token.Kind {
	return b.tokenAt(b.pos).Kind
}

// Peek returns the kind of the token n positions after the cursor.
func (b *Builder) Peek(n int) token.Kind {
	return b.tokenAt(b.pos + n).Kind
}

func (b *Builder) At(kind token.Kind) bool {
	return b.Kind() == kind
}

func (b *Builder) AtSeparator() bool {
	return b.Kind().IsSeparator()
}

// Advance appends the token at the cursor to the innermost open marker.
func (b *Builder) Advance() {
	if b.EOF() {
		return
	}
	b.events = append(b.events, event{kind: eventToken, pos: b.pos})
	b.pos++
}

// Expect consumes the token at the cursor iff it has the requested kind.
func (b *Builder) Expect(kind token.Kind) bool {
	if !b.At(kind) || b.EOF() {
		return false
	}
	b.Advance()
	return true
}

func (b *Builder) Open() Marker {
	idx := len(b.events)
	b.events = append(b.events, event{
		kind:     eventStart,
		preceded: -1,
		first:    idx,
		pos:      b.pos,
		cursor:   b.pos,
		prevDone: b.lastDone,
	})
	b.open = append(b.open, idx)
	return Marker{index: idx}
}

// Precede opens a marker that, once closed, becomes the parent of the
// already closed node cm.
func (b *Builder) Precede(cm CompletedMarker) Marker {
	idx := len(b.events)
	inner := b.events[cm.start]
	if inner.forward != 0 {
		panic("parser: marker preceded twice")
	}
	b.events[cm.start].forward = idx
	b.events = append(b.events, event{
		kind:     eventStart,
		preceded: cm.start,
		first:    inner.first,
		pos:      inner.pos,
		cursor:   b.pos,
		prevDone: b.lastDone,
	})
	b.open = append(b.open, idx)
	return Marker{index: idx}
}

// close pops m from the open stack. Markers opened after m that are still
// open are collapsed.
func (b *Builder) close(m Marker) *event {
	for len(b.open) > 0 {
		top := b.open[len(b.open)-1]
		b.open = b.open[:len(b.open)-1]
		if top == m.index {
			return &b.events[m.index]
		}
		b.events[top].state = markerCollapsed
	}
	panic(fmt.Sprintf("parser: marker %d is not open", m.index))
}

// Done closes m as a node of the given kind.
func (b *Builder) Done(m Marker, kind NodeKind) CompletedMarker {
	if kind == Transparent {
		b.Collapse(m)
		return b.lastDone
	}
	ev := b.close(m)
	ev.state = markerDone
	ev.node = kind
	b.events = append(b.events, event{kind: eventFinish, pos: b.pos})
	b.lastDone = CompletedMarker{start: m.index, finish: len(b.events) - 1}
	return b.lastDone
}

// Collapse closes m without a node of its own; its children move to the
// parent.
func (b *Builder) Collapse(m Marker) {
	ev := b.close(m)
	ev.state = markerCollapsed
}

// Fold closes m as a node of kind unless its whole content is exactly one
// node, in which case m collapses onto that node.
func (b *Builder) Fold(m Marker, kind NodeKind) CompletedMarker {
	if b.wrapsSingleNode(m) {
		b.Collapse(m)
		return b.lastDone
	}
	return b.Done(m, kind)
}

func (b *Builder) wrapsSingleNode(m Marker) bool {
	last := b.lastDone
	if last.start <= m.index || last.finish != len(b.events)-1 {
		return false
	}
	first := b.events[last.start].first
	if first <= m.index {
		return false
	}
	for i := m.index + 1; i < first; i++ {
		if b.events[i].kind != eventStart || b.events[i].state != markerCollapsed {
			return false
		}
	}
	return true
}

// Drop discards m and everything recorded since it was opened, and moves
// the cursor back.
func (b *Builder) Drop(m Marker) {
	ev := b.close(m)
	if ev.preceded >= 0 {
		b.events[ev.preceded].forward = 0
	}
	b.pos = ev.cursor
	b.lastDone = ev.prevDone
	if b.lastErr >= m.index {
		b.lastErr = -1
	}
	b.events = b.events[:m.index]
}

// Error closes m as an error node that keeps the tokens consumed since m
// was opened.
func (b *Builder) Error(m Marker, message string) {
	ev := b.close(m)
	ev.state = markerError
	ev.node = KindError
	ev.err = &Error{Message: message}
	b.events = append(b.events, event{kind: eventFinish, pos: b.pos})
}

// Close resolves m according to the outcome of a rule. A successful rule
// becomes a node of kind; a failed pinned rule keeps its partial node; a
// failed unpinned rule is rolled back. The result is ok || pinned.
func (b *Builder) Close(m Marker, kind NodeKind, ok, pinned bool) bool {
	switch {
	case ok:
		b.Done(m, kind)
	case pinned:
		b.ReportError(fmt.Sprintf("unexpected %s", describe(b.Current())))
		b.Done(m, kind)
	default:
		b.Drop(m)
	}
	return ok || pinned
}

// LastDone returns the most recently closed node that is still part of the
// tree.
func (b *Builder) LastDone() (CompletedMarker, bool) {
	if b.lastDone.start < 0 || b.lastDone.finish >= len(b.events) {
		return noMarker, false
	}
	return b.lastDone, true
}

// StartPos returns the token index where a completed node begins.
func (b *Builder) StartPos(cm CompletedMarker) int {
	return b.events[cm.start].pos
}

// ReportError records a zero-width error at the cursor. At most one error
// is kept per position; the result reports whether this one was recorded.
func (b *Builder) ReportError(message string, expected ...token.Kind) bool {
	if b.errorAt(b.pos) {
		return false
	}
	got := b.Current()
	b.events = append(b.events, event{
		kind: eventError,
		pos:  b.pos,
		err:  &Error{Message: message, Expected: expected, Got: &got},
	})
	b.lastErr = len(b.events) - 1
	return true
}

func (b *Builder) errorAt(pos int) bool {
	i := b.lastErr
	return i >= 0 && i < len(b.events) && b.events[i].kind == eventError && b.events[i].pos == pos
}

// Finish materializes the tree. Markers still open are collapsed.
func (b *Builder) Finish() (*Node, ErrorList) {
	for len(b.open) > 0 {
		b.Collapse(Marker{index: b.open[len(b.open)-1]})
	}

	var (
		stack []*Node
		roots []*Node
		chain []int
	)
	attach := func(n *Node) {
		if len(stack) > 0 {
			stack[len(stack)-1].AddChild(n)
		} else {
			roots = append(roots, n)
		}
	}
	visited := make([]bool, len(b.events))

	for i := range b.events {
		ev := b.events[i]
		switch ev.kind {
		case eventStart:
			if visited[i] {
				continue
			}
			chain = chain[:0]
			for j := i; ; j = b.events[j].forward {
				visited[j] = true
				if b.events[j].state != markerCollapsed {
					chain = append(chain, j)
				}
				if b.events[j].forward == 0 {
					break
				}
			}
			for k := len(chain) - 1; k >= 0; k-- {
				e := b.events[chain[k]]
				pos := b.tokenAt(e.pos).Span.Start
				stack = append(stack, &Node{
					Kind:  e.node,
					Span:  token.Span{Start: pos, End: pos},
					Error: e.err,
				})
			}
		case eventFinish:
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			attach(n)
		case eventToken:
			tok := b.tokens[ev.pos]
			attach(&Node{Kind: KindToken, Span: tok.Span, Token: &tok})
		case eventError:
			pos := b.tokenAt(ev.pos).Span.Start
			attach(&Node{Kind: KindError, Span: token.Span{Start: pos, End: pos}, Error: ev.err})
		}
	}

	var root *Node
	if len(roots) == 1 {
		root = roots[0]
	} else {
		pos := b.eof.Span.Start
		root = &Node{Kind: KindFragment, Span: token.Span{Start: pos, End: pos}, Children: roots}
	}
	computeSpans(root)

	var errs ErrorList
	root.Walk(func(n *Node) bool {
		if n.Kind == KindError && n.Error != nil {
			errs = append(errs, &SyntaxError{Pos: n.Span.Start, Message: n.Error.Message})
		}
		return true
	})
	return root, errs
}

func computeSpans(n *Node) {
	if len(n.Children) == 0 {
		return
	}
	for _, child := range n.Children {
		computeSpans(child)
	}
	n.Span.Start = n.Children[0].Span.Start
	n.Span.End = n.Children[len(n.Children)-1].Span.End
}

// describe renders a token for diagnostics.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.SyntheticSemicolon:
		return "newline"
	}
	return "'" + tok.Text() + "'"
}
