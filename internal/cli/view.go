package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackedcards/pkg/carousel"
	"github.com/matzehuels/stackedcards/pkg/deck"
	"github.com/matzehuels/stackedcards/pkg/errors"
	"github.com/matzehuels/stackedcards/pkg/observability"
	"github.com/matzehuels/stackedcards/pkg/scroll"
)

const (
	fps = 60

	// Spring parameters for page snapping: quick, with a slight overshoot.
	springFrequency = 9.0
	springDamping   = 0.85

	// settleEpsilon ends the snap animation, in columns.
	settleEpsilon = 0.05

	// chromeRows is the number of rows used by the header, indicator and help lines.
	chromeRows = 3
)

// viewCommand creates the interactive carousel command.
func (c *CLI) viewCommand() *cobra.Command {
	var logFile string
	var page int

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the carousel in the terminal",
		Long: `Browse the stacked-cards carousel in the terminal.

Keys:
  ←/→, h/l   previous / next card
  g/G        first / last card
  drag       swipe with the mouse
  r          toggle rotation
  f          toggle focused edge gain
  i          toggle the scroll indicator
  q          quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePage(page); err != nil {
				return err
			}
			return c.runView(cmd.Context(), page, logFile)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 0, "initial page (0-based)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the view is open")

	return cmd
}

func (c *CLI) runView(ctx context.Context, page int, logFile string) error {
	d, err := c.newDeck()
	if err != nil {
		return err
	}

	// The terminal belongs to the view; logs go to a file or nowhere.
	restore, err := c.redirectLogs(logFile)
	if err != nil {
		return err
	}
	defer restore()

	m := newViewModel(ctx, d, c.cfg.CarouselOptions(), c.cfg.Viewport(), c.cfg.View.ShowIndicator)
	m.jump(page)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// redirectLogs points the CLI logger at path (or discards output) until the
// returned func is called.
func (c *CLI) redirectLogs(path string) (func(), error) {
	var w io.Writer = io.Discard
	var f *os.File
	if path != "" {
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open log file")
		}
		w = f
	}
	c.Logger.SetOutput(w)
	return func() {
		c.Logger.SetOutput(os.Stderr)
		if f != nil {
			f.Close()
		}
	}, nil
}

// =============================================================================
// viewModel - Interactive carousel
// =============================================================================

// frameMsg advances the snap animation started as generation gen. Frames
// of an interrupted animation are dropped.
type frameMsg struct{ gen int }

// viewModel is the bubbletea model of the interactive carousel. Positions
// are in terminal columns; the configured viewport supplies the padding
// ratios.
type viewModel struct {
	ctx    context.Context
	deck   *deck.Deck
	engine *carousel.Engine
	state  scroll.State
	base   carousel.Viewport

	cols, rows int

	scrollX   float64
	velocity  float64
	target    float64
	spring    harmonica.Spring
	animating bool
	tickGen   int

	dragging     bool
	dragOriginX  int
	dragOriginSX float64

	showIndicator bool
}

func newViewModel(ctx context.Context, d *deck.Deck, opts carousel.Options, base carousel.Viewport, indicator bool) *viewModel {
	return &viewModel{
		ctx:           ctx,
		deck:          d,
		engine:        carousel.NewEngine(d, opts),
		state:         scroll.NewState(d),
		base:          base,
		spring:        harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		showIndicator: indicator,
	}
}

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case frameMsg:
		return m, m.animate(msg)
	}
	return m, nil
}

func (m *viewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		return m, m.page(-1)
	case "right", "l":
		return m, m.page(1)
	case "home", "g":
		return m, m.page(-m.state.CurrentIndex)
	case "end", "G":
		return m, m.page(m.deck.Len() - 1 - m.state.CurrentIndex)
	case "r":
		opts := m.engine.Options()
		opts.Transform.RotationEnabled = !opts.Transform.RotationEnabled
		m.engine.SetOptions(opts)
	case "f":
		opts := m.engine.Options()
		opts.Transform.Focused = !opts.Transform.Focused
		m.engine.SetOptions(opts)
	case "i":
		m.showIndicator = !m.showIndicator
	}
	return m, nil
}

func (m *viewModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelLeft:
		return m.page(-1)
	case msg.Button == tea.MouseButtonWheelRight:
		return m.page(1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = true
		m.dragOriginX = msg.X
		m.dragOriginSX = m.scrollX
		m.stopAnimation()
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.drag(float64(msg.X-m.dragOriginX), scroll.Changed)
	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		return m.drag(float64(msg.X-m.dragOriginX), scroll.Ended)
	}
	return nil
}

// drag applies a drag of translationX columns. The scroll offset follows the
// pointer while dragging; on release the committed page is animated into place.
func (m *viewModel) drag(translationX float64, phase scroll.Phase) tea.Cmd {
	vp := m.viewport()
	hooks := observability.Carousel()

	if phase == scroll.Changed {
		m.scrollX = m.clampScroll(m.dragOriginSX - translationX)
		m.state.HandleDrag(scroll.Drag{TranslationX: translationX, Phase: phase}, m.deck, vp.Width)
		hooks.OnDrag(m.ctx, m.state.Direction.String(), phase.String(), translationX)
		return nil
	}

	from := m.state.CurrentIndex
	hooks.OnDrag(m.ctx, m.state.Direction.String(), phase.String(), translationX)
	if m.state.HandleDrag(scroll.Drag{TranslationX: translationX, Phase: phase}, m.deck, vp.Width) {
		hooks.OnSnap(m.ctx, from, m.state.CurrentIndex)
	}
	return m.snapTo(m.state.CurrentIndex)
}

// page moves the committed card by delta and animates to it.
func (m *viewModel) page(delta int) tea.Cmd {
	from := m.state.CurrentIndex
	if m.state.Step(delta, m.deck) {
		observability.Carousel().OnSnap(m.ctx, from, m.state.CurrentIndex)
	}
	return m.snapTo(m.state.CurrentIndex)
}

// jump commits page without animation.
func (m *viewModel) jump(page int) {
	m.state.Step(page-m.state.CurrentIndex, m.deck)
	m.scrollX = carousel.SnapOffset(m.state.CurrentIndex, m.viewport())
	m.target = m.scrollX
}

func (m *viewModel) snapTo(index int) tea.Cmd {
	m.target = carousel.SnapOffset(index, m.viewport())
	if m.animating {
		return nil
	}
	m.animating = true
	m.tickGen++
	return tick(m.tickGen)
}

// stopAnimation halts the snap in place. Frames already scheduled carry the
// old generation and are ignored.
func (m *viewModel) stopAnimation() {
	m.animating = false
	m.velocity = 0
	m.tickGen++
}

func (m *viewModel) animate(msg frameMsg) tea.Cmd {
	if !m.animating || msg.gen != m.tickGen {
		return nil
	}
	m.scrollX, m.velocity = m.spring.Update(m.scrollX, m.velocity, m.target)
	if math.Abs(m.scrollX-m.target) < settleEpsilon && math.Abs(m.velocity) < settleEpsilon {
		m.scrollX, m.velocity = m.target, 0
		m.animating = false
		return nil
	}
	return tick(m.tickGen)
}

func tick(gen int) tea.Cmd {
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func (m *viewModel) resize(width, height int) {
	m.cols = width
	m.rows = max(height-chromeRows, 0)
	// Page width changed; keep the committed card snapped.
	m.scrollX = carousel.SnapOffset(m.state.CurrentIndex, m.viewport())
	m.target = m.scrollX
	m.stopAnimation()
}

// clampScroll allows half a page of overscroll at either end.
func (m *viewModel) clampScroll(x float64) float64 {
	w := float64(m.cols)
	lo := -w / 2
	hi := float64(m.deck.Len()-1)*w + w/2
	return math.Max(lo, math.Min(hi, x))
}

// viewport scales the configured padding to the terminal size.
func (m *viewModel) viewport() carousel.Viewport {
	w := float64(m.cols)
	h := float64(m.rows) * cellAspect
	vp := carousel.Viewport{Width: w, Height: h}
	if m.base.Width > 0 {
		vp.Padding = m.base.Padding * w / m.base.Width
	}
	if m.base.Height > 0 {
		vp.VPadding = m.base.VPadding * h / m.base.Height
	}
	return vp
}

func (m *viewModel) frame() carousel.Frame {
	return m.engine.Frame(m.ctx, m.viewport(), m.scrollX, m.state)
}

func (m *viewModel) View() string {
	if m.cols == 0 {
		return StyleDim.Render("starting…")
	}

	f := m.frame()
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(paintFrame(f, m.cols, m.rows).String())
	b.WriteString("\n")
	if m.showIndicator {
		b.WriteString(indicatorBar(f.ScrollFraction(), m.deck.Len(), m.cols))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ page  drag swipe  r rotation  f focus  i indicator  q quit"))

	return b.String()
}

func (m *viewModel) header() string {
	opts := m.engine.Options()
	flags := []string{
		"rotation " + onOff(opts.Transform.RotationEnabled),
		"focus " + onOff(opts.Transform.Focused),
	}
	card := m.deck.Card(m.state.CurrentIndex)
	return StyleTitle.Render("Stacked Cards") + "  " +
		StyleNumber.Render(fmt.Sprintf("%d/%d", m.state.CurrentIndex+1, m.deck.Len())) + "  " +
		StyleValue.Render(card.Label) + "  " +
		StyleDim.Render(strings.Join(flags, " · "))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
