package tui

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zukko-arcade/internal/buddy"
	"github.com/vovakirdan/zukko-arcade/internal/config"
	"github.com/vovakirdan/zukko-arcade/internal/core"
	"github.com/vovakirdan/zukko-arcade/internal/nav"
	"github.com/vovakirdan/zukko-arcade/internal/registry"
	"github.com/vovakirdan/zukko-arcade/internal/session"
	"github.com/vovakirdan/zukko-arcade/internal/storage"
)

// Options configures a Host.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig

	// Store is optional; without it results are not logged.
	Store *storage.Store

	// Buddy is optional; without it the reward screen shows no buddy replies.
	Buddy *buddy.Service

	// Logger is optional; nil discards.
	Logger *log.Logger

	// Player names the person playing, for the results log.
	Player string

	// Cue receives game feedback events, e.g. for sound. Optional.
	Cue func(core.Cue)

	// Start is the activity entered right away; Home shows the menu.
	Start nav.Activity

	// Context bounds buddy requests; it is typically the SSH session context.
	Context context.Context
}

// Host is the top-level model. It owns the navigation state machine and
// mounts exactly one activity at a time.
//
// Host is used through a pointer so completion callbacks fired from inside a
// game can drive navigation.
type Host struct {
	opts    Options
	ctx     context.Context
	logger  *log.Logger
	machine *nav.Machine
	keys    *KeyMapper
	global  GlobalKeyMap
	rng     *rand.Rand

	width, height int
	screen        *core.Screen

	// The mounted activity. game is nil on Home and BuddyReward.
	game         registry.Game
	session      *session.Context
	cancelReward context.CancelFunc

	home   HomeModel
	reward RewardModel

	// Commands queued from callbacks run inside Update.
	pending  []tea.Cmd
	quitting bool
}

// NewHost creates a host sitting on the home menu.
func NewHost(opts Options) *Host {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	w, h := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	return &Host{
		opts:    opts,
		ctx:     opts.Context,
		logger:  opts.Logger,
		machine: nav.NewMachine(),
		keys:    NewKeyMapper(),
		global:  DefaultGlobalKeyMap(),
		rng:     core.NewRand(opts.Runtime.Seed),
		width:   w,
		height:  h,
		screen:  core.NewScreen(w, h),
		home:    NewHomeModel(w, h, 0),
	}
}

// Init enters the start activity, if one was requested.
func (h *Host) Init() tea.Cmd {
	if h.opts.Start == nav.Home {
		return nil
	}
	return h.flush(h.fire(nav.Select(h.opts.Start)))
}

// Update handles messages.
func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmd = h.handleKey(msg)

	case tea.MouseMsg:
		if h.game != nil {
			if ev, ok := h.keys.MapMouse(msg); ok {
				h.game.Handle(ev)
			}
		}

	case TimerMsg:
		cmd = h.handleTimer(msg)

	case buddyReplyMsg:
		if h.machine.Current() != nav.BuddyReward || !h.session.Owns(msg.Session) {
			h.logger.Debug("dropping stale buddy reply", "request", msg.Request)
			break
		}
		var ok bool
		h.reward, ok = h.reward.Resolve(msg)
		if !ok {
			h.logger.Debug("dropping superseded buddy reply", "request", msg.Request)
		}

	case spinner.TickMsg:
		if h.machine.Current() == nav.BuddyReward {
			h.reward, cmd = h.reward.Update(msg)
		}
	}

	return h, h.flush(cmd)
}

// flush combines cmd with anything queued by callbacks.
func (h *Host) flush(cmd tea.Cmd) tea.Cmd {
	if len(h.pending) == 0 {
		return cmd
	}
	cmds := append(h.pending, cmd)
	h.pending = nil
	return tea.Batch(cmds...)
}

// handleKey routes a key press: global keys first, then the current screen.
func (h *Host) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, h.global.Quit):
		return h.quit()
	case key.Matches(msg, h.global.Back):
		return h.fire(nav.Cancel())
	}

	switch cur := h.machine.Current(); {
	case cur == nav.Home:
		var res homeResult
		h.home, res = h.home.Update(msg)
		switch {
		case res.quit:
			return h.quit()
		case res.selected:
			return h.fire(nav.Select(res.target))
		}

	case cur == nav.BuddyReward:
		var cmd tea.Cmd
		h.reward, cmd = h.reward.Update(msg)
		if h.reward.WantsHome() {
			return h.fire(nav.ReturnHome())
		}
		return cmd

	case h.game != nil:
		if ev, ok := h.keys.MapKey(msg); ok {
			h.game.Handle(ev)
		}
	}
	return nil
}

// handleTimer runs one timer firing for the mounted game and re-arms it.
// Firings for a session that is no longer mounted are dropped.
func (h *Host) handleTimer(msg TimerMsg) tea.Cmd {
	if h.game == nil || !h.session.Owns(msg.Session) {
		return nil
	}

	h.game.Fire(msg.Timer)

	// The firing may have completed the session.
	if h.game == nil || !h.session.Owns(msg.Session) {
		return nil
	}
	for _, spec := range h.game.Timers() {
		if spec.ID == msg.Timer {
			return timerCmd(msg.Session, spec)
		}
	}
	return nil
}

// fire applies a navigation event and swaps the mounted activity.
func (h *Host) fire(ev nav.Event) tea.Cmd {
	from := h.machine.Current()
	if !h.machine.Fire(ev) {
		return nil
	}
	to := h.machine.Current()
	h.logger.Info("navigate", "from", from, "to", to, "score", h.machine.Score())

	h.unmount()
	return h.mount(to, from)
}

// unmount tears down whatever is mounted. A live game session is cancelled,
// so its pending timers become no-ops.
func (h *Host) unmount() {
	sess := h.session
	if sess != nil {
		sess.Cancel()
		if sess.Activity.IsGame() {
			h.record(sess)
		}
	}
	if h.cancelReward != nil {
		h.cancelReward()
		h.cancelReward = nil
	}
	h.game = nil
	h.session = nil
}

func (h *Host) mount(to, from nav.Activity) tea.Cmd {
	switch {
	case to == nav.Home:
		h.home = NewHomeModel(h.width, h.height, h.machine.Score())
		return nil

	case to == nav.BuddyReward:
		ctx, cancel := context.WithCancel(h.ctx)
		h.cancelReward = cancel
		h.session = session.New(nav.BuddyReward, nil)
		h.reward = NewRewardModel(ctx, h.session.ID, h.opts.Buddy, from, h.machine.Score(), h.recent(), h.width, h.height)
		var cmd tea.Cmd
		h.reward, cmd = h.reward.Init()
		return cmd

	default:
		return h.mountGame(to)
	}
}

func (h *Host) mountGame(a nav.Activity) tea.Cmd {
	g, err := registry.Create(a, h.opts.Config)
	if err != nil {
		h.logger.Error("cannot mount game", "activity", a, "error", err)
		return h.fire(nav.Cancel())
	}

	sess := session.New(a, h.onComplete)
	h.game = g
	h.session = sess

	rt := h.opts.Runtime
	rt.ScreenW, rt.ScreenH = h.width, h.height
	rt.Seed = h.rng.Int63()

	g.Start(core.Env{
		Config:   rt,
		Rand:     core.NewRand(rt.Seed),
		Complete: func(score int) { sess.Complete(score) },
		Cue:      h.opts.Cue,
	})
	h.logger.Debug("session started", "activity", a, "session", sess.ID, "seed", rt.Seed)

	timers := g.Timers()
	cmds := make([]tea.Cmd, 0, len(timers))
	for _, spec := range timers {
		cmds = append(cmds, timerCmd(sess.ID, spec))
	}
	return tea.Batch(cmds...)
}

// onComplete is the completion callback of every game session.
func (h *Host) onComplete(score int) {
	h.logger.Info("session complete", "activity", h.machine.Current(), "score", score)
	h.pending = append(h.pending, h.fire(nav.Complete(score)))
}

// record logs a finished game session to the results store.
func (h *Host) record(sess *session.Context) {
	if h.opts.Store == nil {
		return
	}
	_, err := h.opts.Store.Record(storage.Result{
		SessionID: sess.ID.String(),
		Player:    h.opts.Player,
		Activity:  sess.Activity.String(),
		Score:     sess.Score(),
		Reason:    sess.Reason().String(),
		Duration:  sess.Duration(),
	})
	if err != nil {
		h.logger.Warn("could not record result", "session", sess.ID, "error", err)
	}
}

func (h *Host) recent() []storage.Result {
	if h.opts.Store == nil {
		return nil
	}
	results, err := h.opts.Store.Recent(recentResults)
	if err != nil {
		h.logger.Warn("could not load recent results", "error", err)
		return nil
	}
	return results
}

func (h *Host) resize(width, height int) {
	h.width, h.height = width, height
	h.screen.Resize(width, height)
	h.home = h.home.Resize(width, height)
	h.reward = h.reward.Resize(width, height)
	if h.game != nil {
		h.game.Resize(width, height)
	}
}

func (h *Host) quit() tea.Cmd {
	h.quitting = true
	h.Shutdown()
	return tea.Quit
}

// Shutdown cancels whatever is mounted. The program calls it when the
// terminal or SSH session goes away.
func (h *Host) Shutdown() {
	h.unmount()
}

// View renders the current screen.
func (h *Host) View() string {
	if h.quitting {
		return ""
	}

	switch cur := h.machine.Current(); {
	case cur == nav.Home:
		return h.home.View()
	case cur == nav.BuddyReward:
		return h.reward.View()
	case h.game != nil:
		h.screen.Clear()
		h.game.Render(h.screen)
		return RenderScreen(h.screen)
	}
	return ""
}

// State returns the navigation state.
func (h *Host) State() nav.State { return h.machine.State() }

// Game returns the mounted game, or nil.
func (h *Host) Game() registry.Game { return h.game }

// Session returns the mounted session context, or nil on Home.
func (h *Host) Session() *session.Context { return h.session }

// Reward returns the reward screen model.
func (h *Host) Reward() RewardModel { return h.reward }
