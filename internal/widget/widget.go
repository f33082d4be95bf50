// Package widget implements the chat widget's interaction engine: the
// conversation history, outbound request lifecycle, typewriter reveal of
// assistant replies, and the speech-recognition session.
//
// All state lives on a single event loop. Exported methods post work onto
// the loop and asynchronous completions (HTTP replies, recognition events,
// reveal ticks) are marshaled back the same way, so independent flows are
// serialized exactly as a browser event loop would serialize them.
package widget

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Role identifies who a conversation turn belongs to.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry in the conversation history.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// State is a point-in-time copy of the session's observable state.
type State struct {
	Open      bool
	History   []Turn
	Draft     string
	Pending   bool
	VoiceMode bool
	Listening bool
}

// DefaultGreeting seeds the history when Options.Greeting is empty.
const DefaultGreeting = "Hi! I'm Mahantesh's AI assistant. Ask me anything about his work, projects like VrindaAI, or expertise in AI Engineering, IoT, and Cybersecurity!"

const (
	msgNoSpeechSupport = "Speech recognition is not supported in this browser. Try Chrome or Edge."
	msgMicBlocked      = "Microphone access is blocked for this site. Please allow microphone permissions in your browser/site settings and reload the page."
	msgMicDenied       = "Microphone permission was denied. Please enable microphone access for this site in your browser settings."
	msgMicRevoked      = "Microphone access was denied. Please allow microphone permissions in your browser settings."
	msgNoAudio         = "No audio was detected. Check your microphone connection and try again."
)

// Options configures a Session. Client is required; everything else is
// optional. A nil Recognition behaves like Unsupported(), a nil Microphone
// skips the permission layer, a nil Synthesizer mutes voice output.
// OpenRequests lets other parts of the UI ask the widget to open.
type Options struct {
	Client       ChatClient
	Recognition  Recognition
	Microphone   Microphone
	Synthesizer  Synthesizer
	Greeting     string
	OpenRequests <-chan struct{}
	Logger       *zap.Logger
}

// Session is a single visitor's conversation with the widget.
type Session struct {
	opts    Options
	log     *zap.Logger
	events  chan func()
	done    chan struct{}
	stopped chan struct{}
	closed  sync.Once
	final   atomic.Pointer[State]

	// loop-owned state, never touched outside run()
	open       bool
	history    []Turn
	draft      string
	inflight   int
	voiceMode  bool
	listening  bool
	recognizer Recognizer
}

// NewSession builds a session with the greeting already in the history and
// starts its event loop.
func NewSession(opts Options) *Session {
	if opts.Greeting == "" {
		opts.Greeting = DefaultGreeting
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Session{
		opts:    opts,
		log:     log,
		events:  make(chan func(), 64),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		history: []Turn{{Role: RoleAssistant, Content: opts.Greeting}},
	}
	go s.run()
	return s
}

func (s *Session) run() {
	openRequests := s.opts.OpenRequests
	for {
		select {
		case fn := <-s.events:
			fn()
		case _, ok := <-openRequests:
			if !ok {
				openRequests = nil
				continue
			}
			s.open = true
		case <-s.done:
			// release the recognizer exactly once, whatever the exit path
			s.stopRecognition()
			s.voiceMode = false
			st := s.snapshot()
			s.final.Store(&st)
			close(s.stopped)
			return
		}
	}
}

// do posts fn to the event loop. Work posted after Close is dropped.
func (s *Session) do(fn func()) {
	select {
	case s.events <- fn:
	case <-s.stopped:
	}
}

// Close releases the session. The active recognition session, if any, is
// stopped; in-flight chat requests are left to settle on their own, their
// outcomes discarded.
func (s *Session) Close() {
	s.closed.Do(func() { close(s.done) })
}

// Snapshot returns a copy of the current state. After Close it returns the
// state as of shutdown.
func (s *Session) Snapshot() State {
	ch := make(chan State, 1)
	s.do(func() { ch <- s.snapshot() })
	select {
	case st := <-ch:
		return st
	case <-s.stopped:
		return *s.final.Load()
	}
}

func (s *Session) snapshot() State {
	history := make([]Turn, len(s.history))
	copy(history, s.history)
	return State{
		Open:      s.open,
		History:   history,
		Draft:     s.draft,
		Pending:   s.inflight > 0,
		VoiceMode: s.voiceMode,
		Listening: s.listening,
	}
}

// Open shows the panel.
func (s *Session) Open() { s.do(func() { s.open = true }) }

// Dismiss hides the panel without touching the conversation.
func (s *Session) Dismiss() { s.do(func() { s.open = false }) }

// SetDraft replaces the draft input text.
func (s *Session) SetDraft(text string) { s.do(func() { s.draft = text }) }

// Submit sends the current draft. A draft that is empty after trimming is
// a no-op. The draft is cleared immediately so the input stays usable
// while the request is in flight.
func (s *Session) Submit() {
	s.do(func() {
		text := strings.TrimSpace(s.draft)
		if text == "" {
			return
		}
		s.draft = ""
		s.send(text)
	})
}

// Send sends text directly, bypassing the draft. Whitespace-only text is a
// no-op.
func (s *Session) Send(text string) {
	s.do(func() {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return
		}
		s.send(trimmed)
	})
}

// ToggleVoice starts voice input if it is off and stops it if it is on.
// Turning voice on also opens the panel.
func (s *Session) ToggleVoice() {
	s.do(func() {
		if s.voiceMode {
			s.stopVoice()
			return
		}
		s.open = true
		s.startVoice()
	})
}

// say appends an assistant turn, used for capability and error messages.
func (s *Session) say(text string) {
	s.history = append(s.history, Turn{Role: RoleAssistant, Content: text})
}

// send appends the user turn and issues the chat request. Each call is one
// independent request with exactly one outcome: no retries, no coalescing,
// no cancellation. A second send while one is in flight simply overlaps.
func (s *Session) send(text string) {
	s.history = append(s.history, Turn{Role: RoleUser, Content: text})
	s.inflight++
	go func() {
		// in-flight requests are never canceled, per the widget contract
		reply, err := s.opts.Client.Chat(context.Background(), text)
		s.do(func() {
			s.inflight--
			if err != nil {
				s.log.Debug("chat request failed", zap.Error(err))
				s.say("Error: " + err.Error())
				return
			}
			s.accept(reply)
		})
	}()
}

// accept appends the assistant placeholder and kicks off its reveal. The
// placeholder's index is captured here so a later send cannot steal the
// reveal target.
func (s *Session) accept(reply string) {
	s.history = append(s.history, Turn{Role: RoleAssistant, Content: ""})
	r := &reveal{
		turn:     len(s.history) - 1,
		full:     []rune(reply),
		interval: RevealInterval(len([]rune(reply))),
	}
	if !r.done() {
		s.scheduleTick(r)
	}
	s.scheduleSpeech(reply, len(r.full), r.interval)
}

func (s *Session) scheduleTick(r *reveal) {
	time.AfterFunc(r.interval, func() {
		s.do(func() { s.tick(r) })
	})
}

func (s *Session) tick(r *reveal) {
	if r.done() {
		return
	}
	r.pos++
	s.history[r.turn].Content = string(r.full[:r.pos])
	if !r.done() {
		s.scheduleTick(r)
	}
}

// scheduleSpeech queues voice output for after the reveal finishes. Voice
// mode is re-checked when the timer fires, not when it is armed.
func (s *Session) scheduleSpeech(reply string, length int, interval time.Duration) {
	if s.opts.Synthesizer == nil {
		return
	}
	time.AfterFunc(speakDelay(length, interval), func() {
		s.do(func() {
			if !s.voiceMode {
				return
			}
			// only one utterance may play at a time
			s.opts.Synthesizer.Cancel()
			s.opts.Synthesizer.Speak(reply)
		})
	})
}

func (s *Session) stopVoice() {
	s.stopRecognition()
	s.voiceMode = false
}

// stopRecognition stops and releases the active recognizer. Calling it
// with no recognizer active is a no-op, so every exit path can call it.
func (s *Session) stopRecognition() {
	if s.recognizer != nil {
		s.recognizer.Stop()
		s.recognizer = nil
	}
	s.listening = false
}

// startVoice walks the precondition chain: capability, remembered
// permission, then an access request. Each failure is explained as an
// assistant message and leaves voice mode off.
func (s *Session) startVoice() {
	rec := s.opts.Recognition
	if rec == nil || !rec.Supported() {
		s.say(msgNoSpeechSupport)
		return
	}
	if s.recognizer != nil {
		// a recognition session is already starting or running
		return
	}

	mic := s.opts.Microphone
	go func() {
		// permission checks may block on a user prompt, so they run off-loop
		if mic != nil {
			if mic.Query(context.Background()) == PermissionDenied {
				s.do(func() { s.say(msgMicBlocked) })
				return
			}
			if err := mic.Request(context.Background()); err != nil {
				s.do(func() {
					if errors.Is(err, ErrPermissionDenied) {
						s.say(msgMicDenied)
					} else {
						s.say("Unable to access microphone: " + err.Error())
					}
				})
				return
			}
		}
		s.do(s.startRecognizer)
	}()
}

func (s *Session) startRecognizer() {
	if s.recognizer != nil || s.voiceMode {
		return
	}
	r, err := s.opts.Recognition.NewRecognizer(s.emit)
	if err != nil {
		s.say("Failed to start speech recognition: " + err.Error())
		return
	}
	if err := r.Start(); err != nil {
		s.say("Failed to start speech recognition: " + err.Error())
		return
	}
	// voice mode turns on only once the recognizer confirms it started,
	// never optimistically before
	s.recognizer = r
}

func (s *Session) emit(ev RecognitionEvent) {
	s.do(func() { s.handleRecognition(ev) })
}

func (s *Session) handleRecognition(ev RecognitionEvent) {
	if s.recognizer == nil {
		// events from a released recognizer are ignored
		return
	}

	switch ev.Kind {
	case RecognitionStarted:
		s.listening = true
		s.voiceMode = true
		s.log.Debug("speech recognition started")
	case RecognitionResult:
		if !ev.Final {
			// interim transcripts only give visual feedback in the draft
			if ev.Transcript != "" {
				s.draft = ev.Transcript
			}
			return
		}
		if text := strings.TrimSpace(ev.Transcript); text != "" {
			s.send(text)
		}
		s.draft = ""
	case RecognitionEnded:
		s.listening = false
	case RecognitionFailed:
		s.listening = false
		s.handleRecognitionError(ev.Err)
	}
}

func (s *Session) handleRecognitionError(err *RecognitionError) {
	if err == nil {
		err = &RecognitionError{Reason: FailureUnknown}
	}
	s.log.Debug("speech recognition error", zap.Error(err))

	switch err.Reason {
	case FailurePermissionRevoked:
		s.say(msgMicRevoked)
		s.stopVoice()
	case FailureNoAudio, FailureCaptureFailed:
		// recoverable: voice mode stays on so the user can try again
		s.say(msgNoAudio)
	default:
		s.say("Speech recognition error: " + err.Error())
	}
}
