package widget

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	settleTimeout = 5 * time.Second
	pollInterval  = 10 * time.Millisecond
)

type fakeClient struct {
	mu      sync.Mutex
	calls   []string
	respond func(message string) (string, error)
}

func (c *fakeClient) Chat(_ context.Context, message string) (string, error) {
	c.mu.Lock()
	c.calls = append(c.calls, message)
	c.mu.Unlock()
	if c.respond == nil {
		return "ok", nil
	}
	return c.respond(message)
}

func (c *fakeClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

type fakeRecognition struct {
	autoStart bool

	mu  sync.Mutex
	rec *fakeRecognizer
}

func (f *fakeRecognition) Supported() bool { return true }

func (f *fakeRecognition) NewRecognizer(emit func(RecognitionEvent)) (Recognizer, error) {
	r := &fakeRecognizer{emit: emit, autoStart: f.autoStart}
	f.mu.Lock()
	f.rec = r
	f.mu.Unlock()
	return r, nil
}

func (f *fakeRecognition) recognizer() *fakeRecognizer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rec
}

type fakeRecognizer struct {
	emit      func(RecognitionEvent)
	autoStart bool

	mu    sync.Mutex
	stops int
}

func (r *fakeRecognizer) Start() error {
	if r.autoStart {
		r.emit(RecognitionEvent{Kind: RecognitionStarted})
	}
	return nil
}

func (r *fakeRecognizer) Stop() {
	r.mu.Lock()
	r.stops++
	r.mu.Unlock()
}

func (r *fakeRecognizer) stopCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stops
}

func (r *fakeRecognizer) started() {
	r.emit(RecognitionEvent{Kind: RecognitionStarted})
}

func (r *fakeRecognizer) result(transcript string, final bool) {
	r.emit(RecognitionEvent{Kind: RecognitionResult, Transcript: transcript, Final: final})
}

func (r *fakeRecognizer) ended() {
	r.emit(RecognitionEvent{Kind: RecognitionEnded})
}

func (r *fakeRecognizer) failed(reason FailureReason) {
	r.emit(RecognitionEvent{Kind: RecognitionFailed, Err: &RecognitionError{Reason: reason}})
}

type fakeMic struct {
	state      PermissionState
	requestErr error
}

func (m *fakeMic) Query(context.Context) PermissionState { return m.state }
func (m *fakeMic) Request(context.Context) error         { return m.requestErr }

type fakeSynth struct {
	mu     sync.Mutex
	events []string
}

func (s *fakeSynth) Speak(text string) {
	s.mu.Lock()
	s.events = append(s.events, "speak:"+text)
	s.mu.Unlock()
}

func (s *fakeSynth) Cancel() {
	s.mu.Lock()
	s.events = append(s.events, "cancel")
	s.mu.Unlock()
}

func (s *fakeSynth) log() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	copy(out, s.events)
	return out
}

func lastTurn(st State) Turn {
	return st.History[len(st.History)-1]
}

// startedVoiceSession builds a session with voice already confirmed running.
func startedVoiceSession(t *testing.T, client *fakeClient, synth Synthesizer) (*Session, *fakeRecognizer) {
	t.Helper()

	rec := &fakeRecognition{autoStart: true}
	s := NewSession(Options{
		Client:      client,
		Recognition: rec,
		Microphone:  &fakeMic{state: PermissionGranted},
		Synthesizer: synth,
	})
	t.Cleanup(s.Close)

	s.ToggleVoice()
	require.Eventually(t, func() bool {
		st := s.Snapshot()
		return st.VoiceMode && st.Listening
	}, settleTimeout, pollInterval)

	return s, rec.recognizer()
}

func TestSessionSeedsGreeting(t *testing.T) {
	s := NewSession(Options{Client: &fakeClient{}})
	defer s.Close()

	st := s.Snapshot()
	require.Len(t, st.History, 1)
	assert.Equal(t, RoleAssistant, st.History[0].Role)
	assert.Equal(t, DefaultGreeting, st.History[0].Content)
	assert.False(t, st.Open)
}

func TestSubmitEmptyDraftIsNoOp(t *testing.T) {
	client := &fakeClient{}
	s := NewSession(Options{Client: client})
	defer s.Close()

	s.SetDraft("   ")
	s.Submit()

	st := s.Snapshot()
	assert.Len(t, st.History, 1)
	assert.False(t, st.Pending)
	assert.Zero(t, client.callCount())
}

func TestSubmitAppendsUserAndAssistantTurns(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return "short reply", nil
	}}
	s := NewSession(Options{Client: client})
	defer s.Close()

	s.SetDraft("  hello  ")
	s.Submit()

	// the user turn and cleared draft are visible before the reply lands
	st := s.Snapshot()
	require.Len(t, st.History, 2)
	assert.Equal(t, Turn{Role: RoleUser, Content: "hello"}, st.History[1])
	assert.Empty(t, st.Draft)

	require.Eventually(t, func() bool {
		st := s.Snapshot()
		return len(st.History) == 3 &&
			st.History[2].Content == "short reply" &&
			!st.Pending
	}, settleTimeout, pollInterval)

	st = s.Snapshot()
	assert.Equal(t, RoleAssistant, st.History[2].Role)
}

func TestSendFailureAppendsErrorTurn(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return "", errors.New("connection refused")
	}}
	s := NewSession(Options{Client: client})
	defer s.Close()

	s.Send("hello")

	require.Eventually(t, func() bool {
		st := s.Snapshot()
		return len(st.History) == 3 && !st.Pending
	}, settleTimeout, pollInterval)

	st := s.Snapshot()
	assert.Equal(t, RoleAssistant, st.History[2].Role)
	assert.Equal(t, "Error: connection refused", st.History[2].Content)
}

func TestConcurrentSendsRevealIntoOwnTurns(t *testing.T) {
	longReply := "the first reply is deliberately long enough to still be revealing when the second lands"
	shortReply := "second reply"

	client := &fakeClient{respond: func(message string) (string, error) {
		if message == "one" {
			// settle after "two" so the reveals overlap
			time.Sleep(60 * time.Millisecond)
			return longReply, nil
		}
		return shortReply, nil
	}}
	s := NewSession(Options{Client: client})
	defer s.Close()

	s.Send("one")
	s.Send("two")

	require.Eventually(t, func() bool {
		st := s.Snapshot()
		if len(st.History) != 5 || st.Pending {
			return false
		}
		return st.History[3].Content == shortReply && st.History[4].Content == longReply
	}, settleTimeout, pollInterval)

	st := s.Snapshot()
	assert.Equal(t, Turn{Role: RoleUser, Content: "one"}, st.History[1])
	assert.Equal(t, Turn{Role: RoleUser, Content: "two"}, st.History[2])
	assert.Equal(t, RoleAssistant, st.History[3].Role)
	assert.Equal(t, RoleAssistant, st.History[4].Role)
}

func TestVoiceToggleWithoutSpeechSupport(t *testing.T) {
	s := NewSession(Options{Client: &fakeClient{}, Recognition: Unsupported()})
	defer s.Close()

	s.ToggleVoice()

	st := s.Snapshot()
	assert.False(t, st.VoiceMode)
	assert.True(t, st.Open)
	require.Len(t, st.History, 2)
	assert.Equal(t, msgNoSpeechSupport, lastTurn(st).Content)
}

func TestVoiceTogglePermissionBlocked(t *testing.T) {
	s := NewSession(Options{
		Client:      &fakeClient{},
		Recognition: &fakeRecognition{autoStart: true},
		Microphone:  &fakeMic{state: PermissionDenied},
	})
	defer s.Close()

	s.ToggleVoice()

	require.Eventually(t, func() bool {
		return len(s.Snapshot().History) == 2
	}, settleTimeout, pollInterval)

	st := s.Snapshot()
	assert.False(t, st.VoiceMode)
	assert.False(t, st.Listening)
	assert.Equal(t, msgMicBlocked, lastTurn(st).Content)
}

func TestVoiceToggleRequestDenied(t *testing.T) {
	s := NewSession(Options{
		Client:      &fakeClient{},
		Recognition: &fakeRecognition{autoStart: true},
		Microphone:  &fakeMic{requestErr: ErrPermissionDenied},
	})
	defer s.Close()

	s.ToggleVoice()

	require.Eventually(t, func() bool {
		return len(s.Snapshot().History) == 2
	}, settleTimeout, pollInterval)

	st := s.Snapshot()
	assert.False(t, st.VoiceMode)
	assert.Equal(t, msgMicDenied, lastTurn(st).Content)
}

func TestVoiceModeWaitsForStartConfirmation(t *testing.T) {
	rec := &fakeRecognition{autoStart: false}
	s := NewSession(Options{
		Client:      &fakeClient{},
		Recognition: rec,
		Microphone:  &fakeMic{state: PermissionGranted},
	})
	defer s.Close()

	s.ToggleVoice()

	require.Eventually(t, func() bool {
		return rec.recognizer() != nil
	}, settleTimeout, pollInterval)

	// the recognizer exists but has not confirmed: voice mode stays off
	st := s.Snapshot()
	assert.False(t, st.VoiceMode)
	assert.False(t, st.Listening)

	rec.recognizer().started()

	require.Eventually(t, func() bool {
		st := s.Snapshot()
		return st.VoiceMode && st.Listening
	}, settleTimeout, pollInterval)
}

func TestInterimTranscriptUpdatesDraftOnly(t *testing.T) {
	client := &fakeClient{}
	s, rec := startedVoiceSession(t, client, nil)

	rec.result("hel", false)
	rec.result("hello th", false)

	require.Eventually(t, func() bool {
		return s.Snapshot().Draft == "hello th"
	}, settleTimeout, pollInterval)

	st := s.Snapshot()
	assert.Len(t, st.History, 1)
	assert.Zero(t, client.callCount())
}

func TestFinalTranscriptTriggersSend(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) { return "sure!", nil }}
	s, rec := startedVoiceSession(t, client, nil)

	rec.result("hello there", false)
	rec.result("  hello there  ", true)

	require.Eventually(t, func() bool {
		st := s.Snapshot()
		return len(st.History) == 3 && st.Draft == "" && !st.Pending
	}, settleTimeout, pollInterval)

	st := s.Snapshot()
	assert.Equal(t, Turn{Role: RoleUser, Content: "hello there"}, st.History[1])
	assert.Equal(t, []string{"hello there"}, client.calls)
}

func TestStopVoiceReleasesRecognizer(t *testing.T) {
	client := &fakeClient{}
	s, rec := startedVoiceSession(t, client, nil)

	s.ToggleVoice()

	require.Eventually(t, func() bool {
		st := s.Snapshot()
		return !st.VoiceMode && !st.Listening
	}, settleTimeout, pollInterval)
	assert.Equal(t, 1, rec.stopCount())

	// events from the released recognizer are ignored
	rec.result("ghost transcript", true)
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, client.callCount())
	assert.Len(t, s.Snapshot().History, 1)
}

func TestRecognitionEndKeepsVoiceMode(t *testing.T) {
	s, rec := startedVoiceSession(t, &fakeClient{}, nil)

	rec.ended()

	require.Eventually(t, func() bool {
		return !s.Snapshot().Listening
	}, settleTimeout, pollInterval)
	assert.True(t, s.Snapshot().VoiceMode)
}

func TestRecognitionNoAudioIsRecoverable(t *testing.T) {
	s, rec := startedVoiceSession(t, &fakeClient{}, nil)

	rec.failed(FailureNoAudio)

	require.Eventually(t, func() bool {
		return len(s.Snapshot().History) == 2
	}, settleTimeout, pollInterval)

	st := s.Snapshot()
	assert.Equal(t, msgNoAudio, lastTurn(st).Content)
	assert.True(t, st.VoiceMode)
	assert.False(t, st.Listening)
}

func TestRecognitionPermissionRevokedDisablesVoice(t *testing.T) {
	s, rec := startedVoiceSession(t, &fakeClient{}, nil)

	rec.failed(FailurePermissionRevoked)

	require.Eventually(t, func() bool {
		return !s.Snapshot().VoiceMode
	}, settleTimeout, pollInterval)

	st := s.Snapshot()
	assert.Equal(t, msgMicRevoked, lastTurn(st).Content)
	assert.False(t, st.Listening)
	assert.Equal(t, 1, rec.stopCount())
}

func TestReplySpokenInVoiceMode(t *testing.T) {
	synth := &fakeSynth{}
	client := &fakeClient{respond: func(string) (string, error) { return "okay!", nil }}
	s, _ := startedVoiceSession(t, client, synth)

	s.Send("speak to me")

	require.Eventually(t, func() bool {
		return len(synth.log()) == 2
	}, settleTimeout, pollInterval)

	// the previous utterance is always canceled before speaking
	assert.Equal(t, []string{"cancel", "speak:okay!"}, synth.log())
}

func TestReplyNotSpokenWithVoiceModeOff(t *testing.T) {
	synth := &fakeSynth{}
	client := &fakeClient{respond: func(string) (string, error) { return "okay!", nil }}
	s := NewSession(Options{Client: client, Synthesizer: synth})
	defer s.Close()

	s.Send("quiet please")

	require.Eventually(t, func() bool {
		st := s.Snapshot()
		return len(st.History) == 3 && st.History[2].Content == "okay!"
	}, settleTimeout, pollInterval)

	time.Sleep(700 * time.Millisecond)
	assert.Empty(t, synth.log())
}

func TestOpenRequestChannel(t *testing.T) {
	openRequests := make(chan struct{}, 1)
	s := NewSession(Options{Client: &fakeClient{}, OpenRequests: openRequests})
	defer s.Close()

	assert.False(t, s.Snapshot().Open)

	openRequests <- struct{}{}

	require.Eventually(t, func() bool {
		return s.Snapshot().Open
	}, settleTimeout, pollInterval)
}

func TestCloseStopsRecognizer(t *testing.T) {
	rec := &fakeRecognition{autoStart: true}
	s := NewSession(Options{
		Client:      &fakeClient{},
		Recognition: rec,
		Microphone:  &fakeMic{state: PermissionGranted},
	})

	s.ToggleVoice()
	require.Eventually(t, func() bool {
		return s.Snapshot().VoiceMode
	}, settleTimeout, pollInterval)

	s.Close()

	require.Eventually(t, func() bool {
		return rec.recognizer().stopCount() == 1
	}, settleTimeout, pollInterval)

	st := s.Snapshot()
	assert.False(t, st.VoiceMode)
	assert.False(t, st.Listening)
}
