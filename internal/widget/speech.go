package widget

import (
	"context"
	"errors"
)

// PermissionState is the remembered microphone permission for the platform.
type PermissionState int

const (
	// PermissionUnknown means no permission layer can answer without prompting.
	PermissionUnknown PermissionState = iota
	// PermissionGranted means access was previously allowed.
	PermissionGranted
	// PermissionDenied means access is blocked until the user changes settings.
	PermissionDenied
)

// ErrPermissionDenied is returned by Microphone.Request when the user
// refuses access.
var ErrPermissionDenied = errors.New("microphone permission denied")

// Microphone models the permission layer in front of audio capture. Query
// reports the remembered state without prompting; Request prompts if needed
// and blocks until the prompt settles.
type Microphone interface {
	Query(ctx context.Context) PermissionState
	Request(ctx context.Context) error
}

// RecognitionEventKind enumerates what a recognizer can report.
type RecognitionEventKind int

const (
	// RecognitionStarted confirms the recognizer is capturing audio.
	RecognitionStarted RecognitionEventKind = iota
	// RecognitionResult carries an interim or final transcript.
	RecognitionResult
	// RecognitionEnded signals the recognition session finished on its own.
	RecognitionEnded
	// RecognitionFailed carries a RecognitionError.
	RecognitionFailed
)

// FailureReason tags recognition errors so recovery policy is chosen by
// type rather than by string comparison on an error code.
type FailureReason int

const (
	// FailureUnknown covers anything without a more specific reason.
	FailureUnknown FailureReason = iota
	// FailurePermissionRevoked means access was withdrawn mid-session.
	FailurePermissionRevoked
	// FailureNoAudio means no speech was detected.
	FailureNoAudio
	// FailureCaptureFailed means the audio device stopped delivering input.
	FailureCaptureFailed
)

// RecognitionError is a recognition failure with a typed reason.
type RecognitionError struct {
	Reason FailureReason
	Detail string
}

func (e *RecognitionError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	switch e.Reason {
	case FailurePermissionRevoked:
		return "permission revoked"
	case FailureNoAudio:
		return "no audio detected"
	case FailureCaptureFailed:
		return "audio capture failed"
	default:
		return "unknown recognition error"
	}
}

// Terminal reports whether the failure should disable voice mode rather
// than leave it enabled for a retry.
func (e *RecognitionError) Terminal() bool {
	return e.Reason == FailurePermissionRevoked
}

// RecognitionEvent is one event from an active recognizer.
type RecognitionEvent struct {
	Kind       RecognitionEventKind
	Transcript string
	Final      bool
	Err        *RecognitionError
}

// Recognizer is a single speech-recognition session. Events are delivered
// to the sink the recognizer was created with; Start returns before the
// RecognitionStarted event is emitted. Stop must be safe to call more than
// once and after the session has already ended.
type Recognizer interface {
	Start() error
	Stop()
}

// Recognition is the platform speech-recognition capability, resolved once
// when the session is built rather than probed ad hoc.
type Recognition interface {
	Supported() bool
	NewRecognizer(emit func(RecognitionEvent)) (Recognizer, error)
}

// Unsupported returns the capability variant for platforms without speech
// recognition.
func Unsupported() Recognition { return unsupported{} }

type unsupported struct{}

func (unsupported) Supported() bool { return false }

func (unsupported) NewRecognizer(func(RecognitionEvent)) (Recognizer, error) {
	return nil, errors.New("speech recognition unavailable")
}

// Synthesizer plays spoken audio for assistant replies.
type Synthesizer interface {
	// Speak queues text for playback.
	Speak(text string)
	// Cancel discards any utterance currently playing.
	Cancel()
}
