package mts

import "math"

const (
	// NoteCount is the number of notes a tuning source reports.
	NoteCount = 128

	// Channel is the fixed tuning-source channel queried by Sample.
	Channel = 0
)

// Client is a registered session with a tuning source. Implementations must
// return a numeric value for every note in [0, NoteCount) on Channel; values
// are passed through unvalidated, so an unconfigured source may legitimately
// report zero or implausible frequencies.
type Client interface {
	// NoteToFrequency returns the frequency in Hz assigned to the given
	// note number on the given channel.
	NoteToFrequency(note, channel int) float64

	// Deregister releases the session. It must be safe to call exactly
	// once after Register.
	Deregister()
}

// Source hands out registered clients. Registration cannot fail: like the
// MTS-ESP client library, a source without a connected master still returns
// a usable client.
type Source interface {
	Register() Client
}

// Sample pulls the canonical NoteCount frequencies from src.
//
// It registers a client, queries notes 0..NoteCount-1 on Channel, and
// deregisters before returning. The client is released on every exit path.
// Each call establishes its own registration, so concurrent callers do not
// share tuning-source sessions.
func Sample(src Source) []float64 {
	client := src.Register()
	defer client.Deregister()

	freqs := make([]float64, NoteCount)
	for note := range freqs {
		freqs[note] = client.NoteToFrequency(note, Channel)
	}

	return freqs
}

// Standard is a built-in source reporting 12-tone equal temperament at
// A4 = 440 Hz (note n maps to 440 * 2^((n-69)/12)). It matches the tuning
// an MTS-ESP client falls back to when no master is connected.
var Standard Source = standardSource{}

type standardSource struct{}

func (standardSource) Register() Client { return standardClient{} }

type standardClient struct{}

func (standardClient) NoteToFrequency(note, _ int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

func (standardClient) Deregister() {}

// Fixed returns a source that answers queries from the given table.
// Notes outside the table report 0. The slice is not copied.
func Fixed(freqs []float64) Source {
	return fixedSource{freqs}
}

type fixedSource struct {
	freqs []float64
}

func (s fixedSource) Register() Client { return fixedClient(s) }

type fixedClient struct {
	freqs []float64
}

func (c fixedClient) NoteToFrequency(note, _ int) float64 {
	if note < 0 || note >= len(c.freqs) {
		return 0
	}

	return c.freqs[note]
}

func (fixedClient) Deregister() {}
