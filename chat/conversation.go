package chat

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Greeting is the canned opening line every fresh or reset conversation shows.
const Greeting = "Hello! I'm your laptop recommendation assistant. Tell me what type of laptop you're looking for and I'll find the best options for you."

// Sender identifies who authored a transcript entry.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderBot    Sender = "bot"
	SenderSystem Sender = "system"
)

// Entry is one line of the conversation transcript.
type Entry struct {
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
}

// Saver persists one recommendation for a user. Saves are best-effort and
// non-blocking: errors are logged by the conversation and never retried or
// surfaced.
type Saver interface {
	SaveRecommendation(username string, rec Recommendation) error
}

// Conversation owns the transcript and recommendation state of a single chat
// widget instance. All mutation happens from that widget's event loop, so one
// Conversation has exactly one logical writer; separate instances (separate
// tabs) share nothing in memory.
type Conversation struct {
	engine Engine
	saver  Saver

	mu         sync.Mutex
	sessionID  string
	username   string
	transcript []Entry
	current    []Recommendation
	all        []TimestampedRecommendation

	// wg tracks detached persistence goroutines so tests can wait for them.
	wg sync.WaitGroup

	now func() time.Time
}

// NewConversation starts a conversation with a freshly generated session id
// and the canned greeting in the transcript. The saver may be nil when no
// persistence layer is configured.
func NewConversation(engine Engine, saver Saver) *Conversation {
	return &Conversation{
		engine:     engine,
		saver:      saver,
		sessionID:  uuid.NewString(),
		transcript: []Entry{{Text: Greeting, Sender: SenderBot}},
		now:        time.Now,
	}
}

// Bind associates an authenticated user with the conversation; from then on
// every recommendation the engine returns is persisted for that user.
func (c *Conversation) Bind(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.username = username
}

// Unbind detaches the current user; recommendations are no longer persisted.
func (c *Conversation) Unbind() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.username = ""
}

// SessionID returns the current conversation identifier.
func (c *Conversation) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Transcript returns a copy of the transcript in order.
func (c *Conversation) Transcript() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// CurrentRecommendations returns the recommendations from the latest engine
// reply that carried any.
func (c *Conversation) CurrentRecommendations() []Recommendation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Recommendation, len(c.current))
	copy(out, c.current)
	return out
}

// AllRecommendations returns the cumulative timestamped recommendation log.
func (c *Conversation) AllRecommendations() []TimestampedRecommendation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]TimestampedRecommendation, len(c.all))
	copy(out, c.all)
	return out
}

// SendMessage appends the user entry, forwards the utterance to the engine and
// applies the normalized reply. The user entry is appended before the request
// is issued, so it always precedes the bot lines it produced. Engine failures
// are absorbed by the proxy boundary: the transcript gains the fallback line
// and recommendations and session id stay untouched.
func (c *Conversation) SendMessage(ctx context.Context, text string) {
	c.mu.Lock()
	c.transcript = append(c.transcript, Entry{Text: text, Sender: SenderUser})
	sessionID := c.sessionID
	c.mu.Unlock()

	reply := c.engine.Forward(ctx, text, sessionID)

	c.mu.Lock()
	for _, line := range reply.Messages {
		c.transcript = append(c.transcript, Entry{Text: line, Sender: SenderBot})
	}
	if len(reply.Recommendations) > 0 {
		c.addRecommendations(reply.Recommendations)
		if c.username != "" && c.saver != nil {
			c.persist(c.username, reply.Recommendations)
		}
	}
	if reply.SessionID != "" {
		c.sessionID = reply.SessionID
	}
	c.mu.Unlock()
}

// addRecommendations replaces the current set and appends timestamped copies
// to the cumulative log. Caller holds the lock.
func (c *Conversation) addRecommendations(recs []Recommendation) {
	c.current = recs
	now := c.now()
	for _, rec := range recs {
		c.all = append(c.all, TimestampedRecommendation{Recommendation: rec, Timestamp: now})
	}
}

// persist saves each recommendation in a detached goroutine. Failures are
// logged and swallowed; in-memory state is never rolled back. Caller holds
// the lock.
func (c *Conversation) persist(username string, recs []Recommendation) {
	saver := c.saver
	for _, rec := range recs {
		rec := rec
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			if err := saver.SaveRecommendation(username, rec); err != nil {
				log.Printf("[chat] saving recommendation %q for %s failed: %v", rec.Key(), username, err)
			}
		}()
	}
}

// Reset replaces the transcript with the greeting and clears both
// recommendation sets. The session id is kept unless newSession is true,
// in which case a fresh one is generated.
func (c *Conversation) Reset(newSession bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript = []Entry{{Text: Greeting, Sender: SenderBot}}
	c.current = nil
	c.all = nil
	if newSession {
		c.sessionID = uuid.NewString()
	}
}

// Wait blocks until all detached persistence calls have finished. Used by
// shutdown paths and tests; the chat flow itself never waits on saves.
func (c *Conversation) Wait() {
	c.wg.Wait()
}
