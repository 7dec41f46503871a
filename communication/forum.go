package communication

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// BanterMessage is a single line of trash talk in a thread.
type BanterMessage struct {
	ID        string    `json:"id"`
	BotID     string    `json:"bot_id"`
	TargetID  string    `json:"target_bot_id,omitempty"`
	Line      string    `json:"line"`
	Timestamp time.Time `json:"timestamp"`
}

// BanterThread collects the running exchange between two bots. One
// thread exists per pair regardless of who opened hostilities.
type BanterThread struct {
	ThreadID  string          `json:"thread_id"`
	Title     string          `json:"title"`
	CreatedAt time.Time       `json:"created_at"`
	Messages  []BanterMessage `json:"messages"`
}

var (
	threads   = make(map[string]*BanterThread)
	threadsMu sync.Mutex
)

// PairThreadID derives the stable thread key for two bots, independent
// of who talks first.
func PairThreadID(botA, botB string) string {
	if botB < botA {
		botA, botB = botB, botA
	}
	return botA + "|" + botB
}

// OpenThread creates the banter thread for a pair, or returns the
// existing one.
func OpenThread(threadID, title string) *BanterThread {
	threadsMu.Lock()
	defer threadsMu.Unlock()

	if thread, exists := threads[threadID]; exists {
		return snapshot(thread)
	}
	thread := &BanterThread{
		ThreadID:  threadID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
		Messages:  []BanterMessage{},
	}
	threads[threadID] = thread
	return snapshot(thread)
}

// AddLine appends a line to an existing thread.
func AddLine(threadID, botID, targetID, line string) (BanterMessage, error) {
	threadsMu.Lock()
	defer threadsMu.Unlock()

	thread, exists := threads[threadID]
	if !exists {
		return BanterMessage{}, fmt.Errorf("thread with id %s does not exist", threadID)
	}

	msg := BanterMessage{
		ID:        uuid.New().String(),
		BotID:     botID,
		TargetID:  targetID,
		Line:      line,
		Timestamp: time.Now().UTC(),
	}
	thread.Messages = append(thread.Messages, msg)
	return msg, nil
}

// GetThread retrieves a snapshot of a thread by its ID.
func GetThread(threadID string) (*BanterThread, error) {
	threadsMu.Lock()
	defer threadsMu.Unlock()

	thread, exists := threads[threadID]
	if !exists {
		return nil, fmt.Errorf("thread with id %s not found", threadID)
	}
	return snapshot(thread), nil
}

// GetAllThreads returns snapshots of all banter threads, oldest first.
func GetAllThreads() []*BanterThread {
	threadsMu.Lock()
	defer threadsMu.Unlock()

	threadsList := make([]*BanterThread, 0, len(threads))
	for _, thread := range threads {
		threadsList = append(threadsList, snapshot(thread))
	}
	sort.Slice(threadsList, func(i, j int) bool {
		if !threadsList[i].CreatedAt.Equal(threadsList[j].CreatedAt) {
			return threadsList[i].CreatedAt.Before(threadsList[j].CreatedAt)
		}
		return threadsList[i].ThreadID < threadsList[j].ThreadID
	})
	return threadsList
}

// ResetThreads clears the board. Tests only.
func ResetThreads() {
	threadsMu.Lock()
	defer threadsMu.Unlock()
	threads = make(map[string]*BanterThread)
}

func snapshot(t *BanterThread) *BanterThread {
	c := *t
	c.Messages = append([]BanterMessage{}, t.Messages...)
	return &c
}
