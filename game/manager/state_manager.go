package manager

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// RoundRecord describes one finished life of the snake.
type RoundRecord struct {
	ID        string        `json:"id"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Score     int           `json:"score"`
	Length    int           `json:"length"`
	Ticks     int           `json:"ticks"`
	Cause     CollisionType `json:"cause"`
}

// StateManager tracks the running score and the finished rounds of this
// session. Nothing is written to disk.
type StateManager struct {
	roundID   string
	started   time.Time
	score     int
	highScore int
	rounds    []RoundRecord
	now       func() time.Time
}

func NewStateManager() *StateManager {
	sm := &StateManager{now: time.Now}
	sm.StartRound()
	return sm
}

// SetClock replaces the time source.
func (sm *StateManager) SetClock(now func() time.Time) {
	sm.now = now
	sm.started = now()
}

// StartRound resets the score and opens a new round.
func (sm *StateManager) StartRound() {
	sm.roundID = uuid.New().String()
	sm.started = sm.now()
	sm.score = 0
}

func (sm *StateManager) AddPoint() {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// EndRound closes the current round and stores its record.
func (sm *StateManager) EndRound(length, ticks int, cause CollisionType) RoundRecord {
	record := RoundRecord{
		ID:        sm.roundID,
		StartTime: sm.started,
		EndTime:   sm.now(),
		Score:     sm.score,
		Length:    length,
		Ticks:     ticks,
		Cause:     cause,
	}
	sm.rounds = append(sm.rounds, record)
	return record
}

func (sm *StateManager) RoundID() string {
	return sm.roundID
}

func (sm *StateManager) Score() int {
	return sm.score
}

// HighScore is the best score reached in this session, including the live round.
func (sm *StateManager) HighScore() int {
	return sm.highScore
}

func (sm *StateManager) Rounds() []RoundRecord {
	return sm.rounds
}

func (sm *StateManager) GamesPlayed() int {
	return len(sm.rounds)
}

// GetAverageScore returns the mean score of the finished rounds.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.rounds {
		total += r.Score
	}
	return float64(total) / float64(len(sm.rounds))
}

// GetMedianScore returns the median score of the finished rounds.
func (sm *StateManager) GetMedianScore() float64 {
	if len(sm.rounds) == 0 {
		return 0
	}
	scores := make([]int, len(sm.rounds))
	for i, r := range sm.rounds {
		scores[i] = r.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}
