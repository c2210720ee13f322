package problem

import (
	"fmt"
	"strings"
	"time"
)

type Problem struct {
	ID           string
	Title        string
	Description  string
	CreationDate time.Time
	IsSolved     bool
	RequesterID  string
}

func (p Problem) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("problem id is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("problem title is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("problem description is required")
	}
	if p.RequesterID == "" {
		return fmt.Errorf("problem requester id is required")
	}
	return nil
}

type State string

const (
	StateAll      State = ""
	StateSolved   State = "solved"
	StateUnsolved State = "unsolved"
)

func ParseState(raw string) (State, error) {
	switch State(strings.ToLower(strings.TrimSpace(raw))) {
	case StateAll, "all":
		return StateAll, nil
	case StateSolved:
		return StateSolved, nil
	case StateUnsolved:
		return StateUnsolved, nil
	default:
		return StateAll, fmt.Errorf("invalid problem state: %s", raw)
	}
}
