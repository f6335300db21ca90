package models

import (
	"fmt"
	"strings"

	apperrors "github.com/julianstephens/auragenie/internal/errors"
)

type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabCoach     Tab = "coach"
	TabVideo     Tab = "video"
	TabCommunity Tab = "community"
)

// AllTabs returns the navigation order
func AllTabs() []Tab {
	return []Tab{TabDashboard, TabCoach, TabVideo, TabCommunity}
}

func (t Tab) Valid() bool {
	switch t {
	case TabDashboard, TabCoach, TabVideo, TabCommunity:
		return true
	}
	return false
}

// Label is the navigation caption shown in the header
func (t Tab) Label() string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabCoach:
		return "AI Coach"
	case TabVideo:
		return "Reflection"
	case TabCommunity:
		return "Community"
	default:
		return ""
	}
}

func (t Tab) Next() Tab {
	return t.shift(1)
}

func (t Tab) Prev() Tab {
	return t.shift(-1)
}

func (t Tab) shift(step int) Tab {
	tabs := AllTabs()
	for i, tab := range tabs {
		if tab == t {
			return tabs[(i+step+len(tabs))%len(tabs)]
		}
	}
	return TabDashboard
}

func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%q: %w", s, apperrors.ErrUnknownTab)
	}
	return t, nil
}
