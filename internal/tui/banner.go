package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	primaryBannerTTL = 8 * time.Second
	noticeBannerTTL  = 5 * time.Second
)

type bannerSlot int

const (
	primarySlot bannerSlot = iota
	secondarySlot
)

type severity int

const (
	severityInfo severity = iota
	severitySuccess
	severityError
)

type banner struct {
	id       int
	text     string
	severity severity
}

func (b banner) visible() bool {
	return b.text != ""
}

func (b banner) View() string {
	if !b.visible() {
		return ""
	}

	style := infoStyle
	switch b.severity {
	case severitySuccess:
		style = successStyle
	case severityError:
		style = errorStyle
	}
	return bannerBoxStyle.Render(style.Render(b.text))
}

// bannerTTL is how long a banner in slot stays visible. The secondary
// notice goes away before the primary banner.
func bannerTTL(slot bannerSlot) time.Duration {
	if slot == secondarySlot {
		return noticeBannerTTL
	}
	return primaryBannerTTL
}

func cmdExpireBanner(slot bannerSlot, id int) tea.Cmd {
	return tea.Tick(bannerTTL(slot), func(time.Time) tea.Msg {
		return bannerExpiredMsg{slot: slot, id: id}
	})
}
