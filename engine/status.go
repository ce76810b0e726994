package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/wormhole/particle"
)

// SourceStatus is the HUD view of one source
type SourceStatus struct {
	Label string
	Speed float64
	Count int
}

// Status is the per-frame HUD content handed to the presenter
type Status struct {
	Title       string
	Sources     []SourceStatus
	Transferred uint64
	Drawn       int
	Message     string
}

// String renders the status as a single line
func (st Status) String() string {
	var b strings.Builder
	b.WriteString(st.Title)
	for _, s := range st.Sources {
		fmt.Fprintf(&b, " | %s x%.2f %d", s.Label, s.Speed, s.Count)
	}
	fmt.Fprintf(&b, " | lost %d | drawn %d", st.Transferred, st.Drawn)
	if st.Message != "" {
		b.WriteString(" | ")
		b.WriteString(st.Message)
	}
	return b.String()
}

func sourceStatus(label string, src *particle.Source) SourceStatus {
	return SourceStatus{Label: label, Speed: src.SpeedMultiplier(), Count: src.Len()}
}
