package engine

import (
	"github.com/fodmaplab/reintro/pkg/domain"
)

// GroupSequence returns the active group-testing order: the snapshot's custom
// sequence when present, else the default. Order is significant and preserved.
func GroupSequence(state *domain.ProtocolState) []domain.FODMAPGroup {
	if len(state.GroupSequence) > 0 {
		seq := make([]domain.FODMAPGroup, len(state.GroupSequence))
		copy(seq, state.GroupSequence)
		return seq
	}
	return DefaultGroupSequence()
}

// NextGroup returns the first group in the active sequence with no completed
// test. The second return is false once every group has at least one
// completed test, meaning the protocol is finished.
func NextGroup(state *domain.ProtocolState) (domain.FODMAPGroup, bool) {
	tested := make(map[domain.FODMAPGroup]bool, len(state.CompletedTests))
	for _, test := range state.CompletedTests {
		tested[test.FODMAPGroup] = true
	}
	for _, group := range GroupSequence(state) {
		if !tested[group] {
			return group, true
		}
	}
	return "", false
}
