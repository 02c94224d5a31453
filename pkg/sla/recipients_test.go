package sla

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teambuh/slamon/ent"
)

func TestResolveRecipients_Tiering(t *testing.T) {
	settings := &ent.GlobalSettings{GlobalManagerIds: []string{"g1"}}

	full := &ent.Chat{
		AccountantIds: []string{"a1", "a2"},
		ManagerIds:    []string{"m1"},
	}
	noAccountants := &ent.Chat{ManagerIds: []string{"m1"}}
	empty := &ent.Chat{}

	// Levels 0 and 1 target accountants first.
	assert.Equal(t, []string{"a1", "a2"}, ResolveRecipients(full, settings, 0))
	assert.Equal(t, []string{"a1", "a2"}, ResolveRecipients(full, settings, 1))
	assert.Equal(t, []string{"m1"}, ResolveRecipients(noAccountants, settings, 1))
	assert.Equal(t, []string{"g1"}, ResolveRecipients(empty, settings, 0))

	// Level 2+ unions managers and accountants.
	assert.Equal(t, []string{"m1", "a1", "a2"}, ResolveRecipients(full, settings, 2))
	assert.Equal(t, []string{"g1"}, ResolveRecipients(empty, settings, 3))
}

func TestResolveRecipients_Dedup(t *testing.T) {
	settings := &ent.GlobalSettings{}
	c := &ent.Chat{
		AccountantIds: []string{"a1", "m1"},
		ManagerIds:    []string{"m1", "m2"},
	}
	assert.Equal(t, []string{"m1", "m2", "a1"}, ResolveRecipients(c, settings, 2))
}

func TestLowRatingRecipients(t *testing.T) {
	settings := &ent.GlobalSettings{GlobalManagerIds: []string{"g1", "m1"}}
	c := &ent.Chat{ManagerIds: []string{"m1", "m2"}, AccountantIds: []string{"a1"}}

	// Accountants are not on the low-rating path.
	assert.Equal(t, []string{"m1", "m2", "g1"}, LowRatingRecipients(c, settings))
}

func TestEffectiveThreshold(t *testing.T) {
	settings := &ent.GlobalSettings{DefaultSLAThresholdMinutes: 60}
	override := 45
	assert.Equal(t, 45, EffectiveThreshold(&ent.Chat{SLAThresholdMinutes: &override}, settings))
	assert.Equal(t, 60, EffectiveThreshold(&ent.Chat{}, settings))
}
