package sla

import (
	"github.com/teambuh/slamon/ent"
)

// ResolveRecipients returns the alert recipients for an escalation level.
//
// Levels 0 (warning) and 1 (breach) target the chat's accountants, falling
// back to the chat's managers, then to the global managers. Levels 2 and
// above target the union of the chat's managers and accountants, falling
// back to the global managers. An empty result means nobody is configured
// anywhere; the caller logs and skips delivery but still transitions.
func ResolveRecipients(chat *ent.Chat, settings *ent.GlobalSettings, level int) []string {
	if level <= 1 {
		if len(chat.AccountantIds) > 0 {
			return dedup(chat.AccountantIds)
		}
		if len(chat.ManagerIds) > 0 {
			return dedup(chat.ManagerIds)
		}
		return dedup(settings.GlobalManagerIds)
	}

	union := dedup(append(append([]string{}, chat.ManagerIds...), chat.AccountantIds...))
	if len(union) > 0 {
		return union
	}
	return dedup(settings.GlobalManagerIds)
}

// LowRatingRecipients returns the fan-out set for a low-rating feedback
// alert: the chat's managers plus the global managers.
func LowRatingRecipients(chat *ent.Chat, settings *ent.GlobalSettings) []string {
	return dedup(append(append([]string{}, chat.ManagerIds...), settings.GlobalManagerIds...))
}

func dedup(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
