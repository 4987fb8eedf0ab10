package leads

import (
	"fmt"

	"leadbook/internal/domain"
)

// FollowUpLayout formats follow-up dates in activity descriptions.
const FollowUpLayout = "2006-01-02"

// Entry is an activity to append once a mutation commits.
type Entry struct {
	Type        domain.ActivityType
	Description string
}

// trigger is one row of the update side-effect table. fires and describe see
// the record as it was before the patch was applied.
type trigger struct {
	name     string
	fires    func(before domain.Lead, patch domain.LeadPatch) bool
	describe func(before domain.Lead, patch domain.LeadPatch) Entry
}

var updateTriggers = []trigger{
	{
		name: "status",
		fires: func(before domain.Lead, patch domain.LeadPatch) bool {
			return patch.Status != nil && *patch.Status != before.Status
		},
		describe: func(before domain.Lead, patch domain.LeadPatch) Entry {
			return Entry{
				Type:        domain.ActivityStatusChange,
				Description: fmt.Sprintf("Status changed from %s to %s", before.Status, *patch.Status),
			}
		},
	},
	{
		// Fires whenever a date is supplied, even if it equals the stored one.
		name: "follow-up",
		fires: func(_ domain.Lead, patch domain.LeadPatch) bool {
			return patch.FollowUpDate.IsSpecified() && !patch.FollowUpDate.IsNull()
		},
		describe: func(_ domain.Lead, patch domain.LeadPatch) Entry {
			due, _ := patch.FollowUpDate.Get()
			return Entry{
				Type:        domain.ActivityFollowUpSet,
				Description: "Follow-up set for " + due.UTC().Format(FollowUpLayout),
			}
		},
	},
}

// UpdateEntries evaluates the trigger table against the pre-update record and
// returns every entry that fires, in table order.
func UpdateEntries(before domain.Lead, patch domain.LeadPatch) []Entry {
	var out []Entry
	for _, t := range updateTriggers {
		if t.fires(before, patch) {
			out = append(out, t.describe(before, patch))
		}
	}
	return out
}

// CreatedEntry is the entry appended for every new lead.
func CreatedEntry(l domain.Lead) Entry {
	return Entry{Type: domain.ActivityCreated, Description: "Lead created: " + l.Name}
}
