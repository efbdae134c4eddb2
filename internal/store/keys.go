package store

// Storage keys. Per-household collections append "_<household id>".
const (
	keyCurrentAccount = "tt_user"
	keyActiveMember   = "tt_active_member"
	keyAccounts       = "tt_accounts"
	keyHouseholds     = "tt_family"
	keySettings       = "tt_settings"

	prefixMembers  = "tt_family_members"
	prefixTasks    = "tt_tasks"
	prefixShopping = "tt_shopping_items"
	prefixRewards  = "tt_rewards"
)

func householdKey(prefix, householdID string) string {
	return prefix + "_" + householdID
}

// MembersKey, TasksKey, ShoppingKey and RewardsKey expose the per-household
// key layout for inspection and tests.
func MembersKey(householdID string) string  { return householdKey(prefixMembers, householdID) }
func TasksKey(householdID string) string    { return householdKey(prefixTasks, householdID) }
func ShoppingKey(householdID string) string { return householdKey(prefixShopping, householdID) }
func RewardsKey(householdID string) string  { return householdKey(prefixRewards, householdID) }
