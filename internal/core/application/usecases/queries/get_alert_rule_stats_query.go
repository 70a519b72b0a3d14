package queries

// AlertRuleStatsResponse summarizes the alert rule registry.
type AlertRuleStatsResponse struct {
	Total    int64
	Active   int64
	Inactive int64
	ByType   map[string]int64
}
