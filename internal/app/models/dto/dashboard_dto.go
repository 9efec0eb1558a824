package dto

// DashboardResponse carries the headline counts shown on the dashboard.
type DashboardResponse struct {
	ChildrenRegistered      int64 `json:"childrenRegistered"`
	Sponsors                int64 `json:"sponsors"`
	StaffMembers            int64 `json:"staffMembers"`
	ActiveChildSponsorships int64 `json:"activeChildSponsorships"`
	ActiveStaffSponsorships int64 `json:"activeStaffSponsorships"`
}
