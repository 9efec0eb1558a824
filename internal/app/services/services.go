package services

// Services defined in this package:
// - AuthService: administrative sign-in
// - ChildService: child record CRUD, search and the master-list reset
// - SponsorService: sponsor CRUD and departure recording
// - StaffService: staff record CRUD
// - SponsorshipService: begin/end/update sponsorships and active listings
// - DashboardService: headline counts
