// internal/app/features/dashboard/common.go
package dashboard

import "github.com/dalemusser/bankadmin/internal/app/system/viewdata"

// dashboardData is the dashboard view model: record counts by status and
// role.
type dashboardData struct {
	viewdata.BaseVM

	Total    int
	Active   int
	Inactive int
	Admins   int
}
