// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	userstore "github.com/dalemusser/bankadmin/internal/app/store/users"
	"github.com/dalemusser/bankadmin/internal/app/system/console"
	"github.com/dalemusser/bankadmin/internal/app/system/workers"
)

// DBDeps holds the back-end dependencies for the app. The user collection
// lives in memory for the life of the process.
type DBDeps struct {
	Users    *userstore.Store
	Consoles *console.Registry
	Cleanup  *workers.ConsoleCleanup
}
