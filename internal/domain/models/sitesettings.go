// internal/domain/models/sitesettings.go
package models

// DefaultSiteName is used when no site name is configured.
const DefaultSiteName = "Bank Admin"
