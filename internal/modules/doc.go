// Package modules contains the dashboard features of the application.
//
// Each subdirectory is a module that implements the `module.Module` interface.
// Modules are listed in `internal/app/modules.go` and booted by the server,
// each under a route group named after the module.
package modules
