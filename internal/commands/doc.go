// Package commands implements the CLI command handlers.
//
// Each command implements the Runner interface:
//   - Init(): Parse arguments and load configuration
//   - Run(): Execute the command
//   - Name(): Return the command name for routing
//
// # Available Commands
//
//   - validate: Validate the configuration file, optionally checking dataset paths
//   - show: Print the configuration in yaml, json or toml form
//   - schedule: Print the learning rate schedule or the rate at a single step
//   - serve: Run the HTTP API server for config inspection
package commands
