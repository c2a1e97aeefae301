// Package commands defines the stakeplug CLI and wires dependencies for subcommands.
//
// Commands
//
//   - plugins                       List registered contract plugins
//   - plugin <name>                 Show a plugin's manifest
//   - schema <plugin>               Print a plugin's argument schema
//   - logo <plugin> -o <file>       Write a plugin's logo to a file
//   - validate <plugin> <args>      Check arguments without compiling
//   - create <plugin> <args>        Compile and store a contract (--funds)
//   - contracts [id]                List stored contracts or show one
//   - keys new|list|show|sign|verify
//   - remote plugins|create|contracts
//
// <args> is a path to a JSON file, or "-" for standard input.
//
// # Implementation
//
// The root command loads the layered configuration and builds the dependency
// graph (stores, services, host client) before any subcommand runs. Plugins
// are linked in through stakeplug/internal/plugins/all.
package commands
