// Package main implements advent-solver, a terminal harness that downloads
// Advent of Code puzzle inputs and runs the matching solver.
//
// # Features
//
//   - Year/day picker driven by the arrow keys (or hjkl)
//   - Session token read from AOC_TOKEN, the config file, or a one-time prompt
//   - One fresh download of the puzzle input per run
//   - Both answers printed as "Part 1" / "Part 2"
//
// # Usage
//
//	advent-solver
//
// # Configuration
//
// The session token is stored in config.json under the user config
// directory (for example ~/.config/advent-of-code/config.json on Linux).
// AOC_TOKEN, from the environment or a .env file in the working directory,
// takes precedence over the file.
package main
