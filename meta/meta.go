// meta/meta.go
package meta

// DIM defines the default grid dimension.
const DIM = 4

// MIN_DIM and MAX_DIM bound the grid sizes exhaustive search can handle.
const MIN_DIM = 2
const MAX_DIM = 5

// STRATEGY defines the default search strategy.
const STRATEGY = "alphabeta"

// GAMES defines the number of games played by the bench command.
const GAMES = 10

// OUT_DIR defines where experiment records are written.
const OUT_DIR = "experiments"
