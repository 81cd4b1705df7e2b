// meta/meta.go
package meta

import "time"

// DURATION defines the wall-clock budget of one decision.
const DURATION = 2000 * time.Millisecond

// EPISODES defines the number of episodes for MCTS. Zero searches by DURATION.
const EPISODES = 0

// EXPLORATION defines the squared UCT exploration constant.
const EXPLORATION = 2.0

// LOG_LEVEL defines the default zerolog level.
const LOG_LEVEL = "info"

// LOG_FORMAT defines the default log output, console or json.
const LOG_FORMAT = "console"

// ENV_PREFIX prefixes every environment override.
const ENV_PREFIX = "OTHELLO_"
