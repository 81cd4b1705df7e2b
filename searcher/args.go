package searcher

import "time"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const DivDelta = 1e-9 // Keeps win rates finite for unvisited nodes

// Use rewards to estimate the chance of winning
const Win = 1
const Loss = 0

const DefaultDuration = 2000 * time.Millisecond
