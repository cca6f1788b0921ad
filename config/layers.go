package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer every entity, system and renderer lives on.
// A single layer is enough for a single-screen encounter.
const Default ecs.LayerID = 0
