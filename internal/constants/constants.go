package constants

import "time"

// Centralized constants for env keys, routes, cooldowns and messages.
const (
	// Environment variable keys
	EnvConfigPath = "TOWER_CONFIG"
	EnvStorePath  = "TOWER_STORE"
)

// Cooldown windows for the timed resource commands. Each command keeps its
// own clock on the player record; enforcement is a pure check-on-access.
const (
	DropCooldown   = 5 * time.Minute
	FarmCooldown   = 10 * time.Minute
	HourlyCooldown = 1 * time.Hour
)

// Resource grants for the timed commands.
const (
	HourlyGold    = 100
	HourlyStamina = 10
	FarmGold      = 30
	FarmUserExp   = 15
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"
	RouteVersion   = "/version"
	RouteTemplates = "/templates"
	RoutePlayer    = "/players/:playerID"
	RouteCards     = "/players/:playerID/cards"
	RouteDrop      = "/players/:playerID/drop"
	RouteBattle    = "/players/:playerID/battle"
	RouteEnhance   = "/players/:playerID/enhance"
	RouteSelect    = "/players/:playerID/select"
	RouteFloor     = "/players/:playerID/floor"
	RouteFloorNext = "/players/:playerID/floor/next"
	RouteFloorSet  = "/players/:playerID/floor/set"
	RouteHourly    = "/players/:playerID/hourly"
	RouteFarm      = "/players/:playerID/farm"
)

// Common JSON response keys
const (
	JSONKeyError     = "error"
	JSONKeyMessage   = "message"
	JSONKeyRemaining = "remaining"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest  = "Invalid request"
	ErrPlayerIDMissing = "Player ID is required"
	ErrFailedPersist   = "Failed to persist player state"
)

// Logging field names
const (
	LogFieldPlayerID = "player_id"
	LogFieldCardID   = "card_id"
	LogFieldFloor    = "floor"
	LogFieldOutcome  = "outcome"
	LogFieldAddr     = "addr"
	LogFieldBackend  = "backend"
)
