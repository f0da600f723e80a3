// Package config provides centralized default values for Shelfwise
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		file, err := os.Open(".env")
		if err != nil {
			return
		}
		defer file.Close()

		log.Println("Loading configuration overrides from .env file...")
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseFloat(valStr, 64); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%f (default: %f)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Database
	DatabasePath     string
	TursoDatabaseURL string
	TursoAuthToken   string
	DBMaxOpenConns   int
	DBMaxIdleConns   int

	// Account facts fan-out
	FactsReadTimeout time.Duration

	// Catalog
	CatalogOverlayPath string

	// Recommendation engine confidence weights.
	// Relative ordering must hold: Continuation > GoalMatch >
	// CompletionMomentum > RelationshipGraph > PopularityFallback.
	ConfidenceContinuation       float64
	ConfidenceGoalMatch          float64
	ConfidenceCompletionMomentum float64
	ConfidenceRelationshipGraph  float64
	ConfidencePopularityFallback float64
	ConfidenceGuestFallback      float64
	RecommendationLimit          int

	// Completion momentum thresholds
	MomentumCompletionThreshold float64
	MomentumMinOwnedProducts    int

	// Nudge engine priorities
	NudgeLimit                  int
	NudgePriorityBreakRead      float64
	NudgePriorityEveningSession float64
	NudgePriorityMomentum       float64
	NudgePriorityNearFinish     float64
	NudgePriorityGoal           float64
	NudgePriorityWelcomeBack    float64
	NudgePriorityGuestExplore   float64
	NudgePriorityGuestProfile   float64
	NudgeLowProgressThreshold   float64
	NudgeNearFinishThreshold    float64
	ReEngagementWindow          time.Duration

	// Session Configuration
	SessionTTL time.Duration

	// Auth
	JWTSecret          string
	AdminPasswordHash  string
	ProfileTokenExpiry time.Duration
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Database
	DatabasePath = getEnvString("DATABASE_PATH", "shelfwise.db")
	TursoDatabaseURL = getEnvString("TURSO_DATABASE_URL", "")
	TursoAuthToken = getEnvString("TURSO_AUTH_TOKEN", "")
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)

	// Account facts fan-out
	FactsReadTimeout = getEnvDuration("FACTS_READ_TIMEOUT", 2*time.Second)

	// Catalog
	CatalogOverlayPath = getEnvString("CATALOG_OVERLAY_PATH", "")

	// Recommendation engine confidence weights
	ConfidenceContinuation = getEnvFloat("CONFIDENCE_CONTINUATION", 0.95)
	ConfidenceGoalMatch = getEnvFloat("CONFIDENCE_GOAL_MATCH", 0.9)
	ConfidenceCompletionMomentum = getEnvFloat("CONFIDENCE_COMPLETION_MOMENTUM", 0.85)
	ConfidenceRelationshipGraph = getEnvFloat("CONFIDENCE_RELATIONSHIP_GRAPH", 0.8)
	ConfidencePopularityFallback = getEnvFloat("CONFIDENCE_POPULARITY_FALLBACK", 0.6)
	ConfidenceGuestFallback = getEnvFloat("CONFIDENCE_GUEST_FALLBACK", 0.7)
	RecommendationLimit = getEnvInt("RECOMMENDATION_LIMIT", 6)

	// Completion momentum thresholds
	MomentumCompletionThreshold = getEnvFloat("MOMENTUM_COMPLETION_THRESHOLD", 75.0)
	MomentumMinOwnedProducts = getEnvInt("MOMENTUM_MIN_OWNED_PRODUCTS", 2)

	// Nudge engine priorities
	NudgeLimit = getEnvInt("NUDGE_LIMIT", 3)
	NudgePriorityBreakRead = getEnvFloat("NUDGE_PRIORITY_BREAK_READ", 0.7)
	NudgePriorityEveningSession = getEnvFloat("NUDGE_PRIORITY_EVENING_SESSION", 0.8)
	NudgePriorityMomentum = getEnvFloat("NUDGE_PRIORITY_MOMENTUM", 0.9)
	NudgePriorityNearFinish = getEnvFloat("NUDGE_PRIORITY_NEAR_FINISH", 0.95)
	NudgePriorityGoal = getEnvFloat("NUDGE_PRIORITY_GOAL", 0.85)
	NudgePriorityWelcomeBack = getEnvFloat("NUDGE_PRIORITY_WELCOME_BACK", 0.8)
	NudgePriorityGuestExplore = getEnvFloat("NUDGE_PRIORITY_GUEST_EXPLORE", 0.5)
	NudgePriorityGuestProfile = getEnvFloat("NUDGE_PRIORITY_GUEST_PROFILE", 0.4)
	NudgeLowProgressThreshold = getEnvFloat("NUDGE_LOW_PROGRESS_THRESHOLD", 25.0)
	NudgeNearFinishThreshold = getEnvFloat("NUDGE_NEAR_FINISH_THRESHOLD", 75.0)
	ReEngagementWindow = getEnvDuration("RE_ENGAGEMENT_WINDOW", 7*24*time.Hour)

	// Session Configuration
	SessionTTL = getEnvDuration("SESSION_TTL", 24*time.Hour)

	// Auth
	JWTSecret = getEnvString("JWT_SECRET", "")
	AdminPasswordHash = getEnvString("ADMIN_PASSWORD_HASH", "")
	ProfileTokenExpiry = getEnvDuration("PROFILE_TOKEN_EXPIRY", 30*24*time.Hour)
}
