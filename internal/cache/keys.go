package cache

import "strings"

const (
	GlobalKeyPrefix = "versejournal"

	QuizServiceName  = "quiz"
	BibleServiceName = "bible"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// QuizSessionKey is where a user's quiz session snapshot lives.
func QuizSessionKey(userID, sessionID string) string {
	return GenerateCacheKey(QuizServiceName, "session", sessionID, userID)
}

// QuizSubmitLockKey guards a session while an answer is being graded.
func QuizSubmitLockKey(userID, sessionID string) string {
	return GenerateCacheKey(QuizServiceName, "submit_lock", sessionID, userID)
}

// BiblePassageKey caches a passage lookup per translation.
func BiblePassageKey(reference, translation string) string {
	return GenerateCacheKey(BibleServiceName, "passage", strings.ToLower(strings.Join(strings.Fields(reference), "+")), translation)
}
