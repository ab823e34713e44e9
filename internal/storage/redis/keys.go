package redis

import (
	"fmt"

	"github.com/mwjones-dev/pokernight/internal/model"
)

// Key prefix for all poker-night data
const keyPrefix = "pokernight"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player keys
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionsIndexKey returns the Redis key for the SET of all session keys
func sessionsIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}

// membershipKey returns the Redis key for a Membership
func membershipKey(sessionID model.SessionID, playerID model.PlayerID) string {
	return fmt.Sprintf("%s:membership:%s:%s", keyPrefix, sessionID, playerID)
}

// membershipsForSessionKey returns the Redis key for the LIST of membership
// keys for a session. A list (not a set) so join order survives round trips.
func membershipsForSessionKey(sessionID model.SessionID) string {
	return fmt.Sprintf("%s:idx:memberships:%s", keyPrefix, sessionID)
}

// accountKey returns the Redis key for an Account
func accountKey(id model.AccountID) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> account_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}
