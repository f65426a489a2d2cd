package hub

import "strings"

// roomSeparator joins the two identities of a pair into a room id. User
// ids are UUIDs, which never contain an underscore, so the derivation is
// unambiguous.
const roomSeparator = "_"

// RoomID derives the shared broadcast key for a user pair. It is
// deterministic and symmetric: the lexicographically smaller id always
// comes first.
func RoomID(userA, userB string) string {
	if userA < userB {
		return userA + roomSeparator + userB
	}
	return userB + roomSeparator + userA
}

// SplitRoomID parses the two identities out of a room token.
func SplitRoomID(token string) (userA, userB string, ok bool) {
	parts := strings.SplitN(token, roomSeparator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
