// Package input decodes the replay file's packed per-frame input byte pair
// into the ninja's horizontal and jump signals.
package input

// HOR and JUMP are indexed by the raw input value (0-7) recorded in a replay
// file: bit 0 selects jump, bits 1-2 select the horizontal direction.
var (
	HOR  = [8]int{0, 0, 1, 1, -1, -1, -1, -1}
	JUMP = [8]int{0, 1, 0, 1, 0, 1, 0, 1}
)

// Decode returns the (horizontal, jump) pair packed into a single raw input
// byte as recorded in a replay file.
func Decode(raw int) (hor, jump int) {
	return HOR[raw&7], JUMP[raw&7]
}
